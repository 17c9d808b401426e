package xmldoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.dw1.io/xmldoc/internal/annotations"
)

// annotationsFileSuffix is the fixed naming convention for per-assembly
// external annotation files. It must match exactly for interoperability
// with externally produced files.
const annotationsFileSuffix = ".ExternalAnnotations.xml"

// AnnotationsPath returns the conventional path of the external annotations
// file for the named assembly under dir.
func AnnotationsPath(dir, assembly string) string {
	return filepath.Join(dir, assembly+annotationsFileSuffix)
}

// ExternalDocumentation loads the external annotation text for the symbol
// with the given fully-qualified display name, reading the annotations file
// of its containing assembly fresh on every call.
//
// A missing file is not an error: a placeholder naming the computed path is
// returned and flows into the merged documentation as valid content. A file
// that exists but cannot be read or parsed is converted to an
// "Exception: ..." string, never raised to the caller.
func ExternalDocumentation(displayName, assembly, dir, lineEnding string) string {
	return externalDocumentation(displayName, assembly, dir, lineEnding, nil, os.ReadFile)
}

func externalDocumentation(displayName, assembly, dir, lineEnding string, cache *AnnotationCache, read func(string) ([]byte, error)) string {
	path := AnnotationsPath(dir, assembly)

	if file, ok := cache.get(path); ok {
		return externalText(file, displayName, assembly, lineEnding)
	}

	data, err := read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lineEnding + path + " not found"
	}
	if err != nil {
		return "Exception: " + err.Error()
	}

	file, err := annotations.Parse(data)
	if err != nil {
		return "Exception: " + err.Error()
	}

	cache.put(path, file)

	return externalText(file, displayName, assembly, lineEnding)
}

// externalText assembles the merge-ready annotation text: the symbol's
// display name, the raw inner markup of every matching entry, and the
// assembly trailer, which is appended whether or not a match was found.
func externalText(file *annotations.File, displayName, assembly, lineEnding string) string {
	var sb strings.Builder

	sb.WriteString(displayName)
	sb.WriteString(lineEnding)

	for _, inner := range file.Lookup(displayName) {
		sb.WriteString(inner)
	}

	sb.WriteString(lineEnding)
	sb.WriteString("Assembly: ")
	sb.WriteString(assembly)

	return sb.String()
}

// mergeDocumentation combines a declaration's own markup with its external
// annotation text. External text lacking a <summary> element is wrapped in
// one, so external-only documentation still populates the summary bucket
// when the primary markup is absent.
func mergeDocumentation(raw, external, lineEnding string) string {
	if !hasSummary(external) {
		external = "<summary>" + external + "</summary>"
	}

	return raw + lineEnding + external
}
