package xmldoc

import (
	"encoding/xml"
	"strings"
	"unicode"
)

// defaultLineEnding is substituted for structural newlines when the caller
// does not configure one.
const defaultLineEnding = "\n"

// openTagText returns the literal text emitted when entering the named
// element. Element names are matched case-insensitively (callers pass them
// lowercased); unrecognized names emit nothing and their children are
// traversed normally. The filterpriority element is handled by the walker
// itself, which skips it and its descendants entirely.
func openTagText(name string, attrs []xml.Attr, lineEnding string) string {
	switch name {
	case "remarks":
		return lineEnding + "Remarks:" + lineEnding
	case "example":
		return lineEnding + "Example:" + lineEnding
	case "exception":
		cref := strings.TrimRightFunc(formatCref(attrValue(attrs, "cref")), unicode.IsSpace)

		return lineEnding + cref + ": "
	case "returns":
		return lineEnding + "Returns: "
	case "see":
		return formatCref(attrValue(attrs, "cref")) + attrValue(attrs, "langword")
	case "seealso":
		return lineEnding + "See also: " + formatCref(attrValue(attrs, "cref"))
	case "paramref":
		return attrValue(attrs, "name") + " "
	case "typeparam":
		return lineEnding + "<" + trimMultiLineString(attrValue(attrs, "name"), lineEnding) + ">: "
	case "param":
		return lineEnding + trimMultiLineString(attrValue(attrs, "name"), lineEnding) + ": "
	case "value":
		return lineEnding + "Value: " + lineEnding
	case "br", "para":
		return lineEnding
	}

	return ""
}

// formatCref normalizes a cross-reference attribute value to display form.
//
// Cref values are encoded with a one-letter-kind-plus-colon prefix (e.g.
// "T:System.String"). When the second character is exactly ':' the prefix
// is stripped and a trailing space appended; otherwise the whole input gets
// the trailing space. The two-character heuristic is a fixed convention of
// the cross-reference encoding and must not be generalized: external
// annotation compatibility depends on its exact output.
func formatCref(cref string) string {
	if strings.TrimSpace(cref) == "" {
		return ""
	}

	if len(cref) < 2 {
		return cref
	}

	if cref[1] == ':' {
		return cref[2:] + " "
	}

	return cref + " "
}

// trimMultiLineString splits the input on line breaks, drops empty lines,
// strips leading whitespace from each surviving line, and rejoins with the
// caller's line-ending token. Trailing whitespace on each line is kept:
// text nodes commonly end in the space separating them from a following
// inline element.
func trimMultiLineString(input, lineEnding string) string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if line == "" {
			continue
		}

		lines = append(lines, strings.TrimLeftFunc(line, unicode.IsSpace))
	}

	return strings.Join(lines, lineEnding)
}
