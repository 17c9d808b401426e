package xmldoc

import "os"

// Symbol identifies a declaration whose documentation is requested. The set
// of implementations is closed: [Parameter], [TypeParameter], [Alias], and
// [Member] for every other symbol category. Symbol identity, display
// strings, and raw markup are supplied by the surrounding tooling; this
// package performs no symbol resolution of its own.
type Symbol interface {
	symbol()
}

// Declaration carries the identity and raw documentation markup of a
// declaration, as supplied by the caller.
type Declaration struct {
	// DisplayName is the fully-qualified display string, used as the join
	// key against external annotation entries.
	DisplayName string
	// AssemblyName names the containing assembly and selects the external
	// annotations file.
	AssemblyName string
	// Comment is the declaration's raw tagged markup, possibly empty.
	Comment string
	// Original points at the unconstructed generic definition when this
	// declaration is a constructed instance of one.
	Original *Declaration
}

// definition returns the original definition when one exists.
func (d Declaration) definition() Declaration {
	if d.Original != nil {
		return *d.Original
	}

	return d
}

// Parameter requests the documentation of a single parameter, read from the
// containing declaration's original definition.
type Parameter struct {
	Name       string
	Containing Declaration
}

// TypeParameter requests the documentation of a single type parameter of
// the containing declaration.
type TypeParameter struct {
	Name       string
	Containing Declaration
}

// Alias requests the summary of the aliased target declaration.
type Alias struct {
	Target Declaration
}

// Member requests the full structured comment of a declaration. Methods,
// types, properties, fields, and every other symbol category take this
// path.
type Member struct {
	Declaration
}

func (Parameter) symbol()     {}
func (TypeParameter) symbol() {}
func (Alias) symbol()         {}
func (Member) symbol()        {}

// Converter resolves symbol documentation, combining a declaration's own
// markup with external annotations.
type Converter struct {
	annotationsDir string
	lineEnding     string
	cache          *AnnotationCache
	readFile       func(string) ([]byte, error)
}

// New creates a new [Converter] with the specified configuration.
func New(opts ...Option) Converter {
	c := Converter{
		lineEnding: defaultLineEnding, // Default
	}

	c.SetOptions(opts...)

	if c.lineEnding == "" {
		c.lineEnding = defaultLineEnding
	}

	c.readFile = os.ReadFile

	return c
}

// Render converts a fragment to plain text using the converter's configured
// line ending. See [Render].
func (c *Converter) Render(fragment string) string {
	return Render(fragment, c.lineEnding)
}

// Resolve returns the documentation for sym, dispatching on its category.
//
// Parameter, type parameter, and alias symbols resolve to the relevant
// section text; every other symbol resolves to its full structured
// [Comment]. Absent sections resolve to empty text, never a failure.
func (c *Converter) Resolve(sym Symbol) (Result, error) {
	switch s := sym.(type) {
	case Parameter:
		cm := c.structured(s.Containing.definition())

		return SectionText(cm.Param(s.Name)), nil
	case TypeParameter:
		cm := c.structured(s.Containing)

		return SectionText(cm.TypeParam(s.Name)), nil
	case Alias:
		cm := c.structured(s.Target)

		return SectionText(cm.Summary), nil
	case Member:
		return c.structured(s.Declaration), nil
	}

	return nil, ErrNilSymbol
}

// structured merges the declaration's own markup with its external
// annotation text and builds the structured comment. Without a configured
// annotations directory only the declaration's own markup is used.
func (c *Converter) structured(d Declaration) Comment {
	if c.annotationsDir == "" {
		return ParseComment(d.Comment, c.lineEnding)
	}

	read := c.readFile
	if read == nil {
		read = os.ReadFile
	}

	external := externalDocumentation(d.DisplayName, d.AssemblyName, c.annotationsDir, c.lineEnding, c.cache, read)

	return ParseComment(mergeDocumentation(d.Comment, external, c.lineEnding), c.lineEnding)
}
