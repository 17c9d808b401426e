package xmldoc

import "encoding/json"

// Exception represents one documented <exception> entry.
type Exception struct {
	Cref string `json:"cref" jsonschema:"formatted cross-reference of the exception type"`
	Text string `json:"text" jsonschema:"exception message text"`
}

// Comment is the structured form of a documentation comment, bucketing the
// fragment's content by section. It is built fresh per call and immutable
// once returned.
//
// Every bucket holds the concatenation, in document order, of all text that
// fell inside that section while traversing the fragment. Parameter and
// type parameter entries appearing more than once concatenate rather than
// overwrite.
type Comment struct {
	Summary    string            `json:"summary,omitempty" jsonschema:"summary section text"`
	Remarks    string            `json:"remarks,omitempty" jsonschema:"remarks section text"`
	Returns    string            `json:"returns,omitempty" jsonschema:"returns section text"`
	Value      string            `json:"value,omitempty" jsonschema:"value section text"`
	Example    string            `json:"example,omitempty" jsonschema:"example section text"`
	Params     map[string]string `json:"params,omitempty" jsonschema:"per-parameter documentation"`
	TypeParams map[string]string `json:"type_params,omitempty" jsonschema:"per-type-parameter documentation"`
	Exceptions []Exception       `json:"exceptions,omitempty" jsonschema:"documented exceptions in document order"`
	SeeAlso    []string          `json:"see_also,omitempty" jsonschema:"see-also references in document order"`
}

// Param returns the accumulated documentation for the named parameter, or
// an empty string when the name is absent.
func (c Comment) Param(name string) string {
	return c.Params[name]
}

// TypeParam returns the accumulated documentation for the named type
// parameter, or an empty string when the name is absent.
func (c Comment) TypeParam(name string) string {
	return c.TypeParams[name]
}

// Text returns the comment's summary section.
func (c Comment) Text() string {
	return c.Summary
}

// MarshalJSON implements [json.Marshaler].
func (c Comment) MarshalJSON() ([]byte, error) {
	type alias Comment

	return json.Marshal(alias(c))
}

// SectionText is a single documentation section resolved for a parameter,
// type parameter, or alias symbol.
type SectionText string

// Text returns the section text.
func (s SectionText) Text() string {
	return string(s)
}

// MarshalJSON implements [json.Marshaler].
func (s SectionText) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Result is an interface for documentation results, providing access to the
// flat text form and JSON serialization. It is implemented by [Comment] and
// [SectionText].
type Result interface {
	Text() string
	MarshalJSON() ([]byte, error)
}
