// Package annotations parses per-assembly external annotation files: XML
// documents whose root's direct children each carry a name attribute
// identifying the symbol they document. Entry content is opaque inner
// markup; it is neither re-parsed nor re-escaped.
package annotations

import "encoding/xml"

// Entry is one direct child of the document root.
type Entry struct {
	Name  string `xml:"name,attr"`
	Inner string `xml:",innerxml"`
}

// File is a parsed external annotations document.
type File struct {
	XMLName xml.Name
	Entries []Entry `xml:",any"`
}

// Parse decodes an external annotations document. The root element may have
// any name; only its direct children are inspected.
func Parse(data []byte) (*File, error) {
	var f File
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Lookup returns the raw inner markup of every entry whose name attribute
// equals displayName. Matching is exact and case-sensitive, with no
// wildcards; entries without a name attribute never match a non-empty
// displayName.
func (f *File) Lookup(displayName string) []string {
	var inner []string

	for _, e := range f.Entries {
		if e.Name == displayName {
			inner = append(inner, e.Inner)
		}
	}

	return inner
}
