package xmldoc

import (
	"encoding/xml"
	"strings"
)

// attrValue returns the value of the named attribute, or an empty string
// when the attribute is absent.
func attrValue(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// wrapRoot wraps a raw fragment in a synthetic root element so fragments
// with multiple top-level elements (e.g. consecutive <param> tags) parse as
// a single well-formed document.
func wrapRoot(fragment string) string {
	return "<docroot>" + fragment + "</docroot>"
}

// hasSummary reports whether the fragment already contains a <summary>
// element.
func hasSummary(fragment string) bool {
	return strings.Contains(fragment, "<summary>")
}
