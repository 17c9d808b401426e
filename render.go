package xmldoc

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// fragmentSink receives traversal events from walkFragment in document
// order. Element names arrive lowercased. Text arrives verbatim when the
// nearest enclosing element is <code>, preserving pre-formatted example
// code.
type fragmentSink interface {
	openElement(name string, attrs []xml.Attr)
	closeElement(name string)
	text(s string, verbatim bool)
}

// walkFragment wraps the fragment in a synthetic root and performs a single
// forward pass over its node stream, feeding elements and text nodes to
// sink. The nearest enclosing element name is tracked on a stack local to
// this walk; <filterpriority> elements are skipped along with their
// descendants and never reach the sink.
func walkFragment(fragment string, sink fragmentSink) error {
	dec := xml.NewDecoder(strings.NewReader(wrapRoot(fragment)))

	var stack []string

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := strings.ToLower(t.Name.Local)
			if name == "filterpriority" {
				if err := dec.Skip(); err != nil {
					return err
				}

				continue
			}

			stack = append(stack, name)
			sink.openElement(name, t.Attr)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

			sink.closeElement(strings.ToLower(t.Name.Local))

		case xml.CharData:
			verbatim := len(stack) > 0 && stack[len(stack)-1] == "code"
			sink.text(string(t), verbatim)
		}
	}
}

// renderSink accumulates the plain-text form of a fragment.
type renderSink struct {
	out        strings.Builder
	lineEnding string
}

func (s *renderSink) openElement(name string, attrs []xml.Attr) {
	s.out.WriteString(openTagText(name, attrs, s.lineEnding))
}

func (s *renderSink) closeElement(string) {}

func (s *renderSink) text(text string, verbatim bool) {
	if verbatim {
		s.out.WriteString(text)

		return
	}

	s.out.WriteString(trimMultiLineString(text, s.lineEnding))
}

// Render converts an XML documentation fragment to plain text, substituting
// lineEnding for every structural newline.
//
// Render is total: an empty fragment returns an empty string without a
// parse attempt, and a fragment that cannot be parsed as well-formed markup
// is returned unchanged.
func Render(fragment, lineEnding string) string {
	if fragment == "" {
		return ""
	}

	sink := renderSink{lineEnding: lineEnding}
	if err := walkFragment(fragment, &sink); err != nil {
		return fragment
	}

	return sink.out.String()
}
