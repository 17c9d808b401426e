package xmldoc

import "encoding/xml"

// sectionFrame is one open section element. Text appends through the frame
// directly into the comment's bucket, so a nested section (for example a
// <remarks> inside externally merged <summary> markup) suspends the outer
// bucket and resumes it when the inner element closes.
type sectionFrame struct {
	name   string
	append func(string)
}

// commentSink routes traversed text into the named buckets of a Comment.
// Text arriving while no section is open is discarded.
type commentSink struct {
	lineEnding string
	c          *Comment

	sections []sectionFrame
}

func (s *commentSink) openElement(name string, attrs []xml.Attr) {
	switch name {
	case "summary":
		s.push(name, func(t string) { s.c.Summary += t })
	case "remarks":
		s.push(name, func(t string) { s.c.Remarks += t })
	case "returns":
		s.push(name, func(t string) { s.c.Returns += t })
	case "value":
		s.push(name, func(t string) { s.c.Value += t })
	case "example":
		s.push(name, func(t string) { s.c.Example += t })
	case "param":
		key := attrValue(attrs, "name")
		s.push(name, func(t string) {
			if s.c.Params == nil {
				s.c.Params = make(map[string]string)
			}
			s.c.Params[key] += t
		})
	case "typeparam":
		key := attrValue(attrs, "name")
		s.push(name, func(t string) {
			if s.c.TypeParams == nil {
				s.c.TypeParams = make(map[string]string)
			}
			s.c.TypeParams[key] += t
		})
	case "exception":
		s.c.Exceptions = append(s.c.Exceptions, Exception{Cref: formatCref(attrValue(attrs, "cref"))})
		i := len(s.c.Exceptions) - 1
		s.push(name, func(t string) { s.c.Exceptions[i].Text += t })
	case "seealso":
		s.c.SeeAlso = append(s.c.SeeAlso, formatCref(attrValue(attrs, "cref")))
		i := len(s.c.SeeAlso) - 1
		s.push(name, func(t string) { s.c.SeeAlso[i] += t })
	default:
		// Structural and unrecognized tags emit into the open bucket, if any.
		s.text(openTagText(name, attrs, s.lineEnding), true)
	}
}

func (s *commentSink) closeElement(name string) {
	if n := len(s.sections); n > 0 && s.sections[n-1].name == name {
		s.sections = s.sections[:n-1]
	}
}

func (s *commentSink) text(text string, verbatim bool) {
	if len(s.sections) == 0 || text == "" {
		return
	}

	if !verbatim {
		text = trimMultiLineString(text, s.lineEnding)
	}

	s.sections[len(s.sections)-1].append(text)
}

func (s *commentSink) push(name string, appendText func(string)) {
	s.sections = append(s.sections, sectionFrame{name: name, append: appendText})
}

// ParseComment builds the structured form of a documentation fragment,
// performing the same traversal as [Render] but bucketing text per named
// section instead of producing one flat string.
//
// ParseComment inherits [Render]'s fail-closed contract: an empty fragment
// yields a zero record without a parse attempt, and a fragment that cannot
// be parsed yields a record whose summary is the raw fragment.
func ParseComment(fragment, lineEnding string) Comment {
	if fragment == "" {
		return Comment{}
	}

	var c Comment

	sink := commentSink{lineEnding: lineEnding, c: &c}
	if err := walkFragment(fragment, &sink); err != nil {
		return Comment{Summary: fragment}
	}

	return c
}
