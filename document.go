package delta

import "strings"

// Line pairs one line's worth of content with the attributes carried by the
// newline that terminates it (or none, for a final line with no trailing
// newline).
type Line struct {
	Content    Delta
	Attributes Attributes
}

// Lines splits a document delta into Line records at each "\n" in its
// insert text, the way a rendered editor pairs block-level formatting
// (headers, blockquotes, list items) with the newline character that
// carries it rather than with the text before it. A non-string embed never
// itself contains a newline, so it always accumulates into whichever line
// is currently open.
//
// ErrBadDocument is returned if doc is not a pure-insert sequence; Lines
// only has meaning for document state, never for an edit.
func Lines(doc Delta) ([]Line, error) {
	if !doc.IsDocument() {
		return nil, ErrBadDocument
	}

	var lines []Line
	current := New()
	flush := func(attrs Attributes) {
		lines = append(lines, Line{Content: current, Attributes: attrs})
		current = New()
	}

	for _, op := range doc.ops {
		ins := op.(InsertOp)
		text, isText := ins.Element.(string)
		if !isText {
			current = current.Insert(ins.Element, ins.Attributes)
			continue
		}
		for {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				if text != "" {
					current = current.Insert(text, ins.Attributes)
				}
				break
			}
			if idx > 0 {
				current = current.Insert(text[:idx], ins.Attributes)
			}
			flush(ins.Attributes)
			text = text[idx+1:]
		}
	}
	if current.Length() > 0 {
		flush(nil)
	}
	return lines, nil
}

// MustLines is Lines for callers that have already confirmed doc is a
// document.
func MustLines(doc Delta) []Line {
	lines, err := Lines(doc)
	if err != nil {
		panic(err)
	}
	return lines
}
