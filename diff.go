package delta

import "github.com/rivo/uniseg"

// Diff computes the edit that turns document a into document b: an edit
// delta that Compose(a, Diff(a, b)) == b.Trim(). Both inputs must be
// documents (pure-insert sequences); ErrBadDocument is returned otherwise.
//
// The comparison runs over a tokenization of each document's insert text
// into the same units Operation and Delta already measure length in
// (grapheme clusters, or bytes when SetGraphemeMode(false) is in effect),
// with each non-string embed standing in as a single NUL token so its
// position still participates in the alignment even though its payload
// can't be compared character-by-character. Two embeds that land on the
// same NUL-aligned slot but carry different payloads are reported as an
// insert-then-delete pair rather than a retain, since the alignment only
// promises position, not content, for embeds.
func Diff(a, b Delta) (Delta, error) {
	if !a.IsDocument() || !b.IsDocument() {
		return Delta{}, ErrBadDocument
	}

	script := myersDiff(tokenize(a), tokenize(b))
	result := New()
	ac := newCursor(a.ops)
	bc := newCursor(b.ops)

	for _, span := range script {
		remaining := span.Length
		switch span.Kind {
		case diffInsert:
			for remaining > 0 {
				op := bc.next(remaining)
				result = result.Append(op)
				remaining -= OpLength(op)
			}
		case diffDelete:
			for remaining > 0 {
				op := ac.next(remaining)
				result = result.Delete(OpLength(op))
				remaining -= OpLength(op)
			}
		case diffEqual:
			for remaining > 0 {
				length := min(remaining, ac.peekLength(), bc.peekLength())
				aOp := ac.next(length)
				bOp := bc.next(length)
				aIns := aOp.(InsertOp)
				bIns := bOp.(InsertOp)
				if elementEqual(aIns.Element, bIns.Element) {
					result = result.Retain(length, DiffAttributes(aIns.Attributes, bIns.Attributes))
				} else {
					result = result.Insert(bIns.Element, bIns.Attributes)
					result = result.Delete(length)
				}
				remaining -= length
			}
		}
	}
	return result.Trim(), nil
}

// MustDiff is Diff for callers that have already confirmed both sides are
// documents.
func MustDiff(a, b Delta) Delta {
	result, err := Diff(a, b)
	if err != nil {
		panic(err)
	}
	return result
}

// embedToken stands in for a non-string embed insert in the token stream
// Diff aligns. It is the NUL byte: never a valid character an author can
// type, so it never collides with real text while still giving every embed
// a comparable, one-token-long position.
const embedToken = "\x00"

// tokenize flattens a document's insert text into one token per comparison
// unit, in the same units OpLength and SliceOp use.
func tokenize(doc Delta) []string {
	var tokens []string
	for _, op := range doc.ops {
		ins := op.(InsertOp)
		s, isText := ins.Element.(string)
		if !isText {
			tokens = append(tokens, embedToken)
			continue
		}
		if !GraphemeMode() {
			for i := 0; i < len(s); i++ {
				tokens = append(tokens, s[i:i+1])
			}
			continue
		}
		gr := uniseg.NewGraphemes(s)
		for gr.Next() {
			tokens = append(tokens, gr.Str())
		}
	}
	return tokens
}
