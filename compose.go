package delta

// Compose merges two consecutive edits into one, so that for any document S:
//
//	apply(apply(S, a), b) = apply(S, Compose(a, b))
//
// b is composed on top of a's result: an insert in b always lands in the
// result regardless of what a was doing at that position, and a delete in a
// always survives regardless of what b does to the range it removes. Those
// two priority rules are checked first on every cycle; only once neither
// applies does the loop fall through to matching a and b up by length and
// merging attributes.
func Compose(a, b Delta) Delta {
	result := New()
	ac := newCursor(a.ops)
	bc := newCursor(b.ops)

	for ac.hasNext() || bc.hasNext() {
		switch {
		case bc.peekKind() == KindInsert:
			result = result.Append(bc.next(0))

		case ac.peekKind() == KindDelete:
			result = result.Append(ac.next(0))

		default:
			length := min(ac.peekLength(), bc.peekLength())
			aOp := ac.next(length)
			bOp := bc.next(length)

			switch bv := bOp.(type) {
			case RetainOp:
				switch av := aOp.(type) {
				case RetainOp:
					result = result.Retain(length, ComposeAttributes(av.Attributes, bv.Attributes, true))
				case InsertOp:
					result = result.Insert(av.Element, ComposeAttributes(av.Attributes, bv.Attributes, false))
				}
			case DeleteOp:
				if _, ok := aOp.(RetainOp); ok {
					result = result.Append(bv)
				}
				// aOp is an insert and bOp deletes it: the insert never
				// existed as far as the composed result is concerned.
			}
		}
	}
	return result.Trim()
}
