package delta

// Transform rebases b against a concurrent edit a that happened on the same
// base document, producing the edit that applies b's intent to a's result:
//
//	apply(apply(S, a), Transform(a, b, p)) = apply(apply(S, b), Transform(b, a, p.Opposite()))
//
// for every document S — the TP1 convergence law. priority matters in two
// places. When a and b both insert at the same position, PriorityLeft keeps
// a's insert where it is and pushes b's past it with a retain, and
// PriorityRight lets b's insert land first. On a span both sides retain, it
// decides whose attributes win (see TransformAttributes). Away from the
// insert tie, an insert in a always
// becomes a retain (it happened, so b's operation must step over it) and an
// insert in b always survives verbatim.
func Transform(a, b Delta, priority Priority) Delta {
	result := New()
	ac := newCursor(a.ops)
	bc := newCursor(b.ops)
	aFirst := priority == PriorityLeft

	for ac.hasNext() || bc.hasNext() {
		switch {
		case ac.peekKind() == KindInsert && (aFirst || bc.peekKind() != KindInsert):
			result = result.Retain(OpLength(ac.next(0)), nil)

		case bc.peekKind() == KindInsert:
			result = result.Append(bc.next(0))

		default:
			length := min(ac.peekLength(), bc.peekLength())
			aOp := ac.next(length)
			bOp := bc.next(length)

			switch {
			case isDelete(aOp):
				// a already removed this span; b has nothing left to say
				// about it.
			case isDelete(bOp):
				result = result.Append(bOp)
			default:
				result = result.Retain(length, TransformAttributes(retainAttrs(aOp), retainAttrs(bOp), priority))
			}
		}
	}
	return result.Trim()
}

func isDelete(op Op) bool {
	_, ok := op.(DeleteOp)
	return ok
}

func retainAttrs(op Op) Attributes {
	if r, ok := op.(RetainOp); ok {
		return r.Attributes
	}
	return nil
}
