package delta

// Next is a standalone two-cursor advance step over two operation
// sequences. Compose, Transform, and Diff do not call it; they walk their
// inputs with opCursor below. Deltas are immutable, so rather than a stateful
// cursor object, Next is a plain function: it takes the current remainders
// of both operation sequences and returns the next matched-length head
// from each side plus the sequences' new remainders. The caller's loop
// owns the state on its own stack.
//
// skipType biases the case where a's leading op is strictly longer than
// b's: if a0's kind equals skipType, a0 is *not* sliced against b0 — both
// heads are consumed whole even though their lengths differ. This keeps
// the side being read-through from being split just because the shorter
// side's op is a kind that would otherwise be silently swallowed. The
// bias only ever applies on this branch; when b's leading op is the
// longer one, b is always sliced regardless of skipType.
func Next(opsA, opsB []Op, skipType OpKind) (headA, headB Op, restA, restB []Op) {
	if len(opsA) == 0 && len(opsB) == 0 {
		return nil, nil, opsA, opsB
	}
	if len(opsA) == 0 {
		return nil, opsB[0], opsA, opsB[1:]
	}
	if len(opsB) == 0 {
		return opsA[0], nil, opsA[1:], opsB
	}

	a0, b0 := opsA[0], opsB[0]

	switch CompareOps(a0, b0) {
	case 0:
		return a0, b0, opsA[1:], opsB[1:]

	case 1: // a0 longer than b0
		if a0.Kind() == skipType {
			return a0, b0, opsA[1:], opsB[1:]
		}
		head, rem := SliceOp(a0, OpLength(b0))
		restA = prepend(rem, opsA[1:])
		return head, b0, restA, opsB[1:]

	default: // a0 shorter than b0
		head, rem := SliceOp(b0, OpLength(a0))
		restB = prepend(rem, opsB[1:])
		return a0, head, opsA[1:], restB
	}
}

func prepend(op Op, rest []Op) []Op {
	out := make([]Op, 0, len(rest)+1)
	out = append(out, op)
	out = append(out, rest...)
	return out
}

// opCursor walks a single operation sequence, letting a caller pull a
// bounded-length chunk off the front at a time instead of a whole op. It is
// the single-sided counterpart to Next: Compose and Transform run one
// cursor per side and decide for themselves, op kind by op kind, how much
// of the front to take on a given cycle, which the symmetric two-sided Next
// cannot express on its own once priority (insert-wins, delete-wins)
// dispatch enters the picture.
//
// An exhausted cursor behaves as an infinite attribute-less retain,
// standing for the implicit trailing retain after a delta's last op.
type opCursor struct {
	ops []Op
}

func newCursor(ops []Op) *opCursor {
	return &opCursor{ops: ops}
}

func (c *opCursor) hasNext() bool {
	return len(c.ops) > 0
}

func (c *opCursor) peekKind() OpKind {
	if len(c.ops) == 0 {
		return KindRetain
	}
	return c.ops[0].Kind()
}

func (c *opCursor) peekLength() int {
	if len(c.ops) == 0 {
		return maxOpLength
	}
	return OpLength(c.ops[0])
}

// next consumes up to length units from the front of the cursor, splitting
// the leading op if length falls strictly inside it and keeping the
// remainder at the front for the next call. length <= 0 means "take the
// whole leading op, however long it is."
func (c *opCursor) next(length int) Op {
	if len(c.ops) == 0 {
		return RetainOp{Count: length}
	}
	head := c.ops[0]
	full := OpLength(head)
	if length <= 0 || length >= full {
		c.ops = c.ops[1:]
		return head
	}
	h, t := SliceOp(head, length)
	c.ops = prepend(t, c.ops[1:])
	return h
}

// maxOpLength stands in for "unbounded" when an exhausted cursor's implicit
// trailing retain needs to lose a min() comparison to whatever is left on
// the other side.
const maxOpLength = int(^uint(0) >> 1)
