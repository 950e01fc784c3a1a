package delta

import "reflect"

// OpKind identifies which of the three operation variants an Op carries.
type OpKind int

const (
	KindInsert OpKind = iota
	KindRetain
	KindDelete
)

func (k OpKind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindRetain:
		return "retain"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is one of InsertOp, RetainOp, or DeleteOp. It is modeled as an
// interface with three concrete implementations rather than a single
// struct with unused fields, so a switch on concrete type is exhaustive
// pattern matching rather than a flag check.
type Op interface {
	Kind() OpKind
}

// InsertOp adds an element at the cursor without advancing through the
// base document. Element is a non-empty string, a non-negative integer
// embed, or an opaque map embed.
type InsertOp struct {
	Element    any
	Attributes Attributes
}

func (InsertOp) Kind() OpKind { return KindInsert }

// RetainOp advances the cursor count positions through the base document,
// optionally applying a format change along the way.
type RetainOp struct {
	Count      int
	Attributes Attributes
}

func (RetainOp) Kind() OpKind { return KindRetain }

// DeleteOp removes count positions from the base document at the cursor.
// Deletes never carry attributes.
type DeleteOp struct {
	Count int
}

func (DeleteOp) Kind() OpKind { return KindDelete }

// NewInsert builds an insert operation. An empty-string element or a nil
// element yields a zero-length op that Delta.Append will discard; empty
// attribute maps are normalized to nil so they are never serialized as {}.
// A null attribute value is only ever meaningful as an explicit format
// removal during a retain's compose — on an insert it carries no meaning,
// so it is stripped here rather than carried around unused.
func NewInsert(element any, attrs Attributes) Op {
	return InsertOp{Element: element, Attributes: stripNulls(attrs)}
}

func stripNulls(a Attributes) Attributes {
	if a.IsEmpty() {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		if v != nil {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// NewRetain builds a retain operation of the given count. A non-positive
// count yields a zero-length op that Delta.Append will discard.
func NewRetain(count int, attrs Attributes) Op {
	return RetainOp{Count: count, Attributes: attrs.clone()}
}

// NewDelete builds a delete operation of the given count. A non-positive
// count yields a zero-length op that Delta.Append will discard.
func NewDelete(count int) Op {
	return DeleteOp{Count: count}
}

// isEmbed reports whether element is an indivisible, length-1 insert
// payload (an integer or a map) rather than text.
func isEmbed(element any) bool {
	switch element.(type) {
	case string, nil:
		return false
	default:
		return true
	}
}

// OpLength returns an operation's length: the grapheme (or byte) count of
// a string insert, 1 for an embed insert, and
// the count for retain/delete. A nil op has length 0.
func OpLength(op Op) int {
	switch v := op.(type) {
	case InsertOp:
		if s, ok := v.Element.(string); ok {
			return stringLength(s)
		}
		if v.Element == nil {
			return 0
		}
		return 1
	case RetainOp:
		if v.Count < 0 {
			return 0
		}
		return v.Count
	case DeleteOp:
		if v.Count < 0 {
			return 0
		}
		return v.Count
	default:
		return 0
	}
}

// elementEqual compares two insert elements. Embed elements may be map
// payloads, which are not comparable with ==, so equality falls back to a
// structural comparison for every element kind rather than special-casing
// maps alone.
func elementEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// CompareOps orders two operations by length: -1 if a is shorter, 0 if
// equal, 1 if a is longer.
func CompareOps(a, b Op) int {
	la, lb := OpLength(a), OpLength(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// IsTrimmable reports whether op is an attribute-less retain: the only kind
// of operation Delta.Trim removes from the tail of a delta.
func IsTrimmable(op Op) bool {
	r, ok := op.(RetainOp)
	return ok && r.Attributes.IsEmpty()
}

// SliceOp splits op at position idx of its length, returning the head
// (first idx units) and the tail (the rest). Attributes are preserved on
// both halves. Slicing an embed insert is a special case: embeds are
// indivisible, so the head is the whole op and the tail is a zero-length
// empty-string insert placeholder. Callers rely on the always-a-pair
// signature, and Delta.Append silently discards that zero-length tail on
// the next append.
func SliceOp(op Op, idx int) (head, tail Op) {
	switch v := op.(type) {
	case InsertOp:
		s, ok := v.Element.(string)
		if !ok {
			return v, InsertOp{Element: ""}
		}
		h, t := stringSlice(s, idx)
		return InsertOp{Element: h, Attributes: v.Attributes}, InsertOp{Element: t, Attributes: v.Attributes}
	case RetainOp:
		if idx < 0 {
			idx = 0
		}
		if idx > v.Count {
			idx = v.Count
		}
		return RetainOp{Count: idx, Attributes: v.Attributes}, RetainOp{Count: v.Count - idx, Attributes: v.Attributes}
	case DeleteOp:
		if idx < 0 {
			idx = 0
		}
		if idx > v.Count {
			idx = v.Count
		}
		return DeleteOp{Count: idx}, DeleteOp{Count: v.Count - idx}
	default:
		return nil, nil
	}
}

// CompactOps tries to merge a and b, the two operations that become
// adjacent in a delta, into a single equivalent operation. It returns a
// one-element slice on success or the unchanged two-element pair
// otherwise. Two text inserts with equal attributes concatenate; two
// retains or two deletes with equal attributes add their counts. Embed
// inserts (integer or map elements) never merge with one another, even
// when their attributes match, because each embed is a distinct, atomic
// unit of length 1.
func CompactOps(a, b Op) []Op {
	switch av := a.(type) {
	case InsertOp:
		bv, ok := b.(InsertOp)
		if !ok {
			break
		}
		as, aIsText := av.Element.(string)
		bs, bIsText := bv.Element.(string)
		if aIsText && bIsText && av.Attributes.Equal(bv.Attributes) {
			return []Op{InsertOp{Element: as + bs, Attributes: av.Attributes}}
		}
	case RetainOp:
		bv, ok := b.(RetainOp)
		if ok && av.Attributes.Equal(bv.Attributes) {
			return []Op{RetainOp{Count: av.Count + bv.Count, Attributes: av.Attributes}}
		}
	case DeleteOp:
		bv, ok := b.(DeleteOp)
		if ok {
			return []Op{DeleteOp{Count: av.Count + bv.Count}}
		}
	}
	return []Op{a, b}
}
