package delta

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Delta is an ordered sequence of operations describing either the
// contents of a document (when every operation is an insert) or an edit to
// one. Deltas are values: once built, appending to one through Insert,
// Retain, Delete, or Append always re-establishes the canonical invariants
// documented on Append, so any Delta observed by a caller is already
// normalized.
type Delta struct {
	ops []Op
}

// New returns an empty delta.
func New() Delta {
	return Delta{}
}

// FromOps builds a delta by appending each of ops in order, establishing
// the canonical invariants along the way. Use this instead of constructing
// a Delta literal when the input operations may not already be compacted.
func FromOps(ops []Op) Delta {
	d := New()
	for _, op := range ops {
		d = d.Append(op)
	}
	return d
}

// Operations returns the delta's operations in order. The returned slice
// must not be mutated by the caller.
func (d Delta) Operations() []Op {
	return d.ops
}

// Insert appends an insert operation, forwarding to Append.
func (d Delta) Insert(element any, attrs Attributes) Delta {
	return d.Append(NewInsert(element, attrs))
}

// Retain appends a retain operation, forwarding to Append.
func (d Delta) Retain(count int, attrs Attributes) Delta {
	return d.Append(NewRetain(count, attrs))
}

// Delete appends a delete operation, forwarding to Append.
func (d Delta) Delete(count int) Delta {
	return d.Append(NewDelete(count))
}

// Append adds op to the end of the delta, maintaining the canonical form:
//
//  1. An op of length 0, or a nil op, is a no-op.
//  2. If the current last operation is a delete and op is an insert, the
//     insert is hoisted to precede the delete: op is appended before the
//     delete instead of after it, and the delete is re-appended behind it.
//     This is recursive — the hoisted insert may itself now merge with
//     whatever preceded the delete — so a run of straddling inserts always
//     ends up grouped to the left of the deletes they interrupt.
//  3. Otherwise, the new last two operations are passed through
//     CompactOps: a single merged op replaces both, or the pair is kept
//     as is.
func (d Delta) Append(op Op) Delta {
	if op == nil || OpLength(op) == 0 {
		return d
	}
	if len(d.ops) == 0 {
		d.ops = []Op{op}
		return d
	}

	last := d.ops[len(d.ops)-1]
	if _, lastIsDelete := last.(DeleteOp); lastIsDelete {
		if ins, ok := op.(InsertOp); ok {
			d.ops = d.ops[:len(d.ops)-1]
			d = d.Append(ins)
			d = d.Append(last)
			return d
		}
	}

	merged := CompactOps(last, op)
	out := make([]Op, len(d.ops)-1, len(d.ops)-1+len(merged))
	copy(out, d.ops[:len(d.ops)-1])
	out = append(out, merged...)
	d.ops = out
	return d
}

// Trim removes a trailing attribute-less retain, which carries no
// information once it is at the end of a delta. A retain that carries
// attributes is never trimmed, since it still describes a format.
func (d Delta) Trim() Delta {
	if n := len(d.ops); n > 0 && IsTrimmable(d.ops[n-1]) {
		d.ops = d.ops[:n-1]
	}
	return d
}

// Length sums the lengths of operations whose kind is in kinds. With no
// kinds given, it sums every operation's length.
func (d Delta) Length(kinds ...OpKind) int {
	var mask map[OpKind]bool
	if len(kinds) > 0 {
		mask = make(map[OpKind]bool, len(kinds))
		for _, k := range kinds {
			mask[k] = true
		}
	}
	total := 0
	for _, op := range d.ops {
		if mask == nil || mask[op.Kind()] {
			total += OpLength(op)
		}
	}
	return total
}

// IsDocument reports whether every operation in d is an insert, i.e.
// whether d represents a document state rather than an edit.
func (d Delta) IsDocument() bool {
	for _, op := range d.ops {
		if op.Kind() != KindInsert {
			return false
		}
	}
	return true
}

// Concat appends other's operations onto d through the normal Append
// pipeline, so the result is re-compacted across the join the way quill
// Delta's own concat does.
func (d Delta) Concat(other Delta) Delta {
	out := d
	for _, op := range other.ops {
		out = out.Append(op)
	}
	return out
}

// Equal reports structural equality between two deltas: same operations,
// in order, with attribute maps compared via Attributes.Equal.
func (d Delta) Equal(other Delta) bool {
	if len(d.ops) != len(other.ops) {
		return false
	}
	for i, op := range d.ops {
		if !opsEqual(op, other.ops[i]) {
			return false
		}
	}
	return true
}

func opsEqual(a, b Op) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case InsertOp:
		bv := b.(InsertOp)
		return elementEqual(av.Element, bv.Element) && av.Attributes.Equal(bv.Attributes)
	case RetainOp:
		bv := b.(RetainOp)
		return av.Count == bv.Count && av.Attributes.Equal(bv.Attributes)
	case DeleteOp:
		bv := b.(DeleteOp)
		return av.Count == bv.Count
	}
	return false
}

// GoString renders the delta as a compact operation list such as
// delta.Delta{ops: [insert("ab"), delete(1)]}, for %#v and debugger
// inspection. Attributes are not shown and embeds print as <embed>.
func (d Delta) GoString() string {
	var b strings.Builder
	b.WriteString("delta.Delta{ops: [")
	for i, op := range d.ops {
		if i > 0 {
			b.WriteString(", ")
		}
		switch v := op.(type) {
		case InsertOp:
			b.WriteString("insert(")
			b.WriteString(formatElement(v.Element))
			b.WriteByte(')')
		case RetainOp:
			b.WriteString("retain(")
			b.WriteString(strconv.Itoa(v.Count))
			b.WriteByte(')')
		case DeleteOp:
			b.WriteString("delete(")
			b.WriteString(strconv.Itoa(v.Count))
			b.WriteByte(')')
		}
	}
	b.WriteString("]}")
	return b.String()
}

func formatElement(element any) string {
	if s, ok := element.(string); ok {
		return `"` + s + `"`
	}
	return "<embed>"
}

// String renders the delta as its JSON wire form.
func (d Delta) String() string {
	data, err := json.Marshal(d)
	if err != nil {
		var b strings.Builder
		b.WriteString("delta: <marshal error: ")
		b.WriteString(err.Error())
		b.WriteByte('>')
		return b.String()
	}
	return string(data)
}
