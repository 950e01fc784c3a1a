package delta

import (
	"encoding/json"
	"fmt"
)

// Wire format, matching quill-delta's JSON shape:
//
//	{"insert": "hello", "attributes": {"bold": true}}
//	{"retain": 4, "attributes": {"color": null}}
//	{"delete": 3}
//
// A Delta unmarshals from either a bare array of such objects, or an object
// wrapping that array under "ops" — callers that unmarshal a value they
// received from a peer that embeds it as `{"ops": [...]}` don't need a
// second type just to strip the wrapper. Marshaling always produces the
// bare-array form, since that's what the reference JS implementation's own
// JSON.stringify(delta) produces.
//
// Symbol-flavored attribute keys (see AttrKey) have no wire representation
// of their own: they are written under their plain name, the same slot a
// same-named string key would use, and anything decoded off the wire is
// always a plain string key. A document that round-trips through JSON
// loses the string/symbol distinction on any attribute name that isn't
// already unique.

type opWire struct {
	Insert     json.RawMessage `json:"insert,omitempty"`
	Retain     *int            `json:"retain,omitempty"`
	Delete     *int            `json:"delete,omitempty"`
	Attributes map[string]any  `json:"attributes,omitempty"`
}

func attrsToWire(a Attributes) map[string]any {
	if a.IsEmpty() {
		return nil
	}
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k.Name] = v
	}
	return out
}

func (op InsertOp) toWire() (opWire, error) {
	raw, err := json.Marshal(op.Element)
	if err != nil {
		return opWire{}, err
	}
	return opWire{Insert: raw, Attributes: attrsToWire(op.Attributes)}, nil
}

func (op RetainOp) toWire() opWire {
	n := op.Count
	return opWire{Retain: &n, Attributes: attrsToWire(op.Attributes)}
}

func (op DeleteOp) toWire() opWire {
	n := op.Count
	return opWire{Delete: &n}
}

// MarshalJSON implements json.Marshaler for a single operation.
func (op InsertOp) MarshalJSON() ([]byte, error) {
	w, err := op.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (op RetainOp) MarshalJSON() ([]byte, error) { return json.Marshal(op.toWire()) }
func (op DeleteOp) MarshalJSON() ([]byte, error) { return json.Marshal(op.toWire()) }

func opFromWire(w opWire) (Op, error) {
	attrs := StringAttrs(w.Attributes)
	switch {
	case w.Insert != nil:
		var element any
		if err := json.Unmarshal(w.Insert, &element); err != nil {
			return nil, err
		}
		return NewInsert(element, attrs), nil
	case w.Retain != nil:
		return NewRetain(*w.Retain, attrs), nil
	case w.Delete != nil:
		return NewDelete(*w.Delete), nil
	default:
		return nil, fmt.Errorf("delta: operation has none of insert, retain, delete: %+v", w)
	}
}

// deltaWire is the `{"ops": [...]}` wrapped shape, accepted on decode as an
// alternative to the bare array.
type deltaWire struct {
	Ops []opWire `json:"ops"`
}

// MarshalJSON implements json.Marshaler for Delta, producing the bare-array
// wire form.
func (d Delta) MarshalJSON() ([]byte, error) {
	wires := make([]opWire, len(d.ops))
	for i, op := range d.ops {
		switch v := op.(type) {
		case InsertOp:
			w, err := v.toWire()
			if err != nil {
				return nil, err
			}
			wires[i] = w
		case RetainOp:
			wires[i] = v.toWire()
		case DeleteOp:
			wires[i] = v.toWire()
		}
	}
	return json.Marshal(wires)
}

// UnmarshalJSON implements json.Unmarshaler for Delta, accepting either a
// bare array of operations or an object wrapping that array under "ops".
func (d *Delta) UnmarshalJSON(data []byte) error {
	var wires []opWire
	if err := json.Unmarshal(data, &wires); err != nil {
		var wrapped deltaWire
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return err
		}
		wires = wrapped.Ops
	}

	out := New()
	for _, w := range wires {
		op, err := opFromWire(w)
		if err != nil {
			return err
		}
		out = out.Append(op)
	}
	*d = out
	return nil
}
