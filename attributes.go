package delta

// AttrKey identifies a single attribute entry. Most callers only ever use
// string keys, constructed with Key; SymbolKey exists to interoperate with
// peers that carry Ruby/Elixir-style atom-tagged formats, where a
// symbol-keyed entry and a string-keyed entry of the same spelling are
// distinct attributes rather than the same one written two ways.
type AttrKey struct {
	Name   string
	Symbol bool
}

// Key builds an ordinary string attribute key, e.g. Key("bold").
func Key(name string) AttrKey { return AttrKey{Name: name} }

// SymbolKey builds a symbol-flavored attribute key that never compares
// equal to a string key of the same name.
func SymbolKey(name string) AttrKey { return AttrKey{Name: name, Symbol: true} }

func (k AttrKey) String() string { return k.Name }

// Attributes is a mapping from attribute key to attribute value. Values are
// opaque: strings, booleans, numbers, nested maps, or nil. A nil value is
// meaningful during Compose with keepNulls true: it marks the explicit
// removal of a format rather than its absence.
type Attributes map[AttrKey]any

// StringAttrs builds an Attributes map from a plain string-keyed map, the
// shape produced by JSON decoding and the shape most callers reach for.
func StringAttrs(m map[string]any) Attributes {
	if len(m) == 0 {
		return nil
	}
	out := make(Attributes, len(m))
	for k, v := range m {
		out[Key(k)] = v
	}
	return out
}

// IsEmpty reports whether a carries no attributes. A nil map and an empty
// map are equivalent.
func (a Attributes) IsEmpty() bool {
	return len(a) == 0
}

// Equal reports structural equality between two attribute maps, treating a
// nil map and an empty map as equal.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !attrValueEqual(v, bv) {
			return false
		}
	}
	return true
}

func attrValueEqual(a, b any) bool {
	am, aok := a.(Attributes)
	bm, bok := b.(Attributes)
	if aok || bok {
		if !aok || !bok {
			return false
		}
		return am.Equal(bm)
	}
	am2, aok2 := a.(map[string]any)
	bm2, bok2 := b.(map[string]any)
	if aok2 || bok2 {
		if !aok2 || !bok2 {
			return false
		}
		return StringAttrs(am2).Equal(StringAttrs(bm2))
	}
	return a == b
}

func (a Attributes) clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ComposeAttributes right-biasedly merges b over a: for each key in b, that
// value overrides a's. When keepNulls is false (used when composing an
// insert with a formatting retain), any entry whose resulting value is nil
// is dropped from the output. When keepNulls is true (used when composing
// two retains), nil entries survive so that an explicit format removal can
// itself propagate through a further compose.
func ComposeAttributes(a, b Attributes, keepNulls bool) Attributes {
	if a.IsEmpty() && b.IsEmpty() {
		return nil
	}
	out := make(Attributes, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	if !keepNulls {
		for k, v := range out {
			if v == nil {
				delete(out, k)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// TransformAttributes resolves concurrent attribute changes. With
// PriorityRight, right wins outright. With PriorityLeft, left's existing
// keys shadow right's attempt to set them, but right may still introduce
// keys left never touched.
func TransformAttributes(left, right Attributes, priority Priority) Attributes {
	if priority == PriorityRight || left.IsEmpty() {
		return right.clone()
	}
	if right.IsEmpty() {
		return nil
	}
	out := make(Attributes, len(right))
	for k, v := range right {
		if _, shadowed := left[k]; !shadowed {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DiffAttributes computes the attribute-level edit that turns a into b: for
// each key in b whose value differs from a's (or is absent from a), emit
// b's value; for each key present in a but absent from b, emit an explicit
// nil removal.
func DiffAttributes(a, b Attributes) Attributes {
	out := make(Attributes, len(a)+len(b))
	for k, v := range b {
		if av, ok := a[k]; !ok || !attrValueEqual(av, v) {
			out[k] = v
		}
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = nil
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
