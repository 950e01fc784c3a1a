package delta

import "testing"

func TestAttributesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Attributes
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs empty", nil, Attributes{}, true},
		{"same scalar", Attributes{Key("bold"): true}, Attributes{Key("bold"): true}, true},
		{"different value", Attributes{Key("bold"): true}, Attributes{Key("bold"): false}, false},
		{"different key count", Attributes{Key("bold"): true}, Attributes{Key("bold"): true, Key("italic"): true}, false},
		{"string key vs symbol key", Attributes{Key("bold"): true}, Attributes{SymbolKey("bold"): true}, false},
		{"nested maps equal", Attributes{Key("style"): Attributes{Key("x"): 1}}, Attributes{Key("style"): Attributes{Key("x"): 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposeAttributes(t *testing.T) {
	a := Attributes{Key("bold"): true, Key("color"): "blue"}
	b := Attributes{Key("bold"): true, Key("color"): "red", Key("font"): nil}

	t.Run("keep nulls false drops removed keys", func(t *testing.T) {
		got := ComposeAttributes(a, b, false)
		want := Attributes{Key("bold"): true, Key("color"): "red"}
		if !got.Equal(want) {
			t.Errorf("ComposeAttributes() = %v, want %v", got, want)
		}
	})

	t.Run("keep nulls true preserves removal marker", func(t *testing.T) {
		got := ComposeAttributes(a, b, true)
		want := Attributes{Key("bold"): true, Key("color"): "red", Key("font"): nil}
		if !got.Equal(want) {
			t.Errorf("ComposeAttributes() = %v, want %v", got, want)
		}
	})

	t.Run("both empty returns nil", func(t *testing.T) {
		if got := ComposeAttributes(nil, nil, true); got != nil {
			t.Errorf("ComposeAttributes() = %v, want nil", got)
		}
	})
}

func TestTransformAttributes(t *testing.T) {
	left := Attributes{Key("bold"): true}
	right := Attributes{Key("bold"): false, Key("italic"): true}

	t.Run("priority right returns right verbatim", func(t *testing.T) {
		got := TransformAttributes(left, right, PriorityRight)
		if !got.Equal(right) {
			t.Errorf("TransformAttributes() = %v, want %v", got, right)
		}
	})

	t.Run("priority left drops keys left already owns", func(t *testing.T) {
		got := TransformAttributes(left, right, PriorityLeft)
		want := Attributes{Key("italic"): true}
		if !got.Equal(want) {
			t.Errorf("TransformAttributes() = %v, want %v", got, want)
		}
	})

	t.Run("priority left with empty left returns right", func(t *testing.T) {
		got := TransformAttributes(nil, right, PriorityLeft)
		if !got.Equal(right) {
			t.Errorf("TransformAttributes() = %v, want %v", got, right)
		}
	})
}

func TestDiffAttributes(t *testing.T) {
	a := Attributes{Key("bold"): true, Key("color"): "red"}
	b := Attributes{Key("bold"): true, Key("italic"): true}

	got := DiffAttributes(a, b)
	want := Attributes{Key("italic"): true, Key("color"): nil}
	if !got.Equal(want) {
		t.Errorf("DiffAttributes() = %v, want %v", got, want)
	}
}
