package delta

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
)

func TestComposeLiteralScenarios(t *testing.T) {
	tests := []struct {
		name string
		a, b Delta
		want Delta
	}{
		{
			name: "two inserts",
			a:    New().Insert("abc", nil),
			b:    New().Retain(3, nil).Insert("def", nil),
			want: New().Insert("abcdef", nil),
		},
		{
			name: "delete after insert",
			a:    New().Insert("hello world", nil),
			b:    New().Delete(6).Retain(5, nil),
			want: New().Insert("world", nil),
		},
		{
			name: "insert/retain removes null attributes",
			a:    New().Insert("A", nil),
			b:    New().Retain(1, Attributes{Key("bold"): true, Key("color"): "red", Key("font"): nil}),
			want: New().Insert("A", Attributes{Key("bold"): true, Key("color"): "red"}),
		},
		{
			name: "retain/retain keeps null attributes",
			a:    New().Retain(1, Attributes{Key("color"): "blue"}),
			b:    New().Retain(1, Attributes{Key("bold"): true, Key("color"): "red", Key("font"): nil}),
			want: New().Retain(1, Attributes{Key("bold"): true, Key("color"): "red", Key("font"): nil}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.a, tt.b)
			if !got.Equal(tt.want) {
				t.Errorf("Compose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposeAppliedMatchesSequentialApply(t *testing.T) {
	gofakeit.Seed(1)
	for i := 0; i < 50; i++ {
		doc := randomDocumentForTest()
		a := randomEditForTest(doc.Length())
		afterA, err := Apply(doc, a)
		if err != nil {
			continue
		}
		b := randomEditForTest(afterA.Length())
		afterB, err := Apply(afterA, b)
		if err != nil {
			continue
		}

		composed := Compose(a, b)
		viaCompose, err := Apply(doc, composed)
		if err != nil {
			t.Fatalf("Apply(doc, Compose(a,b)) failed: %v", err)
		}
		if !viaCompose.Equal(afterB) {
			t.Fatalf("compose law violated on iteration %d:\n  apply(apply(doc,a),b) = %v\n  apply(doc,compose(a,b)) = %v", i, afterB, viaCompose)
		}
	}
}

func TestComposeResultIsCanonical(t *testing.T) {
	gofakeit.Seed(2)
	for i := 0; i < 30; i++ {
		doc := randomDocumentForTest()
		a := randomEditForTest(doc.Length())
		afterA, err := Apply(doc, a)
		if err != nil {
			continue
		}
		b := randomEditForTest(afterA.Length())
		composed := Compose(a, b)
		if reassembled := FromOps(composed.Operations()); !reassembled.Equal(composed) {
			t.Fatalf("Compose() produced a non-canonical delta on iteration %d: %v", i, composed)
		}
	}
}

// randomDocumentForTest and randomEditForTest are shared fixture builders
// used across this package's randomized invariant checks.
func randomDocumentForTest() Delta {
	d := New()
	n := gofakeit.Number(1, 6)
	for i := 0; i < n; i++ {
		d = d.Insert(gofakeit.Word()+" ", nil)
	}
	return d
}

func randomEditForTest(baseLen int) Delta {
	if baseLen == 0 {
		return New().Insert(gofakeit.Word(), nil)
	}
	d := New()
	remaining := baseLen
	for remaining > 0 {
		n := gofakeit.Number(1, remaining)
		switch gofakeit.Number(0, 2) {
		case 0:
			d = d.Retain(n, nil)
		case 1:
			d = d.Delete(n)
		default:
			d = d.Insert(gofakeit.Word(), nil)
			continue
		}
		remaining -= n
	}
	if gofakeit.Bool() {
		d = d.Insert(gofakeit.Word(), nil)
	}
	return d
}
