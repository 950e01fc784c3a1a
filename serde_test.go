package delta

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDeltaMarshalBareArray(t *testing.T) {
	d := New().Insert("hi", Attributes{Key("bold"): true}).Retain(2, nil).Delete(1)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 3)
	require.Equal(t, "hi", raw[0]["insert"])
	require.NotContains(t, raw[1], "attributes")
}

func TestDeltaUnmarshalBareArray(t *testing.T) {
	const wire = `[{"insert":"hi","attributes":{"bold":true}},{"retain":2},{"delete":1}]`

	var d Delta
	require.NoError(t, json.Unmarshal([]byte(wire), &d))

	want := New().Insert("hi", Attributes{Key("bold"): true}).Retain(2, nil).Delete(1)
	if !d.Equal(want) {
		t.Errorf("unmarshaled delta = %v, want %v", d, want)
	}
}

func TestDeltaUnmarshalWrappedObject(t *testing.T) {
	const wire = `{"ops":[{"insert":"wrapped"}]}`

	var d Delta
	require.NoError(t, json.Unmarshal([]byte(wire), &d))

	want := New().Insert("wrapped", nil)
	if !d.Equal(want) {
		t.Errorf("unmarshaled delta = %v, want %v", d, want)
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	d := New().
		Insert("hello ", Attributes{Key("bold"): true}).
		Insert(map[string]any{"image": "x.png"}, nil).
		Retain(3, Attributes{Key("color"): nil}).
		Delete(2)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var round Delta
	require.NoError(t, json.Unmarshal(data, &round))

	if diff := cmp.Diff(d.Operations(), round.Operations(), opEqualOpt); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRetainNullAttributeSurvivesWire(t *testing.T) {
	d := New().Retain(1, Attributes{Key("color"): nil})
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Contains(t, string(data), `"color":null`)
}
