package delta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesSplit(t *testing.T) {
	doc := New().
		Insert("ab", Attributes{Key("bold"): true}).
		Insert("\n", Attributes{Key("header"): 1}).
		Insert("cd", nil)

	got, err := Lines(doc)
	require.NoError(t, err)
	require.Len(t, got, 2)

	wantFirst := New().Insert("ab", Attributes{Key("bold"): true})
	require.Truef(t, got[0].Content.Equal(wantFirst), "line 0 content = %v, want %v", got[0].Content, wantFirst)
	require.True(t, got[0].Attributes.Equal(Attributes{Key("header"): 1}), "line 0 attributes = %v, want {header:1}", got[0].Attributes)

	wantSecond := New().Insert("cd", nil)
	require.Truef(t, got[1].Content.Equal(wantSecond), "line 1 content = %v, want %v", got[1].Content, wantSecond)
	require.True(t, got[1].Attributes.IsEmpty(), "line 1 attributes = %v, want empty", got[1].Attributes)
}

func TestLinesRejectsNonDocument(t *testing.T) {
	_, err := Lines(New().Retain(1, nil))
	require.ErrorIs(t, err, ErrBadDocument)
}

func TestLinesWithEmbedAndNoTrailingNewline(t *testing.T) {
	doc := New().Insert(map[string]any{"image": "x.png"}, nil).Insert("caption", nil)
	got, err := Lines(doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Content.Operations(), 2)
}

func TestLinesConsecutiveNewlines(t *testing.T) {
	doc := New().Insert("\n\n", nil)
	got, err := Lines(doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, line := range got {
		require.Emptyf(t, line.Content.Operations(), "line %d content, want empty", i)
	}
}
