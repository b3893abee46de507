package treeast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreandnought/TreeWatcher/pkg/treeast"
	"github.com/dreandnought/TreeWatcher/pkg/treetext"
)

func TestCursor_PeekIsIdempotent(t *testing.T) {
	t.Parallel()

	cursor := treeast.NewCursor([]treetext.Item{
		{Depth: 0, Name: "root"},
		{Depth: 1, Name: "child"},
	})

	first, ok := cursor.Peek()
	require.True(t, ok)

	second, ok := cursor.Peek()
	require.True(t, ok)
	assert.Equal(t, first, second)

	item, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, first, item)
}

func TestCursor_NextWithoutPeek(t *testing.T) {
	t.Parallel()

	cursor := treeast.NewCursor([]treetext.Item{
		{Depth: 0, Name: "a"},
		{Depth: 0, Name: "b"},
	})

	a, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", a.Name)

	b, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", b.Name)
}

func TestCursor_Exhausted(t *testing.T) {
	t.Parallel()

	cursor := treeast.NewCursor([]treetext.Item{{Depth: 0, Name: "only"}})

	_, err := cursor.Next()
	require.NoError(t, err)

	_, ok := cursor.Peek()
	assert.False(t, ok)

	_, err = cursor.Next()
	assert.ErrorIs(t, err, treeast.ErrExhausted)
}

func TestCursor_ProducerNotCalledAfterExhaustion(t *testing.T) {
	t.Parallel()

	calls := 0
	cursor := treeast.NewCursorFunc(func() (treetext.Item, bool) {
		calls++
		return treetext.Item{}, false
	})

	_, ok := cursor.Peek()
	assert.False(t, ok)
	_, ok = cursor.Peek()
	assert.False(t, ok)
	_, err := cursor.Next()
	assert.ErrorIs(t, err, treeast.ErrExhausted)

	assert.Equal(t, 1, calls, "producer should be pulled exactly once")
}
