package reporter_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreandnought/TreeWatcher/pkg/loader"
	"github.com/dreandnought/TreeWatcher/pkg/reporter"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	result, err := loader.Load(context.Background(), []string{
		"C:.",
		"├── dirA",
		"│   └── nested.txt",
		"└── leaf.txt",
	}, loader.Options{})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, reporter.WriteJSON(&buf, result))

	var doc reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &doc))

	assert.Equal(t, "1", doc.Version)
	require.Len(t, doc.Roots, 1)

	root := doc.Roots[0]
	assert.Equal(t, "C:.", root.Name)
	assert.Equal(t, 0, root.Depth)
	assert.True(t, root.Folder)
	require.Len(t, root.Children, 2)

	dirA := root.Children[0]
	assert.Equal(t, "dirA", dirA.Name)
	assert.True(t, dirA.Folder)
	require.Len(t, dirA.Children, 1)
	assert.Equal(t, "nested.txt", dirA.Children[0].Name)
	assert.Equal(t, 2, dirA.Children[0].Depth)

	leaf := root.Children[1]
	assert.Equal(t, "leaf.txt", leaf.Name)
	assert.False(t, leaf.Folder)
	assert.Empty(t, leaf.Children)

	assert.Equal(t, 4, doc.Stats.LinesRead)
	assert.Equal(t, 2, doc.Stats.Folders)
	assert.Equal(t, 2, doc.Stats.Files)
	assert.Equal(t, 2, doc.Stats.MaxDepth)
}

func TestWriteJSON_LeafChildrenOmitted(t *testing.T) {
	t.Parallel()

	result, err := loader.Load(context.Background(), []string{"C:.", "└── x.txt"}, loader.Options{})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, reporter.WriteJSON(&buf, result))

	assert.NotContains(t, buf.String(), `"children": []`)
}
