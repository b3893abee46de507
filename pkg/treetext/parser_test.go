package treetext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dreandnought/TreeWatcher/pkg/treetext"
)

func TestParseLine_ConnectorPrefixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantDepth int
		wantName  string
	}{
		{
			name:      "root without glyphs",
			line:      "C:.",
			wantDepth: 0,
			wantName:  "C:.",
		},
		{
			name:      "branch at column zero",
			line:      "├── fileA.txt",
			wantDepth: 0,
			wantName:  "fileA.txt",
		},
		{
			name:      "last branch at column zero",
			line:      "└── dirB",
			wantDepth: 0,
			wantName:  "dirB",
		},
		{
			name:      "one continuation unit",
			line:      "│   ├── b.txt",
			wantDepth: 1,
			wantName:  "b.txt",
		},
		{
			name:      "two continuation units",
			line:      "│   │   └── c.txt",
			wantDepth: 2,
			wantName:  "c.txt",
		},
		{
			name:      "blank spacer unit",
			line:      "    └── fileC.txt",
			wantDepth: 1,
			wantName:  "fileC.txt",
		},
		{
			name:      "mixed blank and continuation units",
			line:      "    │   ├── deep.go",
			wantDepth: 2,
			wantName:  "deep.go",
		},
		{
			name:      "ascii branch",
			line:      "+---dirA",
			wantDepth: 0,
			wantName:  "dirA",
		},
		{
			name:      "ascii last branch",
			line:      "\\---dirZ",
			wantDepth: 0,
			wantName:  "dirZ",
		},
		{
			name:      "ascii continuation",
			line:      "|   +---nested",
			wantDepth: 1,
			wantName:  "nested",
		},
		{
			name:      "compact connector without spaces",
			line:      "│   ├──tight.txt",
			wantDepth: 1,
			wantName:  "tight.txt",
		},
		{
			name:      "short connector form",
			line:      "│   └─ short.txt",
			wantDepth: 1,
			wantName:  "short.txt",
		},
		{
			name:      "name containing connector glyphs",
			line:      "├── we├ird─name.txt",
			wantDepth: 0,
			wantName:  "we├ird─name.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, ok := treetext.ParseLine(tt.line)
			assert.True(t, ok, "expected a parsed item")
			assert.Equal(t, tt.wantDepth, item.Depth)
			assert.Equal(t, tt.wantName, item.Name)
		})
	}
}

func TestParseLine_SpacerLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantDepth int
	}{
		{name: "empty line", line: "", wantDepth: 0},
		{name: "lone continuation glyph", line: "│", wantDepth: 0},
		{name: "lone ascii continuation", line: "|", wantDepth: 0},
		{name: "continuation with trailing spaces", line: "│   ", wantDepth: 0},
		{name: "full unit then lone glyph", line: "│   │", wantDepth: 1},
		{name: "two units then lone glyph", line: "│   │   │", wantDepth: 2},
		{name: "spaces only", line: "        ", wantDepth: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, ok := treetext.ParseLine(tt.line)
			assert.False(t, ok, "expected a spacer line")
			assert.Equal(t, tt.wantDepth, item.Depth)
			assert.Empty(t, item.Name)
		})
	}
}

func TestParseLine_CompressedIndentation(t *testing.T) {
	t.Parallel()

	// A second continuation glyph before the unit boundary opens a new
	// level early instead of ending the scan.
	item, ok := treetext.ParseLine("│  │   ├── x.txt")
	assert.True(t, ok)
	assert.Equal(t, 2, item.Depth)
	assert.Equal(t, "x.txt", item.Name)
}

func TestParseLine_EmbeddedConnector(t *testing.T) {
	t.Parallel()

	// A connector inside a unit ends the scan; the truncated unit still
	// counts one level.
	item, ok := treetext.ParseLine("│ └─ x.txt")
	assert.True(t, ok)
	assert.Equal(t, 1, item.Depth)
	assert.Equal(t, "x.txt", item.Name)
}

func TestParseLine_EmbeddedNameCharacter(t *testing.T) {
	t.Parallel()

	// Compact malformed output where the name starts inside a unit.
	item, ok := treetext.ParseLine("│ x.txt")
	assert.True(t, ok)
	assert.Equal(t, 1, item.Depth)
	assert.Equal(t, "x.txt", item.Name)
}

func TestParseLine_MalformedPrefixRemnants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantName string
	}{
		{name: "dash with space", line: "─ leftover.txt", wantName: "leftover.txt"},
		{name: "dash without space", line: "─leftover.txt", wantName: "leftover.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, ok := treetext.ParseLine(tt.line)
			assert.True(t, ok)
			assert.Equal(t, tt.wantName, item.Name)
		})
	}
}
