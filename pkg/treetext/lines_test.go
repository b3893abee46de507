package treetext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dreandnought/TreeWatcher/pkg/treetext"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "single line without newline",
			content: "C:.",
			want:    []string{"C:."},
		},
		{
			name:    "lf endings",
			content: "C:.\n├── a.txt\n",
			want:    []string{"C:.", "├── a.txt"},
		},
		{
			name:    "crlf endings",
			content: "C:.\r\n├── a.txt\r\n",
			want:    []string{"C:.", "├── a.txt"},
		},
		{
			name:    "trailing whitespace stripped",
			content: "C:.   \n├── a.txt\t\n",
			want:    []string{"C:.", "├── a.txt"},
		},
		{
			name:    "interior blank lines kept",
			content: "C:.\n\n├── a.txt",
			want:    []string{"C:.", "", "├── a.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, treetext.SplitLines(tt.content))
		})
	}
}
