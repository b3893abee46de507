// Package reporter serializes load results for machine consumption.
package reporter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dreandnought/TreeWatcher/pkg/loader"
	"github.com/dreandnought/TreeWatcher/pkg/treeast"
)

// jsonVersion is the schema version of the JSON document.
const jsonVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string     `json:"version"`
	Roots   []JSONNode `json:"roots"`
	Stats   JSONStats  `json:"stats"`
}

// JSONNode represents a single reconstructed entry.
type JSONNode struct {
	Name     string     `json:"name"`
	Depth    int        `json:"depth"`
	Folder   bool       `json:"folder"`
	Children []JSONNode `json:"children,omitempty"`
}

// JSONStats contains aggregate statistics for the load.
type JSONStats struct {
	LinesRead   int `json:"linesRead"`
	BannerLines int `json:"bannerLines"`
	SpacerLines int `json:"spacerLines"`
	ItemsParsed int `json:"itemsParsed"`
	Folders     int `json:"folders"`
	Files       int `json:"files"`
	MaxDepth    int `json:"maxDepth"`
}

// WriteJSON writes the full result as an indented JSON document.
func WriteJSON(w io.Writer, result *loader.Result) error {
	doc := JSONOutput{
		Version: jsonVersion,
		Roots:   jsonNodes(result.Forest.Roots),
		Stats: JSONStats{
			LinesRead:   result.Stats.LinesRead,
			BannerLines: result.Stats.BannerLines,
			SpacerLines: result.Stats.SpacerLines,
			ItemsParsed: result.Stats.ItemsParsed,
			Folders:     result.Stats.Folders,
			Files:       result.Stats.Leaves,
			MaxDepth:    result.Stats.MaxDepth,
		},
	}

	bw := bufio.NewWriter(w)
	encoder := json.NewEncoder(bw)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func jsonNodes(nodes []*treeast.Node) []JSONNode {
	out := make([]JSONNode, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, JSONNode{
			Name:     node.Name,
			Depth:    node.Depth,
			Folder:   node.IsFolder(),
			Children: jsonNodes(node.Children()),
		})
	}
	return out
}
