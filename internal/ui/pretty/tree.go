package pretty

import (
	"fmt"
	"io"

	"github.com/dreandnought/TreeWatcher/internal/ui/icons"
	"github.com/dreandnought/TreeWatcher/pkg/explore"
)

// Connector glyphs for redrawing the normalized tree.
const (
	connectorBranch = "├── "
	connectorLast   = "└── "
	prefixOpen      = "│   "
	prefixClosed    = "    "
	collapsedMark   = " …"
)

// TreeRenderer writes a reconstructed tree as normalized listing text.
// It walks through an Explorer so only the levels actually rendered are
// materialized; collapsed folders are marked instead of descended into.
type TreeRenderer struct {
	styles *Styles
	icons  *icons.Classifier

	// MaxDepth limits how many levels below the roots are expanded.
	// -1 expands everything, 0 renders only the roots.
	MaxDepth int

	// Width truncates rendered lines to this many runes. 0 disables
	// truncation.
	Width int
}

// NewTreeRenderer creates a renderer. classifier may be nil to render
// without icons.
func NewTreeRenderer(styles *Styles, classifier *icons.Classifier, maxDepth int) *TreeRenderer {
	return &TreeRenderer{styles: styles, icons: classifier, MaxDepth: maxDepth}
}

// Render writes every root and its expanded descendants to w.
func (r *TreeRenderer) Render(w io.Writer, explorer *explore.Explorer) error {
	for _, root := range explorer.Roots() {
		label := r.label(explorer, root)
		if err := r.writeLine(w, r.styles.Root.Render(label)); err != nil {
			return err
		}
		if err := r.renderChildren(w, explorer, root, "", 1); err != nil {
			return err
		}
	}
	return nil
}

func (r *TreeRenderer) renderChildren(w io.Writer, explorer *explore.Explorer, parent explore.Entry, prefix string, level int) error {
	if !parent.Expandable {
		return nil
	}
	if r.MaxDepth >= 0 && level > r.MaxDepth {
		return nil
	}

	children, err := explorer.Expand(parent.ID)
	if err != nil {
		return err
	}

	for idx, child := range children {
		last := idx == len(children)-1

		connector := connectorBranch
		childPrefix := prefix + prefixOpen
		if last {
			connector = connectorLast
			childPrefix = prefix + prefixClosed
		}

		label := r.label(explorer, child)
		style := r.styles.File
		if child.Expandable {
			style = r.styles.Folder
		}

		line := r.styles.Connector.Render(prefix+connector) + style.Render(label)
		if child.Expandable && r.MaxDepth >= 0 && level+1 > r.MaxDepth {
			line += r.styles.Collapsed.Render(collapsedMark)
		}

		if err := r.writeLine(w, line); err != nil {
			return err
		}
		if err := r.renderChildren(w, explorer, child, childPrefix, level+1); err != nil {
			return err
		}
	}

	return nil
}

func (r *TreeRenderer) label(explorer *explore.Explorer, entry explore.Entry) string {
	if r.icons == nil {
		return entry.Name
	}
	node, ok := explorer.Node(entry.ID)
	if !ok {
		return entry.Name
	}
	return r.icons.For(node) + " " + entry.Name
}

func (r *TreeRenderer) writeLine(w io.Writer, line string) error {
	if r.Width > 0 {
		line = truncate(line, r.Width)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("render tree: %w", err)
	}
	return nil
}

// truncate limits a line to width runes. Styled lines are only
// truncated when they carry no escape sequences, so color output is
// never cut mid-sequence.
func truncate(line string, width int) string {
	for _, r := range line {
		if r == '\x1b' {
			return line
		}
	}

	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
