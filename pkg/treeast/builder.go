package treeast

import "github.com/dreandnought/TreeWatcher/pkg/treetext"

// Builder assembles a forest incrementally from parsed items in
// original line order. It maintains a stack of open ancestors, so each
// item is fully placed before the next one is read; this is the variant
// suited to streaming insertion into a live view.
//
// The recursive one-shot equivalent is BuildForest. Both produce
// structurally identical forests for the same item sequence.
type Builder struct {
	forest Forest
	// stack holds the open ancestor chain. Parsed depths are strictly
	// increasing from bottom to top between insertions; they can differ
	// from the structural depths stored on the nodes when indentation
	// was malformed.
	stack []stackEntry
}

type stackEntry struct {
	node  *Node
	depth int
}

// NewBuilder creates an empty incremental builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add places one item into the forest and returns the created node.
// Items with a parsed depth deeper than the deepest open ancestor plus
// one are clamped onto that ancestor; missing intermediate levels are
// never invented.
func (b *Builder) Add(item treetext.Item) *Node {
	for len(b.stack) > 0 && b.stack[len(b.stack)-1].depth >= item.Depth {
		b.stack = b.stack[:len(b.stack)-1]
	}

	var parent *Node
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1].node
	}

	node := NewNode(item.Name, 0)
	if parent != nil {
		node.Depth = parent.Depth + 1
		AppendChild(parent, node)
	} else {
		b.forest.Roots = append(b.forest.Roots, node)
	}

	b.stack = append(b.stack, stackEntry{node: node, depth: item.Depth})
	return node
}

// Forest returns the forest built so far. After the final Add the
// result is complete and the caller must treat it as immutable.
func (b *Builder) Forest() *Forest {
	return &b.forest
}

// BuildForest assembles a forest in one pass by recursive descent over
// a lookahead cursor. Recursion depth equals tree depth; goroutine
// stacks grow on demand, so listings as deep as their line count are
// fine.
func BuildForest(cursor *Cursor) (*Forest, error) {
	roots, err := buildSiblings(cursor, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Forest{Roots: roots}, nil
}

// buildSiblings consumes every item whose parsed depth is at least
// minDepth and returns them as a sibling run at structural depth level.
// An item parsed deeper than minDepth still joins this run (the clamp
// behavior); its own children are gathered relative to its parsed
// depth.
func buildSiblings(cursor *Cursor, minDepth, level int) ([]*Node, error) {
	var nodes []*Node

	for {
		item, ok := cursor.Peek()
		if !ok || item.Depth < minDepth {
			break
		}

		item, err := cursor.Next()
		if err != nil {
			return nil, err
		}

		node := NewNode(item.Name, level)

		children, err := buildSiblings(cursor, item.Depth+1, level+1)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			AppendChild(node, child)
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}
