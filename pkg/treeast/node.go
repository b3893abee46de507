// Package treeast defines the node tree reconstructed from a parsed
// directory listing and the two builder strategies that assemble it.
package treeast

// Node is a single entry in the reconstructed hierarchy.
// Nodes form a tree with parent/child/sibling pointers; siblings are
// kept in insertion order, which equals original line order.
type Node struct {
	// Name is the entry name with all indentation and connector glyphs
	// stripped. It may legitimately contain glyph characters itself.
	Name string

	// Depth is the structural depth: 0 for forest roots, and always
	// exactly one more than the parent's depth. It may be smaller than
	// the depth parsed from the line when malformed indentation forced
	// a clamp to the deepest available ancestor.
	Depth int

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// NewNode creates a detached node.
func NewNode(name string, depth int) *Node {
	return &Node{Name: name, Depth: depth}
}

// IsFolder reports whether the node has at least one child. The listing
// format never states folder/file explicitly, so this classification is
// structural: derived on read, never stored.
func (n *Node) IsFolder() bool {
	return n.FirstChild != nil
}

// HasChildren reports whether this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children in insertion order.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AppendChild appends child as the last child of parent, maintaining
// the sibling links. A child already attached elsewhere is detached
// first.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild detaches child from parent. It is a no-op if child is not
// a child of parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}
