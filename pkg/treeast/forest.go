package treeast

// Forest is the ordered set of root nodes produced by one build pass.
// A well-formed listing yields exactly one root, but zero and multiple
// roots are both representable so malformed input degrades instead of
// aborting.
type Forest struct {
	Roots []*Node
}

// NodeCount returns the total number of nodes in the forest.
func (f *Forest) NodeCount() int {
	count := 0
	f.Walk(func(*Node) error {
		count++
		return nil
	})
	return count
}

// MaxDepth returns the largest structural depth of any node, or -1 for
// an empty forest.
func (f *Forest) MaxDepth() int {
	max := -1
	f.Walk(func(n *Node) error {
		if n.Depth > max {
			max = n.Depth
		}
		return nil
	})
	return max
}

// Walk performs a pre-order traversal over every root.
func (f *Forest) Walk(fn WalkFunc) error {
	if f == nil {
		return nil
	}
	for _, root := range f.Roots {
		if err := Walk(root, fn); err != nil {
			return err
		}
	}
	return nil
}
