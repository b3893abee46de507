package treeast_test

import (
	"testing"

	"github.com/dreandnought/TreeWatcher/pkg/treeast"
)

func TestNode_IsFolder(t *testing.T) {
	t.Parallel()

	parent := treeast.NewNode("dir", 0)
	child := treeast.NewNode("file.txt", 1)

	if parent.IsFolder() {
		t.Error("expected node without children to not be a folder")
	}

	treeast.AppendChild(parent, child)

	if !parent.IsFolder() {
		t.Error("expected node with a child to be a folder")
	}
	if child.IsFolder() {
		t.Error("expected leaf child to not be a folder")
	}
}

func TestNode_ChildrenOrder(t *testing.T) {
	t.Parallel()

	parent := treeast.NewNode("dir", 0)
	names := []string{"a.txt", "b.txt", "c.txt"}

	for _, name := range names {
		treeast.AppendChild(parent, treeast.NewNode(name, 1))
	}

	children := parent.Children()
	if len(children) != len(names) {
		t.Fatalf("expected %d children, got %d", len(names), len(children))
	}
	for i, child := range children {
		if child.Name != names[i] {
			t.Errorf("child %d: expected %q, got %q", i, names[i], child.Name)
		}
		if child.Parent != parent {
			t.Errorf("child %d: wrong parent", i)
		}
	}
}

func TestNode_ChildCount(t *testing.T) {
	t.Parallel()

	parent := treeast.NewNode("dir", 0)

	if parent.ChildCount() != 0 {
		t.Errorf("expected 0 children, got %d", parent.ChildCount())
	}

	treeast.AppendChild(parent, treeast.NewNode("a", 1))
	treeast.AppendChild(parent, treeast.NewNode("b", 1))
	treeast.AppendChild(parent, treeast.NewNode("c", 1))

	if parent.ChildCount() != 3 {
		t.Errorf("expected 3 children, got %d", parent.ChildCount())
	}
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()

	parent := treeast.NewNode("dir", 0)
	a := treeast.NewNode("a", 1)
	b := treeast.NewNode("b", 1)
	c := treeast.NewNode("c", 1)

	treeast.AppendChild(parent, a)
	treeast.AppendChild(parent, b)
	treeast.AppendChild(parent, c)

	treeast.RemoveChild(parent, b)

	children := parent.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children after removal, got %d", len(children))
	}
	if children[0] != a || children[1] != c {
		t.Error("expected remaining children a, c in order")
	}
	if b.Parent != nil || b.Prev != nil || b.Next != nil {
		t.Error("expected removed child to be fully detached")
	}
}

func TestAppendChild_Reparents(t *testing.T) {
	t.Parallel()

	first := treeast.NewNode("first", 0)
	second := treeast.NewNode("second", 0)
	child := treeast.NewNode("child", 1)

	treeast.AppendChild(first, child)
	treeast.AppendChild(second, child)

	if first.HasChildren() {
		t.Error("expected child to be detached from first parent")
	}
	if child.Parent != second {
		t.Error("expected child to be attached to second parent")
	}
}
