// Package explore exposes a built forest to a consumer one level at a
// time. Root entries are available immediately; a node's children are
// handed out only when that node is explicitly expanded, so consumers
// never pay for subtrees they never open.
package explore

import (
	"errors"
	"fmt"

	"github.com/dreandnought/TreeWatcher/pkg/treeast"
)

// ErrUnknownEntry is returned when an entry ID was never exposed by
// this explorer.
var ErrUnknownEntry = errors.New("explore: unknown entry")

// EntryID identifies an exposed entry. IDs are stable for the lifetime
// of the explorer and are never reused or invalidated.
type EntryID int

// Entry is the consumer-facing view of a node: enough to display it and
// to decide whether it can be expanded, without touching grandchildren.
type Entry struct {
	ID         EntryID
	Name       string
	Depth      int
	Expandable bool
}

// Explorer materializes a forest incrementally. It is not safe for
// concurrent use: expansion mutates the entry table, so all calls must
// come from the consumer's primary line of control. The underlying
// forest is never mutated.
type Explorer struct {
	nodes    map[EntryID]*treeast.Node
	expanded map[EntryID][]Entry
	roots    []Entry
	nextID   EntryID
}

// New creates an explorer over a fully or partially built forest.
// Only the roots are registered; nothing deeper is touched.
func New(forest *treeast.Forest) *Explorer {
	e := &Explorer{
		nodes:    make(map[EntryID]*treeast.Node),
		expanded: make(map[EntryID][]Entry),
	}
	if forest != nil {
		for _, root := range forest.Roots {
			e.roots = append(e.roots, e.register(root))
		}
	}
	return e
}

// Roots returns the root entries in original order.
func (e *Explorer) Roots() []Entry {
	return e.roots
}

// Expand returns the children of the identified entry, registering them
// on first request. Expansion is idempotent: repeated calls return the
// same entries without rebuilding. Expanding a non-expandable entry
// returns an empty slice.
func (e *Explorer) Expand(id EntryID) ([]Entry, error) {
	if children, ok := e.expanded[id]; ok {
		return children, nil
	}

	node, ok := e.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownEntry, id)
	}

	children := []Entry{}
	for child := node.FirstChild; child != nil; child = child.Next {
		children = append(children, e.register(child))
	}

	e.expanded[id] = children
	return children, nil
}

// Node returns the underlying node for an exposed entry. Callers must
// treat the node as read-only.
func (e *Explorer) Node(id EntryID) (*treeast.Node, bool) {
	node, ok := e.nodes[id]
	return node, ok
}

func (e *Explorer) register(node *treeast.Node) Entry {
	id := e.nextID
	e.nextID++
	e.nodes[id] = node

	return Entry{
		ID:         id,
		Name:       node.Name,
		Depth:      node.Depth,
		Expandable: node.IsFolder(),
	}
}
