package treeast

import (
	"errors"

	"github.com/dreandnought/TreeWatcher/pkg/treetext"
)

// ErrExhausted is returned by Cursor.Next when the cursor is advanced
// past the end of the item sequence. Peek-before-advance callers never
// see it; hitting it is a contract violation in the caller.
var ErrExhausted = errors.New("treeast: cursor exhausted")

// Cursor is a single-pass cursor over parsed items with one item of
// lookahead. It feeds the recursive builder, which decides whether an
// item belongs to the current sibling run before consuming it.
type Cursor struct {
	pull   func() (treetext.Item, bool)
	peeked treetext.Item
	cached bool
	done   bool
}

// NewCursor creates a cursor over a pre-parsed item slice.
func NewCursor(items []treetext.Item) *Cursor {
	pos := 0
	return NewCursorFunc(func() (treetext.Item, bool) {
		if pos >= len(items) {
			return treetext.Item{}, false
		}
		item := items[pos]
		pos++
		return item, true
	})
}

// NewCursorFunc creates a cursor over an arbitrary producer. The
// producer returns false once the sequence is exhausted and is not
// called again afterwards.
func NewCursorFunc(pull func() (treetext.Item, bool)) *Cursor {
	return &Cursor{pull: pull}
}

// Peek returns the next item without consuming it. It is idempotent:
// repeated calls return the same item. The second return value is false
// once the sequence is exhausted.
func (c *Cursor) Peek() (treetext.Item, bool) {
	if c.cached {
		return c.peeked, true
	}
	if c.done {
		return treetext.Item{}, false
	}

	item, ok := c.pull()
	if !ok {
		c.done = true
		return treetext.Item{}, false
	}

	c.peeked = item
	c.cached = true
	return item, true
}

// Next consumes and returns the next item, which is the peeked item if
// one is cached. It returns ErrExhausted past the end of the sequence.
func (c *Cursor) Next() (treetext.Item, error) {
	if item, ok := c.Peek(); ok {
		c.cached = false
		return item, nil
	}
	return treetext.Item{}, ErrExhausted
}
