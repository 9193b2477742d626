package engine

import (
	"fmt"

	"github.com/dshills/composearea/internal/dom"
)

// Offset is a position in the caret offset space, in UTF-16 code units.
type Offset = uint32

// Caret is a possibly collapsed selection in the offset space.
// Start <= End always holds.
type Caret struct {
	Start Offset
	End   Offset
}

// NewCaret creates a caret spanning a and b in either order.
func NewCaret(a, b Offset) Caret {
	if a > b {
		a, b = b, a
	}
	return Caret{Start: a, End: b}
}

// IsCollapsed returns true if the caret has no extent.
func (c Caret) IsCollapsed() bool {
	return c.Start == c.End
}

// Len returns the number of code units covered by the caret.
func (c Caret) Len() Offset {
	return c.End - c.Start
}

// String returns a human-readable representation of the caret.
func (c Caret) String() string {
	return fmt.Sprintf("[%d, %d)", c.Start, c.End)
}

// NodeIndexOffset identifies a child of the container and an offset
// measured from that child's start.
type NodeIndexOffset struct {
	Index  int
	Offset Offset
}

// Direction picks a node when an offset falls exactly between two
// children, or at the very end of the content.
type Direction int

const (
	// Before selects the node ending at the offset.
	Before Direction = iota
	// After selects the node starting at the offset.
	After
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == Before {
		return "before"
	}
	return "after"
}

// size returns the size of n in the offset space. It is recomputed on
// every call since any mutation may change it.
func (ca *ComposeArea) size(tree Tree, n dom.NodeID) Offset {
	switch kind := tree.Kind(n); kind {
	case dom.KindText:
		return Offset(tree.TextLength(n))
	case dom.KindElement:
		return Offset(dom.UTF16Len(tree.OuterHTML(n)))
	default:
		ca.log.Warn("unhandled node type: %s", kind)
		return 0
	}
}

// totalSize returns the size of all children.
func (ca *ComposeArea) totalSize(tree Tree) Offset {
	return ca.sizeBefore(tree, tree.ChildCount())
}

// sizeBefore returns the size of the children before index.
func (ca *ComposeArea) sizeBefore(tree Tree, index int) Offset {
	var total Offset
	if index <= 0 {
		return total
	}
	node := ca.child(tree, 0)
	for i := 0; i < index; i, node = i+1, tree.Next(node) {
		if node == dom.NoNode {
			panic(invariantf("node at index %d not found", i))
		}
		total += ca.size(tree, node)
	}
	return total
}

// child returns the child at index, which the caller knows exists.
func (ca *ComposeArea) child(tree Tree, index int) dom.NodeID {
	n, ok := tree.Child(index)
	if !ok {
		panic(invariantf("node at index %d not found", index))
	}
	return n
}
