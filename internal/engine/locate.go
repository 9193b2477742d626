package engine

import "github.com/dshills/composearea/internal/dom"

// locate returns the child at offset and the offset from that child's
// start.
//
// If offset lies exactly between two children, dir chooses between them:
// Before returns the earlier child with an offset equal to its size, After
// returns the later child at offset 0. At offset 0, Before finds nothing.
// Past the end of the content, After finds nothing and Before clamps to
// the end of the last child.
func (ca *ComposeArea) locate(tree Tree, offset Offset, dir Direction) (NodeIndexOffset, bool) {
	count := tree.ChildCount()
	if count == 0 {
		return NodeIndexOffset{}, false
	}

	remaining := offset
	var prevSize Offset
	last := ca.child(tree, 0)
	for index, node := 0, last; index < count; index, node = index+1, tree.Next(node) {
		if node == dom.NoNode {
			panic(invariantf("node at index %d not found", index))
		}
		last = node

		// Exactly at the start of this node.
		if remaining == 0 {
			if dir == After {
				return NodeIndexOffset{Index: index}, true
			}
			if index == 0 {
				return NodeIndexOffset{}, false
			}
			return NodeIndexOffset{Index: index - 1, Offset: prevSize}, true
		}

		size := ca.size(tree, node)
		switch {
		case remaining < size:
			return NodeIndexOffset{Index: index, Offset: remaining}, true
		case remaining == size:
			if dir == Before {
				return NodeIndexOffset{Index: index, Offset: size}, true
			}
			remaining = 0
		default:
			remaining -= size
		}
		prevSize = size
	}

	if dir == After {
		return NodeIndexOffset{}, false
	}
	return NodeIndexOffset{Index: count - 1, Offset: ca.size(tree, last)}, true
}
