package engine

import (
	"fmt"

	"github.com/dshills/composearea/internal/dom"
)

// InsertText inserts plain text at the caret.
func (ca *ComposeArea) InsertText(text string) {
	ca.log.Debug("insert_text (%s)", text)
	ca.insert(func(tree Tree) dom.NodeID {
		return tree.CreateTextNode(text)
	})
}

// InsertImage inserts an <img> element at the caret.
func (ca *ComposeArea) InsertImage(src, alt, class string) {
	ca.log.Debug("insert_image (%s)", alt)
	ca.insert(func(tree Tree) dom.NodeID {
		return tree.CreateElement("img",
			dom.Attr{Name: "src", Value: src},
			dom.Attr{Name: "alt", Value: alt},
			dom.Attr{Name: "class", Value: class},
		)
	})
}

// insert creates a node, inserts it at the caret, writes the caret to the
// selection and normalizes the container.
func (ca *ComposeArea) insert(create func(Tree) dom.NodeID) {
	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not insert: %v", err)
		return
	}
	if err := ca.insertNode(tree, create(tree)); err != nil {
		ca.log.Error("could not insert: %v", err)
		return
	}
	if err := ca.projectCaret(tree); err != nil {
		ca.log.Error("could not set caret position: %v", err)
	}
	tree.Normalize()
}

// insertNode inserts node at the caret start and collapses the caret
// after it. A non-collapsed selection is removed first. The selection is
// not updated.
//
// A caret start beyond the content is clamped to the end of the content,
// so the node is appended and the caret lands right after it.
func (ca *ComposeArea) insertNode(tree Tree, node dom.NodeID) error {
	ca.log.Debug("insert_node")

	ca.RemoveSelection()

	start := ca.caret.Start
	if total := ca.totalSize(tree); start > total {
		ca.log.Debug("caret %d beyond content size %d, clamping", start, total)
		start = total
	}
	size := ca.size(tree, node)

	loc, ok := ca.locate(tree, start, After)
	var err error
	switch {
	case !ok:
		// Past all content.
		err = tree.AppendChild(node)
	case loc.Offset == 0:
		// Between two nodes.
		err = tree.InsertBefore(node, ca.child(tree, loc.Index))
	case tree.Kind(ca.child(tree, loc.Index)) == dom.KindText:
		err = ca.insertIntoText(tree, node, ca.child(tree, loc.Index), loc.Offset)
	default:
		// Inside an atomic node: never split, insert after it.
		if next, ok := tree.Child(loc.Index + 1); ok {
			err = tree.InsertBefore(node, next)
		} else {
			err = tree.AppendChild(node)
		}
	}
	if err != nil {
		return fmt.Errorf("insert node at %d: %w", start, err)
	}

	ca.caret = Caret{Start: start + size, End: start + size}
	return nil
}

// insertIntoText splits the text node at offset and puts node in between.
func (ca *ComposeArea) insertIntoText(tree Tree, node, text dom.NodeID, offset Offset) error {
	right, err := tree.SplitText(text, int(offset))
	if err != nil {
		return fmt.Errorf("split text: %w", err)
	}
	return tree.InsertBefore(node, right)
}
