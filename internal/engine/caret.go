package engine

import "github.com/dshills/composearea/internal/dom"

// CaretPosition returns the caret. It does not query the selection.
func (ca *ComposeArea) CaretPosition() Caret {
	return ca.caret
}

// SetCaretPosition sets the caret. It does not update the selection.
// The pair is stored ordered, whichever of start and end is smaller.
func (ca *ComposeArea) SetCaretPosition(start, end Offset) {
	ca.caret = NewCaret(start, end)
}

// UpdateCaretFromDOM reads the caret from the live selection. If the
// selection is not within the container the caret is left unchanged.
//
// Call this after every action that might have modified the container.
func (ca *ComposeArea) UpdateCaretFromDOM() {
	ca.log.Debug("update_caret_position")

	caret, ok := ca.readCaret()
	if !ok {
		return
	}
	ca.caret = caret
}

// UpdateDOMFromCaret writes the caret to the live selection.
func (ca *ComposeArea) UpdateDOMFromCaret() {
	ca.log.Debug("set_dom_caret_position %s", ca.caret)

	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not set caret position: %v", err)
		return
	}
	if err := ca.projectCaret(tree); err != nil {
		ca.log.Error("could not set caret position: %v", err)
	}
}

// readCaret converts the selection's boundary points to offsets.
func (ca *ComposeArea) readCaret() (Caret, bool) {
	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not read caret: %v", err)
		return Caret{}, false
	}
	sel, err := ca.env.Selection()
	if err != nil {
		ca.log.Error("could not read caret: %v", err)
		return Caret{}, false
	}
	startPoint, endPoint, ok := sel.Current()
	if !ok {
		return Caret{}, false
	}

	start, ok := ca.boundaryOffset(tree, startPoint)
	if !ok {
		return Caret{}, false
	}
	end, ok := ca.boundaryOffset(tree, endPoint)
	if !ok {
		return Caret{}, false
	}
	if start > end {
		panic(invariantf("selection start %d after end %d", start, end))
	}
	return Caret{Start: start, End: end}, true
}

// boundaryOffset converts a boundary point to an offset. Points on the
// container count the children before them; points in a text child add
// their local offset; points on or inside any other child resolve to its
// start when at offset 0 on the child itself, and to its end otherwise.
func (ca *ComposeArea) boundaryOffset(tree Tree, b dom.Boundary) (Offset, bool) {
	if b.Node == tree.Root() {
		if b.Offset > tree.ChildCount() {
			return 0, false
		}
		return ca.sizeBefore(tree, b.Offset), true
	}

	index, ok := tree.IndexOf(b.Node)
	if !ok {
		return 0, false
	}
	child := ca.child(tree, index)
	before := ca.sizeBefore(tree, index)
	switch {
	case child == b.Node && tree.Kind(child) == dom.KindText:
		return before + Offset(b.Offset), true
	case child == b.Node && b.Offset == 0:
		return before, true
	default:
		return before + ca.size(tree, child), true
	}
}

// projectCaret writes the caret to the selection.
func (ca *ComposeArea) projectCaret(tree Tree) error {
	sel, err := ca.env.Selection()
	if err != nil {
		return err
	}

	start, startOK := ca.locate(tree, ca.caret.Start, After)
	var end NodeIndexOffset
	endOK := false
	if ca.caret.End > ca.caret.Start {
		end, endOK = ca.locate(tree, ca.caret.End, Before)
	}

	switch {
	case startOK && endOK:
		return sel.Select(ca.boundary(tree, start), ca.boundary(tree, end))
	case startOK:
		b := ca.boundary(tree, start)
		return sel.Select(b, b)
	default:
		// At the end of the node list.
		count := tree.ChildCount()
		if count == 0 {
			panic(invariantf("no last node to place the caret after"))
		}
		b := dom.Boundary{Node: tree.Root(), Offset: count}
		return sel.Select(b, b)
	}
}

// boundary converts a located child and offset to a boundary point.
// Atomic nodes cannot hold a caret, so offsets inside them snap to the
// container position after the node.
func (ca *ComposeArea) boundary(tree Tree, loc NodeIndexOffset) dom.Boundary {
	node := ca.child(tree, loc.Index)
	switch {
	case tree.Kind(node) == dom.KindText:
		return dom.Boundary{Node: node, Offset: int(loc.Offset)}
	case loc.Offset == 0:
		return dom.Boundary{Node: tree.Root(), Offset: loc.Index}
	default:
		return dom.Boundary{Node: tree.Root(), Offset: loc.Index + 1}
	}
}
