package engine

// RemoveSelection deletes the contents of a non-collapsed selection inside
// the container, re-reads the caret from the selection and normalizes.
// It returns true if content was deleted.
func (ca *ComposeArea) RemoveSelection() bool {
	sel, err := ca.env.Selection()
	if err != nil {
		ca.log.Error("could not get selection: %v", err)
		return false
	}
	start, end, ok := sel.Current()
	if !ok {
		ca.log.Error("could not find selection: %v", ErrNoSelection)
		return false
	}
	if start == end {
		return false
	}

	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not remove selection: %v", err)
		return false
	}
	if _, ok := ca.boundaryOffset(tree, start); !ok {
		ca.log.Warn("selection start %s is outside the container", start)
		return false
	}
	if _, ok := ca.boundaryOffset(tree, end); !ok {
		ca.log.Warn("selection end %s is outside the container", end)
		return false
	}

	if err := sel.DeleteContents(); err != nil {
		ca.log.Error("could not delete range contents: %v", err)
		return false
	}

	// How the environment merges what is left is its business; the
	// selection it reports afterwards is the truth.
	ca.UpdateCaretFromDOM()
	tree.Normalize()
	return true
}
