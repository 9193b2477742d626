// Package engine maintains a linear caret offset space over the children
// of a contenteditable container and keeps it consistent across edits.
//
// # Offset Space
//
// Every child of the container has a size in UTF-16 code units:
//
//   - text nodes: the length of their character data
//   - elements: the length of their serialized markup (outerHTML), so
//     <img src="a.jpg" alt="x"> counts 25 units, not 1
//   - anything else: 0, with a warning
//
// A caret offset is the sum of the sizes of the children before it plus
// an offset inside the child it lands in. Sizing elements by markup is a
// deliberate product decision inherited from the widget this engine
// backs; do not change it to rendered length without one.
//
// # Components
//
//   - Offset model (size): the size of one node
//   - Node locator (locate): offset plus Direction to child index and local offset
//   - Inserter (insertNode): splits text runs, inserts, advances the caret
//   - Selection remover (RemoveSelection): deletes a non-collapsed selection
//     and re-reads the caret from the live selection
//   - Caret synchronizer (projectCaret, UpdateCaretFromDOM): maps the caret
//     to and from the environment's selection
//
// # Basic Usage
//
//	win := dom.NewWindow()
//	// ... add <div id="compose"> to win.Document().Body() ...
//	ca, err := engine.BindTo(win, "compose")
//	if err != nil {
//	    return err
//	}
//
//	ca.InsertText("hello ")
//	ca.InsertImage("smile.png", "🙂", "emoji")
//	ca.Text(false) // "hello 🙂"
//
// After the user moves the caret or edits the container directly, call
// UpdateCaretFromDOM to pull the caret back from the selection.
//
// # Error Handling
//
// Environment failures (missing container, no selection) and rejected
// tree operations are logged and swallowed: the operation becomes a no-op
// and the caret is left untouched. Broken invariants, such as the locator
// naming a child the tree does not have, panic with an error wrapping
// ErrInvariantViolation.
//
// # Thread Safety
//
// A ComposeArea is not safe for concurrent use. Every operation runs to
// completion on the caller's goroutine.
package engine
