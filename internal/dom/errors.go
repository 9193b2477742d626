package dom

import "fmt"

// Error is a DOM exception. Name carries the exception name used by the
// DOM standard (for example "IndexSizeError").
type Error struct {
	Name    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Is reports whether target is a sentinel with the same exception name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Name == e.Name && (t.Message == "" || t.Message == e.Message)
}

// Sentinel exceptions, matched with errors.Is.
var (
	// ErrIndexSize indicates an offset beyond the length of a node.
	ErrIndexSize = &Error{Name: "IndexSizeError"}

	// ErrHierarchyRequest indicates an insertion that would break the tree.
	ErrHierarchyRequest = &Error{Name: "HierarchyRequestError"}

	// ErrNotFound indicates a reference node that is not a child of the parent.
	ErrNotFound = &Error{Name: "NotFoundError"}

	// ErrInvalidNodeType indicates an operation applied to the wrong kind of node.
	ErrInvalidNodeType = &Error{Name: "InvalidNodeTypeError"}

	// ErrInvalidState indicates an operation on a detached range or an empty selection.
	ErrInvalidState = &Error{Name: "InvalidStateError"}

	// ErrSyntax indicates markup that could not be parsed.
	ErrSyntax = &Error{Name: "SyntaxError"}
)

func newError(sentinel *Error, format string, args ...any) *Error {
	return &Error{Name: sentinel.Name, Message: fmt.Sprintf(format, args...)}
}
