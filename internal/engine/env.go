package engine

import (
	"fmt"

	"github.com/dshills/composearea/internal/dom"
)

// Tree is the ordered child list of the bound container together with the
// primitives the engine edits it with. *dom.Container implements it.
type Tree interface {
	// Root returns the container node, used for boundary points between children.
	Root() dom.NodeID
	ChildCount() int
	Child(index int) (dom.NodeID, bool)
	// Next returns the child after n, or dom.NoNode after the last one.
	Next(n dom.NodeID) dom.NodeID
	Kind(n dom.NodeID) dom.Kind
	// TextLength returns the character data length in UTF-16 code units.
	TextLength(n dom.NodeID) int
	OuterHTML(n dom.NodeID) string

	InsertBefore(n, ref dom.NodeID) error
	AppendChild(n dom.NodeID) error
	// SplitText splits a text child at offset and returns the right half.
	SplitText(n dom.NodeID, offset int) (dom.NodeID, error)
	RemoveChild(n dom.NodeID) error
	// Normalize merges adjacent text runs. It is idempotent.
	Normalize()

	CreateTextNode(data string) dom.NodeID
	CreateElement(tag string, attrs ...dom.Attr) dom.NodeID

	// IndexOf returns the index of the child that is n or contains it.
	IndexOf(n dom.NodeID) (int, bool)
	InnerHTML() string
	ExtractText(noTrim bool) string
}

// Selection is the environment's live selection. *dom.Selection implements it.
type Selection interface {
	// Current returns the ordered boundary points of the active range.
	Current() (start, end dom.Boundary, ok bool)
	// DeleteContents deletes the contents of the active range and
	// collapses it.
	DeleteContents() error
	// Select replaces the selection with a range from anchor to focus.
	Select(anchor, focus dom.Boundary) error
}

// Environment gives the engine access to its container and selection.
// It is passed in at construction instead of being looked up globally.
type Environment interface {
	Tree() (Tree, error)
	Selection() (Selection, error)
}

// host is the Environment backed by a dom.Window. The container is looked
// up by id on every call, like a page script would.
type host struct {
	win *dom.Window
	id  string
}

// NewHost returns an Environment for the element with the given id in win.
func NewHost(win *dom.Window, id string) Environment {
	return &host{win: win, id: id}
}

func (h *host) Tree() (Tree, error) {
	doc := h.win.Document()
	el, ok := doc.GetElementByID(h.id)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrContainerNotFound, h.id)
	}
	return doc.Container(el), nil
}

func (h *host) Selection() (Selection, error) {
	sel := h.win.Selection()
	if sel == nil {
		return nil, ErrNoSelection
	}
	return sel, nil
}
