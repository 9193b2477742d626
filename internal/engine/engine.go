package engine

import (
	"fmt"

	"github.com/dshills/composearea/internal/dom"
	"github.com/dshills/composearea/internal/logging"
)

// ComposeArea is the editing state bound to one container: the
// environment it edits and the caret in the offset space.
//
// The caret is not kept in sync with the container automatically. The
// engine writes it to the selection after its own edits; call
// UpdateCaretFromDOM after anything else touches the container.
type ComposeArea struct {
	env   Environment
	log   *logging.Logger
	caret Caret

	wrapperClass string
	initialHTML  string
}

// New creates a ComposeArea over env with the caret at (0, 0).
func New(env Environment, opts ...Option) *ComposeArea {
	ca := &ComposeArea{
		env:          env,
		log:          logging.Default(),
		wrapperClass: DefaultWrapperClass,
	}
	for _, opt := range opts {
		opt(ca)
	}
	ca.log = ca.log.WithComponent("engine")
	return ca
}

// BindTo replaces the element with the given id by an editable container
// with the same id and returns a ComposeArea bound to it. The container
// holds a single <br>, or the markup set with WithInitialHTML.
func BindTo(win *dom.Window, id string, opts ...Option) (*ComposeArea, error) {
	ca := New(NewHost(win, id), opts...)
	ca.log.Info("bind to #%s", id)

	doc := win.Document()
	wrapper, ok := doc.GetElementByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrContainerNotFound, id)
	}

	div := doc.CreateElement("div",
		dom.Attr{Name: "id", Value: id},
		dom.Attr{Name: "class", Value: ca.wrapperClass},
		dom.Attr{Name: "contenteditable", Value: "true"},
	)
	if ca.initialHTML != "" {
		if err := doc.SetInnerHTML(div, ca.initialHTML); err != nil {
			return nil, fmt.Errorf("initialize #%s: %w", id, err)
		}
	} else if err := doc.AppendChild(div, doc.CreateElement("br")); err != nil {
		return nil, fmt.Errorf("initialize #%s: %w", id, err)
	}
	if err := doc.ReplaceWith(wrapper, div); err != nil {
		return nil, fmt.Errorf("initialize #%s: %w", id, err)
	}

	ca.log.Info("initialized #%s", id)
	return ca, nil
}

// Text extracts the plain text of the container, with images replaced by
// their alt text. Surrounding whitespace is trimmed unless noTrim.
func (ca *ComposeArea) Text(noTrim bool) string {
	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not extract text: %v", err)
		return ""
	}
	return tree.ExtractText(noTrim)
}

// HTML returns the serialized contents of the container.
func (ca *ComposeArea) HTML() string {
	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not serialize: %v", err)
		return ""
	}
	return tree.InnerHTML()
}

// Clear removes every child of the container and resets the caret.
func (ca *ComposeArea) Clear() {
	tree, err := ca.env.Tree()
	if err != nil {
		ca.log.Error("could not clear: %v", err)
		return
	}
	for count := tree.ChildCount(); count > 0; count = tree.ChildCount() {
		if err := tree.RemoveChild(ca.child(tree, count-1)); err != nil {
			ca.log.Error("could not clear: %v", err)
			return
		}
	}
	ca.caret = Caret{}
}
