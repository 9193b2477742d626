package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/composearea/internal/dom"
	"github.com/dshills/composearea/internal/logging"
)

// fixture is a ComposeArea bound to an emptied container in a fresh window.
type fixture struct {
	ca   *ComposeArea
	win  *dom.Window
	doc  *dom.Document
	id   string
	logs *observer.ObservedLogs
}

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

func newWindow(t *testing.T) (*dom.Window, string) {
	t.Helper()
	win := dom.NewWindow()
	doc := win.Document()
	id := "composearea-" + uuid.NewString()
	wrapper := doc.CreateElement("div", dom.Attr{Name: "id", Value: id})
	if err := doc.AppendChild(doc.Body(), wrapper); err != nil {
		t.Fatalf("failed to add wrapper: %v", err)
	}
	return win, id
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	win, id := newWindow(t)
	log, logs := observedLogger()
	ca, err := BindTo(win, id, WithLogger(log))
	if err != nil {
		t.Fatalf("BindTo failed: %v", err)
	}
	ca.Clear()
	return &fixture{ca: ca, win: win, doc: win.Document(), id: id, logs: logs}
}

// container returns the bound element.
func (f *fixture) container(t *testing.T) dom.NodeID {
	t.Helper()
	el, ok := f.doc.GetElementByID(f.id)
	if !ok {
		t.Fatalf("container #%s not found", f.id)
	}
	return el
}

func (f *fixture) tree(t *testing.T) Tree {
	t.Helper()
	tree, err := f.ca.env.Tree()
	if err != nil {
		t.Fatalf("no tree: %v", err)
	}
	return tree
}

func (f *fixture) setHTML(t *testing.T, markup string) {
	t.Helper()
	if err := f.doc.SetInnerHTML(f.container(t), markup); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}
}

// appendNodes appends children one by one so adjacent text nodes stay
// separate.
func (f *fixture) appendNodes(t *testing.T, build func(d *dom.Document) []dom.NodeID) {
	t.Helper()
	el := f.container(t)
	for _, n := range build(f.doc) {
		if err := f.doc.AppendChild(el, n); err != nil {
			t.Fatalf("AppendChild failed: %v", err)
		}
	}
}

// setCaret sets the caret and writes it to the selection, checking that
// the caret itself did not move.
func (f *fixture) setCaret(t *testing.T, start, end Offset) {
	t.Helper()
	f.ca.SetCaretPosition(start, end)
	f.ca.UpdateDOMFromCaret()
	if got := f.ca.CaretPosition(); got != (Caret{Start: start, End: end}) {
		t.Fatalf("expected caret %s, got %s", Caret{Start: start, End: end}, got)
	}
}

func (f *fixture) childCount(t *testing.T) int {
	t.Helper()
	return f.doc.ChildCount(f.container(t))
}

func (f *fixture) textContent(t *testing.T, index int) string {
	t.Helper()
	n, ok := f.doc.ChildAt(f.container(t), index)
	if !ok {
		t.Fatalf("no child at index %d", index)
	}
	return f.doc.TextContent(n)
}

type image struct {
	src, alt, class string
}

var testImage = image{src: "img.jpg", alt: "😀", class: "em"}

func (i image) html() string {
	return fmt.Sprintf(`<img src="%s" alt="%s" class="%s">`, i.src, i.alt, i.class)
}

func (i image) size() Offset {
	return Offset(dom.UTF16Len(i.html()))
}

func (i image) create(d *dom.Document) dom.NodeID {
	return d.CreateElement("img",
		dom.Attr{Name: "src", Value: i.src},
		dom.Attr{Name: "alt", Value: i.alt},
		dom.Attr{Name: "class", Value: i.class},
	)
}

// wrappedEnv lets tests intercept the tree and selection handed to the
// engine.
type wrappedEnv struct {
	Environment
	wrapTree func(Tree) Tree
	wrapSel  func(Selection) Selection
}

func (e *wrappedEnv) Tree() (Tree, error) {
	tree, err := e.Environment.Tree()
	if err != nil || e.wrapTree == nil {
		return tree, err
	}
	return e.wrapTree(tree), nil
}

func (e *wrappedEnv) Selection() (Selection, error) {
	sel, err := e.Environment.Selection()
	if err != nil || e.wrapSel == nil {
		return sel, err
	}
	return e.wrapSel(sel), nil
}

func TestBindTo(t *testing.T) {
	win, id := newWindow(t)
	doc := win.Document()
	wrapper, _ := doc.GetElementByID(id)

	ca, err := BindTo(win, id, WithLogger(logging.Nop()))
	if err != nil {
		t.Fatalf("BindTo failed: %v", err)
	}

	el, ok := doc.GetElementByID(id)
	if !ok {
		t.Fatal("container not found after binding")
	}
	if el == wrapper {
		t.Error("wrapper should have been replaced")
	}
	if doc.Parent(wrapper) != dom.NoNode {
		t.Error("wrapper should be detached")
	}
	if got, _ := doc.Attribute(el, "class"); got != DefaultWrapperClass {
		t.Errorf("expected class %q, got %q", DefaultWrapperClass, got)
	}
	if got, _ := doc.Attribute(el, "contenteditable"); got != "true" {
		t.Errorf("expected contenteditable=true, got %q", got)
	}
	if got := ca.HTML(); got != "<br>" {
		t.Errorf("expected %q, got %q", "<br>", got)
	}
	if got := ca.CaretPosition(); got != (Caret{}) {
		t.Errorf("expected caret at origin, got %s", got)
	}
}

func TestBindToOptions(t *testing.T) {
	win, id := newWindow(t)
	ca, err := BindTo(win, id,
		WithLogger(logging.Nop()),
		WithWrapperClass("editor"),
		WithInitialHTML("hi <b>there</b>"),
	)
	if err != nil {
		t.Fatalf("BindTo failed: %v", err)
	}

	el, _ := win.Document().GetElementByID(id)
	if got, _ := win.Document().Attribute(el, "class"); got != "editor" {
		t.Errorf("expected class %q, got %q", "editor", got)
	}
	if got := ca.HTML(); got != "hi <b>there</b>" {
		t.Errorf("unexpected markup %q", got)
	}
}

func TestBindToMissingContainer(t *testing.T) {
	win, _ := newWindow(t)
	if _, err := BindTo(win, "nope", WithLogger(logging.Nop())); !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("expected ErrContainerNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "abc<br>def")
	f.ca.SetCaretPosition(2, 5)

	f.ca.Clear()
	if got := f.ca.HTML(); got != "" {
		t.Errorf("expected empty container, got %q", got)
	}
	if got := f.ca.CaretPosition(); got != (Caret{}) {
		t.Errorf("expected caret at origin, got %s", got)
	}
}

func TestText(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "  I "+image{src: "heart.png", alt: "❤️"}.html()+" Go<br>  ")

	if got := f.ca.Text(false); got != "I ❤️ Go" {
		t.Errorf("expected %q, got %q", "I ❤️ Go", got)
	}
	if got := f.ca.Text(true); got != "  I ❤️ Go\n  " {
		t.Errorf("expected untrimmed text, got %q", got)
	}
}

func TestContainerRemoved(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "ab")
	f.setCaret(t, 1, 1)
	if err := f.doc.RemoveChild(f.doc.Body(), f.container(t)); err != nil {
		t.Fatalf("RemoveChild failed: %v", err)
	}

	f.ca.InsertText("x")
	f.ca.UpdateCaretFromDOM()
	if got := f.ca.Text(false); got != "" {
		t.Errorf("expected no text, got %q", got)
	}
	if got := f.ca.CaretPosition(); got != (Caret{Start: 1, End: 1}) {
		t.Errorf("caret should be unchanged, got %s", got)
	}
	if n := f.logs.FilterMessageSnippet("container element not found").Len(); n == 0 {
		t.Error("expected the missing container to be logged")
	}
}

func errorsIsInvariant(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
