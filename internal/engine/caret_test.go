package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/composearea/internal/dom"
)

func TestNewCaret(t *testing.T) {
	tests := []struct {
		a, b      Offset
		want      Caret
		collapsed bool
		len       Offset
	}{
		{0, 0, Caret{0, 0}, true, 0},
		{2, 5, Caret{2, 5}, false, 3},
		{5, 2, Caret{2, 5}, false, 3},
	}
	for _, tt := range tests {
		got := NewCaret(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("NewCaret(%d, %d) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
		if got.IsCollapsed() != tt.collapsed {
			t.Errorf("%s: IsCollapsed() = %v", got, got.IsCollapsed())
		}
		if got.Len() != tt.len {
			t.Errorf("%s: Len() = %d, want %d", got, got.Len(), tt.len)
		}
	}
}

func TestSetCaretPositionOrders(t *testing.T) {
	f := newFixture(t)
	f.ca.SetCaretPosition(7, 3)
	if got := f.ca.CaretPosition(); got != (Caret{3, 7}) {
		t.Errorf("expected [3, 7), got %s", got)
	}
}

func TestCaretRoundTrip(t *testing.T) {
	f := newFixture(t)
	// "ab" (2), <br> (4), "cd" (2)
	f.setHTML(t, "ab<br>cd")

	carets := []Caret{
		{0, 0}, {1, 1}, {2, 2}, {6, 6}, {8, 8},
		{0, 2}, {1, 7}, {2, 6}, {6, 7}, {0, 8},
	}
	for _, c := range carets {
		f.ca.SetCaretPosition(c.Start, c.End)
		f.ca.UpdateDOMFromCaret()
		f.ca.SetCaretPosition(99, 99)
		f.ca.UpdateCaretFromDOM()
		if got := f.ca.CaretPosition(); got != c {
			t.Errorf("round trip of %s gave %s", c, got)
		}
	}
}

func TestProjectCaret(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "ab<br>cd")
	el := f.container(t)
	ab, _ := f.doc.ChildAt(el, 0)
	cd, _ := f.doc.ChildAt(el, 2)

	tests := []struct {
		caret      Caret
		start, end dom.Boundary
	}{
		{Caret{1, 1}, dom.Boundary{Node: ab, Offset: 1}, dom.Boundary{Node: ab, Offset: 1}},
		{Caret{2, 2}, dom.Boundary{Node: el, Offset: 1}, dom.Boundary{Node: el, Offset: 1}},
		{Caret{1, 7}, dom.Boundary{Node: ab, Offset: 1}, dom.Boundary{Node: cd, Offset: 1}},
		{Caret{2, 6}, dom.Boundary{Node: el, Offset: 1}, dom.Boundary{Node: el, Offset: 2}},
		// Inside the <br>: the start snaps past it.
		{Caret{3, 3}, dom.Boundary{Node: el, Offset: 2}, dom.Boundary{Node: el, Offset: 2}},
		// Beyond the content: after the last child.
		{Caret{20, 30}, dom.Boundary{Node: el, Offset: 3}, dom.Boundary{Node: el, Offset: 3}},
	}
	for _, tt := range tests {
		f.ca.SetCaretPosition(tt.caret.Start, tt.caret.End)
		f.ca.UpdateDOMFromCaret()

		start, end, ok := f.win.Selection().Current()
		if !ok {
			t.Fatalf("%s: no selection", tt.caret)
		}
		want := []dom.Boundary{tt.start, tt.end}
		if diff := cmp.Diff(want, []dom.Boundary{start, end}); diff != "" {
			t.Errorf("%s: selection mismatch (-want +got):\n%s", tt.caret, diff)
		}
	}
}

func TestUpdateCaretFromDOM(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "ab"+testImage.html()+"cd")
	el := f.container(t)
	ab, _ := f.doc.ChildAt(el, 0)
	img, _ := f.doc.ChildAt(el, 1)
	cd, _ := f.doc.ChildAt(el, 2)
	size := testImage.size()

	tests := []struct {
		name       string
		start, end dom.Boundary
		want       Caret
	}{
		{"in text", dom.Boundary{Node: ab, Offset: 1}, dom.Boundary{Node: cd, Offset: 2}, Caret{1, 4 + size}},
		{"on container", dom.Boundary{Node: el, Offset: 1}, dom.Boundary{Node: el, Offset: 3}, Caret{2, 4 + size}},
		{"on image", dom.Boundary{Node: img, Offset: 0}, dom.Boundary{Node: img, Offset: 0}, Caret{2, 2}},
		{"container start", dom.Boundary{Node: el, Offset: 0}, dom.Boundary{Node: el, Offset: 0}, Caret{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := f.win.Selection().Select(tt.start, tt.end); err != nil {
				t.Fatalf("Select failed: %v", err)
			}
			f.ca.UpdateCaretFromDOM()
			if got := f.ca.CaretPosition(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestUpdateCaretFromDOMOutsideContainer(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "ab")
	f.ca.SetCaretPosition(1, 2)

	outside := f.doc.CreateTextNode("elsewhere")
	_ = f.doc.AppendChild(f.doc.Body(), outside)
	_ = f.win.Selection().Select(dom.Boundary{Node: outside, Offset: 1}, dom.Boundary{Node: outside, Offset: 4})

	f.ca.UpdateCaretFromDOM()
	if got := f.ca.CaretPosition(); got != (Caret{1, 2}) {
		t.Errorf("stale caret should be kept, got %s", got)
	}
}

func TestUpdateCaretFromDOMWithoutRange(t *testing.T) {
	f := newFixture(t)
	f.setHTML(t, "ab")
	f.ca.SetCaretPosition(1, 1)

	f.ca.UpdateCaretFromDOM()
	if got := f.ca.CaretPosition(); got != (Caret{1, 1}) {
		t.Errorf("caret should be unchanged, got %s", got)
	}
}

func TestProjectCaretOnEmptyContainerPanics(t *testing.T) {
	f := newFixture(t)
	defer func() {
		err, ok := recover().(error)
		if !ok || !errorsIsInvariant(err) {
			t.Errorf("expected invariant violation panic, got %v", err)
		}
	}()
	f.ca.UpdateDOMFromCaret()
}
