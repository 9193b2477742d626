package dom

// Selection is the user's selection: an ordered list of live ranges.
// Operations that read "the" range use the last one, as browsers do.
type Selection struct {
	doc    *Document
	ranges []*Range
}

// RangeCount returns the number of ranges in the selection.
func (s *Selection) RangeCount() int {
	return len(s.ranges)
}

// RangeAt returns the range at index.
func (s *Selection) RangeAt(index int) (*Range, error) {
	if index < 0 || index >= len(s.ranges) {
		return nil, newError(ErrIndexSize, "range index %d out of bounds", index)
	}
	return s.ranges[index], nil
}

// AddRange appends r to the selection.
func (s *Selection) AddRange(r *Range) {
	for _, existing := range s.ranges {
		if existing == r {
			return
		}
	}
	s.ranges = append(s.ranges, r)
}

// RemoveAllRanges empties the selection and detaches its ranges.
func (s *Selection) RemoveAllRanges() {
	for _, r := range s.ranges {
		r.Detach()
	}
	s.ranges = nil
}

// Select replaces the selection with a single range spanning anchor and
// focus. The range is ordered, whichever of the two comes first.
func (s *Selection) Select(anchor, focus Boundary) error {
	a, err := s.doc.checkBoundary(anchor.Node, anchor.Offset)
	if err != nil {
		return err
	}
	f, err := s.doc.checkBoundary(focus.Node, focus.Offset)
	if err != nil {
		return err
	}
	if s.doc.root(a.Node) == s.doc.root(f.Node) && s.doc.comparePoints(f, a) < 0 {
		a, f = f, a
	}

	r := s.doc.NewRange()
	r.start = a
	r.end = a
	if err := r.SetEnd(f.Node, f.Offset); err != nil {
		r.Detach()
		return err
	}
	s.RemoveAllRanges()
	s.ranges = append(s.ranges, r)
	return nil
}

// Collapse replaces the selection with a caret at (node, offset).
func (s *Selection) Collapse(node NodeID, offset int) error {
	b := Boundary{Node: node, Offset: offset}
	return s.Select(b, b)
}

// Current returns the boundary points of the last range.
func (s *Selection) Current() (start, end Boundary, ok bool) {
	if len(s.ranges) == 0 {
		return Boundary{}, Boundary{}, false
	}
	r := s.ranges[len(s.ranges)-1]
	return r.start, r.end, true
}

// DeleteContents deletes the contents of the last range.
func (s *Selection) DeleteContents() error {
	if len(s.ranges) == 0 {
		return newError(ErrInvalidState, "selection has no range")
	}
	return s.ranges[len(s.ranges)-1].DeleteContents()
}

// Window pairs a document with its selection.
type Window struct {
	doc *Document
	sel *Selection
}

// NewWindow creates a window holding a new, empty document.
func NewWindow() *Window {
	doc := NewDocument()
	return &Window{doc: doc, sel: &Selection{doc: doc}}
}

// Document returns the window's document.
func (w *Window) Document() *Document {
	return w.doc
}

// Selection returns the window's selection.
func (w *Window) Selection() *Selection {
	return w.sel
}
