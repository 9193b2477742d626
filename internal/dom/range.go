package dom

import "fmt"

// Boundary is a DOM boundary point: a node and an offset into it.
// For character data the offset counts UTF-16 code units; for elements it
// counts children.
type Boundary struct {
	Node   NodeID
	Offset int
}

// String returns a human-readable representation of the boundary.
func (b Boundary) String() string {
	return fmt.Sprintf("(%d:%d)", b.Node, b.Offset)
}

// Range is a live range. Its boundary points follow tree mutations until
// it is detached.
type Range struct {
	doc      *Document
	start    Boundary
	end      Boundary
	detached bool
}

// NewRange creates a live range collapsed at the start of the body.
func (d *Document) NewRange() *Range {
	r := &Range{
		doc:   d,
		start: Boundary{Node: d.body},
		end:   Boundary{Node: d.body},
	}
	d.ranges = append(d.ranges, r)
	return r
}

// Detach stops the range from tracking mutations.
func (r *Range) Detach() {
	if r.detached {
		return
	}
	r.detached = true
	ranges := r.doc.ranges
	for i, other := range ranges {
		if other == r {
			r.doc.ranges = append(ranges[:i], ranges[i+1:]...)
			break
		}
	}
}

// Start returns the start boundary point.
func (r *Range) Start() Boundary {
	return r.start
}

// End returns the end boundary point.
func (r *Range) End() Boundary {
	return r.end
}

// Collapsed returns true if start and end are the same point.
func (r *Range) Collapsed() bool {
	return r.start == r.end
}

// SetStart moves the start. If the new start is after the end, the range
// collapses to it.
func (r *Range) SetStart(node NodeID, offset int) error {
	b, err := r.doc.checkBoundary(node, offset)
	if err != nil {
		return err
	}
	r.start = b
	if r.doc.root(r.end.Node) != r.doc.root(node) || r.doc.comparePoints(b, r.end) > 0 {
		r.end = b
	}
	return nil
}

// SetEnd moves the end. If the new end is before the start, the range
// collapses to it.
func (r *Range) SetEnd(node NodeID, offset int) error {
	b, err := r.doc.checkBoundary(node, offset)
	if err != nil {
		return err
	}
	r.end = b
	if r.doc.root(r.start.Node) != r.doc.root(node) || r.doc.comparePoints(b, r.start) < 0 {
		r.start = b
	}
	return nil
}

// Collapse collapses the range to its start or end.
func (r *Range) Collapse(toStart bool) {
	if toStart {
		r.end = r.start
	} else {
		r.start = r.end
	}
}

// DeleteContents removes the contents of the range and collapses it to
// the point where the contents used to be.
func (r *Range) DeleteContents() error {
	if r.detached {
		return newError(ErrInvalidState, "range is detached")
	}
	d := r.doc
	if !d.valid(r.start.Node) || !d.valid(r.end.Node) {
		return newError(ErrInvalidState, "range boundary refers to an unknown node")
	}
	if r.Collapsed() {
		return nil
	}

	start, end := r.start, r.end
	if start.Node == end.Node && isCharData(d.Kind(start.Node)) {
		return d.replaceData(start.Node, start.Offset, end.Offset-start.Offset, nil)
	}

	// Only the topmost contained nodes are removed; descendants go with them.
	var doomed []NodeID
	var collect func(NodeID)
	collect = func(id NodeID) {
		for c := d.FirstChild(id); c != NoNode; c = d.NextSibling(c) {
			if r.contains(c) {
				doomed = append(doomed, c)
			} else {
				collect(c)
			}
		}
	}
	collect(d.commonAncestor(start.Node, end.Node))

	newPoint := start
	if !d.Contains(start.Node, end.Node) {
		ref := start.Node
		for p := d.Parent(ref); p != NoNode && !d.Contains(p, end.Node); p = d.Parent(ref) {
			ref = p
		}
		newPoint = Boundary{Node: d.Parent(ref), Offset: d.IndexOf(ref) + 1}
	}

	if isCharData(d.Kind(start.Node)) {
		if err := d.replaceData(start.Node, start.Offset, d.Length(start.Node)-start.Offset, nil); err != nil {
			return err
		}
	}
	for _, id := range doomed {
		d.remove(id)
	}
	if isCharData(d.Kind(end.Node)) {
		if err := d.replaceData(end.Node, 0, end.Offset, nil); err != nil {
			return err
		}
	}

	r.start, r.end = newPoint, newPoint
	return nil
}

// contains reports whether id lies entirely inside the range.
func (r *Range) contains(id NodeID) bool {
	d := r.doc
	if d.root(id) != d.root(r.start.Node) {
		return false
	}
	return d.comparePoints(Boundary{Node: id}, r.start) > 0 &&
		d.comparePoints(Boundary{Node: id, Offset: d.Length(id)}, r.end) < 0
}

func (d *Document) checkBoundary(node NodeID, offset int) (Boundary, error) {
	if !d.valid(node) {
		return Boundary{}, newError(ErrInvalidNodeType, "node %d does not exist", node)
	}
	if offset < 0 || offset > d.Length(node) {
		return Boundary{}, newError(ErrIndexSize, "offset %d exceeds length %d of node %d", offset, d.Length(node), node)
	}
	return Boundary{Node: node, Offset: offset}, nil
}

// root returns the topmost ancestor of id.
func (d *Document) root(id NodeID) NodeID {
	for p := d.Parent(id); p != NoNode; p = d.Parent(id) {
		id = p
	}
	return id
}

// ancestors returns the inclusive ancestors of id from the root down.
func (d *Document) ancestors(id NodeID) []NodeID {
	var chain []NodeID
	for n := id; n != NoNode; n = d.Parent(n) {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (d *Document) commonAncestor(a, b NodeID) NodeID {
	pa, pb := d.ancestors(a), d.ancestors(b)
	common := NoNode
	for i := 0; i < len(pa) && i < len(pb) && pa[i] == pb[i]; i++ {
		common = pa[i]
	}
	return common
}

// treeOrder returns -1 if a precedes b in tree order, 1 if it follows
// and 0 if they are the same node. Ancestors precede descendants.
func (d *Document) treeOrder(a, b NodeID) int {
	if a == b {
		return 0
	}
	pa, pb := d.ancestors(a), d.ancestors(b)
	if len(pa) == 0 || len(pb) == 0 || pa[0] != pb[0] {
		if a < b {
			return -1
		}
		return 1
	}
	i := 0
	for i < len(pa) && i < len(pb) && pa[i] == pb[i] {
		i++
	}
	switch {
	case i == len(pa):
		return -1 // a is an ancestor of b
	case i == len(pb):
		return 1
	case d.IndexOf(pa[i]) < d.IndexOf(pb[i]):
		return -1
	default:
		return 1
	}
}

// comparePoints returns -1, 0 or 1 as a is before, equal to or after b.
func (d *Document) comparePoints(a, b Boundary) int {
	if a.Node == b.Node {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		default:
			return 0
		}
	}
	if d.treeOrder(a.Node, b.Node) > 0 {
		return -d.comparePoints(b, a)
	}
	if d.Contains(a.Node, b.Node) {
		child := b.Node
		for d.Parent(child) != a.Node {
			child = d.Parent(child)
		}
		if d.IndexOf(child) < a.Offset {
			return 1
		}
	}
	return -1
}
