package dom

// AppendChild inserts child as the last child of parent.
func (d *Document) AppendChild(parent, child NodeID) error {
	return d.InsertBefore(parent, child, NoNode)
}

// InsertBefore inserts child into parent before ref. A ref of NoNode
// appends. If child already has a parent it is removed first.
func (d *Document) InsertBefore(parent, child, ref NodeID) error {
	p := d.get(parent)
	if p == nil || p.kind != KindElement {
		return newError(ErrHierarchyRequest, "node %d cannot have children", parent)
	}
	if !d.valid(child) {
		return newError(ErrNotFound, "node %d does not exist", child)
	}
	if d.Contains(child, parent) {
		return newError(ErrHierarchyRequest, "node %d is an inclusive ancestor of %d", child, parent)
	}
	if ref != NoNode && d.Parent(ref) != parent {
		return newError(ErrNotFound, "node %d is not a child of %d", ref, parent)
	}
	if ref == child {
		ref = d.NextSibling(child)
	}
	if d.Parent(child) != NoNode {
		d.remove(child)
	}

	index := 0
	if ref == NoNode {
		index = d.ChildCount(parent)
	} else {
		index = d.IndexOf(ref)
	}
	d.eachBoundary(func(b *Boundary) {
		if b.Node == parent && b.Offset > index {
			b.Offset++
		}
	})
	d.link(parent, child, ref)
	return nil
}

// RemoveChild removes child from parent.
func (d *Document) RemoveChild(parent, child NodeID) error {
	if !d.valid(child) || d.Parent(child) != parent || parent == NoNode {
		return newError(ErrNotFound, "node %d is not a child of %d", child, parent)
	}
	d.remove(child)
	return nil
}

// ReplaceWith replaces old with replacement in old's parent. It is a
// no-op when old has no parent.
func (d *Document) ReplaceWith(old, replacement NodeID) error {
	parent := d.Parent(old)
	if parent == NoNode {
		return nil
	}
	if old == replacement {
		return nil
	}
	if err := d.InsertBefore(parent, replacement, old); err != nil {
		return err
	}
	d.remove(old)
	return nil
}

// SplitText splits the text node id at offset. The node keeps the data
// before offset; a new text node holding the rest is inserted after it
// and returned.
func (d *Document) SplitText(id NodeID, offset int) (NodeID, error) {
	n := d.get(id)
	if n == nil || n.kind != KindText {
		return NoNode, newError(ErrInvalidNodeType, "node %d is not a text node", id)
	}
	length := len(n.data)
	if offset < 0 || offset > length {
		return NoNode, newError(ErrIndexSize, "offset %d exceeds length %d", offset, length)
	}

	rest := make([]uint16, length-offset)
	copy(rest, n.data[offset:])
	newNode := d.alloc(node{kind: KindText, data: rest})

	if parent := d.Parent(id); parent != NoNode {
		index := d.IndexOf(id)
		if err := d.InsertBefore(parent, newNode, d.NextSibling(id)); err != nil {
			return NoNode, err
		}
		d.eachBoundary(func(b *Boundary) {
			if b.Node == id && b.Offset > offset {
				b.Node = newNode
				b.Offset -= offset
			}
		})
		d.eachBoundary(func(b *Boundary) {
			if b.Node == parent && b.Offset == index+1 {
				b.Offset++
			}
		})
	}

	if err := d.replaceData(id, offset, length-offset, nil); err != nil {
		return NoNode, err
	}
	return newNode, nil
}

// Normalize removes empty text nodes below root and merges runs of
// adjacent text nodes into the first node of each run.
func (d *Document) Normalize(root NodeID) {
	var texts []NodeID
	d.walk(root, func(id NodeID) bool {
		if id != root && d.Kind(id) == KindText {
			texts = append(texts, id)
		}
		return true
	})

	for _, t := range texts {
		if t == root || !d.Contains(root, t) {
			continue // merged into a previous run
		}
		length := len(d.nodes[t].data)
		if length == 0 {
			d.remove(t)
			continue
		}

		var run []NodeID
		var merged []uint16
		for c := d.NextSibling(t); c != NoNode && d.Kind(c) == KindText; c = d.NextSibling(c) {
			run = append(run, c)
			merged = append(merged, d.nodes[c].data...)
		}
		if len(run) == 0 {
			continue
		}
		_ = d.replaceData(t, length, 0, merged)

		for _, c := range run {
			parent := d.Parent(c)
			index := d.IndexOf(c)
			d.eachBoundary(func(b *Boundary) {
				switch {
				case b.Node == c:
					b.Node = t
					b.Offset += length
				case b.Node == parent && b.Offset == index:
					b.Node = t
					b.Offset = length
				}
			})
			length += len(d.nodes[c].data)
		}
		for _, c := range run {
			d.remove(c)
		}
	}
}

// replaceData replaces count code units at offset in a character data node.
func (d *Document) replaceData(id NodeID, offset, count int, data []uint16) error {
	n := d.get(id)
	if n == nil || !isCharData(n.kind) {
		return newError(ErrInvalidNodeType, "node %d has no character data", id)
	}
	length := len(n.data)
	if offset < 0 || offset > length {
		return newError(ErrIndexSize, "offset %d exceeds length %d", offset, length)
	}
	if count < 0 || offset+count > length {
		count = length - offset
	}

	buf := make([]uint16, 0, length-count+len(data))
	buf = append(buf, n.data[:offset]...)
	buf = append(buf, data...)
	buf = append(buf, n.data[offset+count:]...)
	n.data = buf

	d.eachBoundary(func(b *Boundary) {
		if b.Node != id {
			return
		}
		switch {
		case b.Offset > offset+count:
			b.Offset += len(data) - count
		case b.Offset > offset:
			b.Offset = offset
		}
	})
	return nil
}

// remove detaches id from its parent and moves live boundary points
// that pointed into it.
func (d *Document) remove(id NodeID) {
	parent := d.Parent(id)
	if parent == NoNode {
		return
	}
	index := d.IndexOf(id)
	d.eachBoundary(func(b *Boundary) {
		switch {
		case d.Contains(id, b.Node):
			b.Node = parent
			b.Offset = index
		case b.Node == parent && b.Offset > index:
			b.Offset--
		}
	})
	d.unlink(id)
}

func (d *Document) link(parent, child, ref NodeID) {
	p := &d.nodes[parent]
	c := &d.nodes[child]
	c.parent = parent
	if ref == NoNode {
		c.prev = p.last
		c.next = NoNode
		if p.last != NoNode {
			d.nodes[p.last].next = child
		} else {
			p.first = child
		}
		p.last = child
		return
	}
	r := &d.nodes[ref]
	c.prev = r.prev
	c.next = ref
	if r.prev != NoNode {
		d.nodes[r.prev].next = child
	} else {
		p.first = child
	}
	r.prev = child
}

func (d *Document) unlink(id NodeID) {
	c := &d.nodes[id]
	p := &d.nodes[c.parent]
	if c.prev != NoNode {
		d.nodes[c.prev].next = c.next
	} else {
		p.first = c.next
	}
	if c.next != NoNode {
		d.nodes[c.next].prev = c.prev
	} else {
		p.last = c.prev
	}
	c.parent, c.prev, c.next = NoNode, NoNode, NoNode
}

// eachBoundary calls fn for the start and end of every live range.
func (d *Document) eachBoundary(fn func(*Boundary)) {
	for _, r := range d.ranges {
		fn(&r.start)
		fn(&r.end)
	}
}
