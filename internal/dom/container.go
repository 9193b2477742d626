package dom

// Container is a view of one element whose children form a flat editing
// surface. Its methods address children of that element only.
type Container struct {
	doc *Document
	id  NodeID
}

// Container returns a view of the element id.
func (d *Document) Container(id NodeID) *Container {
	return &Container{doc: d, id: id}
}

// Document returns the document the container belongs to.
func (c *Container) Document() *Document { return c.doc }

// Root returns the container element.
func (c *Container) Root() NodeID { return c.id }

// ChildCount returns the number of children.
func (c *Container) ChildCount() int { return c.doc.ChildCount(c.id) }

// Child returns the child at index.
func (c *Container) Child(index int) (NodeID, bool) { return c.doc.ChildAt(c.id, index) }

// Next returns the child after n, or NoNode.
func (c *Container) Next(n NodeID) NodeID { return c.doc.NextSibling(n) }

// Kind returns the kind of n.
func (c *Container) Kind(n NodeID) Kind { return c.doc.Kind(n) }

// TextLength returns the length of a character data node in UTF-16 code units.
func (c *Container) TextLength(n NodeID) int {
	if !isCharData(c.doc.Kind(n)) {
		return 0
	}
	return c.doc.Length(n)
}

// OuterHTML returns the serialized markup of n.
func (c *Container) OuterHTML(n NodeID) string { return c.doc.OuterHTML(n) }

// InsertBefore inserts n before the child ref.
func (c *Container) InsertBefore(n, ref NodeID) error { return c.doc.InsertBefore(c.id, n, ref) }

// AppendChild appends n as the last child.
func (c *Container) AppendChild(n NodeID) error { return c.doc.AppendChild(c.id, n) }

// SplitText splits the text child n at offset and returns the new right half.
func (c *Container) SplitText(n NodeID, offset int) (NodeID, error) {
	if c.doc.Parent(n) != c.id {
		return NoNode, newError(ErrNotFound, "node %d is not a child of %d", n, c.id)
	}
	return c.doc.SplitText(n, offset)
}

// RemoveChild removes the child n.
func (c *Container) RemoveChild(n NodeID) error { return c.doc.RemoveChild(c.id, n) }

// Normalize merges adjacent text runs below the container.
func (c *Container) Normalize() { c.doc.Normalize(c.id) }

// CreateTextNode creates a detached text node.
func (c *Container) CreateTextNode(data string) NodeID { return c.doc.CreateTextNode(data) }

// CreateElement creates a detached element.
func (c *Container) CreateElement(tag string, attrs ...Attr) NodeID {
	return c.doc.CreateElement(tag, attrs...)
}

// IndexOf returns the index of the child that is n or contains it.
func (c *Container) IndexOf(n NodeID) (int, bool) {
	for child := n; child != NoNode; child = c.doc.Parent(child) {
		if c.doc.Parent(child) == c.id {
			return c.doc.IndexOf(child), true
		}
	}
	return 0, false
}

// InnerHTML returns the serialized children.
func (c *Container) InnerHTML() string { return c.doc.InnerHTML(c.id) }

// SetInnerHTML replaces the children with parsed markup.
func (c *Container) SetInnerHTML(markup string) error { return c.doc.SetInnerHTML(c.id, markup) }

// ExtractText returns the plain text of the container.
func (c *Container) ExtractText(noTrim bool) string { return c.doc.ExtractText(c.id, noTrim) }
