package dom

import (
	"strings"
	"unicode/utf16"
)

// NodeID is a handle to a node in a Document's arena.
// The zero value is NoNode.
type NodeID uint32

// NoNode is the absent node.
const NoNode NodeID = 0

// Kind is the type of a node.
type Kind uint8

// Node kinds.
const (
	KindInvalid Kind = iota
	KindText
	KindElement
	KindComment
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	case KindComment:
		return "comment"
	default:
		return "invalid"
	}
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

type node struct {
	kind  Kind
	tag   string
	attrs []Attr
	data  []uint16

	parent NodeID
	first  NodeID
	last   NodeID
	prev   NodeID
	next   NodeID
}

// Document owns the node arena and the live ranges over it.
// Nodes are never freed; a removed node keeps its handle and can be
// inserted again.
type Document struct {
	nodes  []node
	body   NodeID
	ranges []*Range
}

// NewDocument creates a document with an empty body element.
func NewDocument() *Document {
	d := &Document{nodes: make([]node, 1, 64)}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the root element of the document.
func (d *Document) Body() NodeID {
	return d.body
}

func (d *Document) valid(id NodeID) bool {
	return id != NoNode && int(id) < len(d.nodes)
}

func (d *Document) get(id NodeID) *node {
	if !d.valid(id) {
		return nil
	}
	return &d.nodes[id]
}

func (d *Document) alloc(n node) NodeID {
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// CreateElement creates a detached element. Tag names are lower-cased.
func (d *Document) CreateElement(tag string, attrs ...Attr) NodeID {
	id := d.alloc(node{kind: KindElement, tag: strings.ToLower(tag)})
	for _, a := range attrs {
		_ = d.SetAttribute(id, a.Name, a.Value)
	}
	return id
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) NodeID {
	return d.alloc(node{kind: KindText, data: encodeUTF16(data)})
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) NodeID {
	return d.alloc(node{kind: KindComment, data: encodeUTF16(data)})
}

// Kind returns the kind of id, or KindInvalid for an unknown handle.
func (d *Document) Kind(id NodeID) Kind {
	n := d.get(id)
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// TagName returns the lower-case tag name of an element, or "".
func (d *Document) TagName(id NodeID) string {
	n := d.get(id)
	if n == nil || n.kind != KindElement {
		return ""
	}
	return n.tag
}

// SetAttribute sets an attribute on an element. Existing attributes keep
// their position; new ones are appended.
func (d *Document) SetAttribute(id NodeID, name, value string) error {
	n := d.get(id)
	if n == nil || n.kind != KindElement {
		return newError(ErrInvalidNodeType, "node %d is not an element", id)
	}
	name = strings.ToLower(name)
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return nil
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return nil
}

// Attribute returns the value of the named attribute.
func (d *Document) Attribute(id NodeID, name string) (string, bool) {
	n := d.get(id)
	if n == nil {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the element's attributes in order.
func (d *Document) Attributes(id NodeID) []Attr {
	n := d.get(id)
	if n == nil || len(n.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Data returns the character data of a text or comment node.
func (d *Document) Data(id NodeID) string {
	n := d.get(id)
	if n == nil {
		return ""
	}
	return decodeUTF16(n.data)
}

// Length returns the DOM length of a node: UTF-16 code units for
// character data, the number of children otherwise.
func (d *Document) Length(id NodeID) int {
	n := d.get(id)
	if n == nil {
		return 0
	}
	if isCharData(n.kind) {
		return len(n.data)
	}
	return d.ChildCount(id)
}

// Parent returns the parent of id, or NoNode.
func (d *Document) Parent(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

// FirstChild returns the first child of id, or NoNode.
func (d *Document) FirstChild(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.first
	}
	return NoNode
}

// LastChild returns the last child of id, or NoNode.
func (d *Document) LastChild(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.last
	}
	return NoNode
}

// NextSibling returns the next sibling of id, or NoNode.
func (d *Document) NextSibling(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.next
	}
	return NoNode
}

// PreviousSibling returns the previous sibling of id, or NoNode.
func (d *Document) PreviousSibling(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.prev
	}
	return NoNode
}

// ChildCount returns the number of children of id.
func (d *Document) ChildCount(id NodeID) int {
	count := 0
	for c := d.FirstChild(id); c != NoNode; c = d.nodes[c].next {
		count++
	}
	return count
}

// ChildAt returns the child of id at index.
func (d *Document) ChildAt(id NodeID, index int) (NodeID, bool) {
	if index < 0 {
		return NoNode, false
	}
	for c := d.FirstChild(id); c != NoNode; c = d.nodes[c].next {
		if index == 0 {
			return c, true
		}
		index--
	}
	return NoNode, false
}

// Children returns the children of id in order.
func (d *Document) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := d.FirstChild(id); c != NoNode; c = d.nodes[c].next {
		out = append(out, c)
	}
	return out
}

// IndexOf returns the position of id among its siblings.
func (d *Document) IndexOf(id NodeID) int {
	index := 0
	for p := d.PreviousSibling(id); p != NoNode; p = d.nodes[p].prev {
		index++
	}
	return index
}

// Contains reports whether ancestor is an inclusive ancestor of id.
func (d *Document) Contains(ancestor, id NodeID) bool {
	if !d.valid(ancestor) {
		return false
	}
	for n := id; n != NoNode; n = d.Parent(n) {
		if n == ancestor {
			return true
		}
	}
	return false
}

// GetElementByID returns the first element in the body whose id
// attribute equals elementID.
func (d *Document) GetElementByID(elementID string) (NodeID, bool) {
	var found NodeID
	d.walk(d.body, func(id NodeID) bool {
		if v, ok := d.Attribute(id, "id"); ok && v == elementID && d.Kind(id) == KindElement {
			found = id
			return false
		}
		return true
	})
	return found, found != NoNode
}

// TextContent returns the concatenated data of all descendant text nodes.
func (d *Document) TextContent(id NodeID) string {
	switch d.Kind(id) {
	case KindText, KindComment:
		return d.Data(id)
	case KindElement:
		var b strings.Builder
		d.walk(id, func(n NodeID) bool {
			if d.Kind(n) == KindText {
				b.WriteString(d.Data(n))
			}
			return true
		})
		return b.String()
	default:
		return ""
	}
}

// walk visits id and its descendants in tree order until fn returns false.
func (d *Document) walk(id NodeID, fn func(NodeID) bool) bool {
	if !fn(id) {
		return false
	}
	for c := d.FirstChild(id); c != NoNode; c = d.nodes[c].next {
		if !d.walk(c, fn) {
			return false
		}
	}
	return true
}

func isCharData(k Kind) bool {
	return k == KindText || k == KindComment
}

func encodeUTF16(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}

func decodeUTF16(u []uint16) string {
	if len(u) == 0 {
		return ""
	}
	return string(utf16.Decode(u))
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
