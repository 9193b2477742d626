package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SetInnerHTML replaces the children of the element id with the nodes
// parsed from markup, using id's tag as the fragment parsing context.
func (d *Document) SetInnerHTML(id NodeID, markup string) error {
	if d.Kind(id) != KindElement {
		return newError(ErrInvalidNodeType, "node %d is not an element", id)
	}
	tag := d.TagName(id)
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return newError(ErrSyntax, "%v", err)
	}

	for c := d.LastChild(id); c != NoNode; c = d.LastChild(id) {
		d.remove(c)
	}
	for _, n := range parsed {
		child, ok := d.importNode(n)
		if !ok {
			continue
		}
		if err := d.AppendChild(id, child); err != nil {
			return err
		}
	}
	return nil
}

// importNode copies a parsed node and its subtree into the arena.
// Doctypes and other document-level nodes are dropped.
func (d *Document) importNode(n *html.Node) (NodeID, bool) {
	switch n.Type {
	case html.TextNode:
		return d.CreateTextNode(n.Data), true
	case html.CommentNode:
		return d.CreateComment(n.Data), true
	case html.ElementNode:
		el := d.CreateElement(n.Data)
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			_ = d.SetAttribute(el, name, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child, ok := d.importNode(c); ok {
				_ = d.AppendChild(el, child)
			}
		}
		return el, true
	default:
		return NoNode, false
	}
}
