package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Basefont: true, atom.Bgsound: true,
	atom.Br: true, atom.Col: true, atom.Embed: true, atom.Frame: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Keygen: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

// Text inside these elements is serialized without escaping.
var rawTextElements = map[atom.Atom]bool{
	atom.Iframe: true, atom.Noembed: true, atom.Noframes: true,
	atom.Plaintext: true, atom.Script: true, atom.Style: true, atom.Xmp: true,
}

func tagAtom(tag string) atom.Atom {
	return atom.Lookup([]byte(tag))
}

// Escaping follows the fragment serialization algorithm: quotes in text are
// left alone, unlike html.EscapeString.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "\u00a0", "&nbsp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "\u00a0", "&nbsp;", `"`, "&quot;")
)

// OuterHTML returns the serialized markup of id and its descendants.
func (d *Document) OuterHTML(id NodeID) string {
	var b strings.Builder
	d.serialize(&b, id)
	return b.String()
}

// InnerHTML returns the serialized markup of the children of id.
func (d *Document) InnerHTML(id NodeID) string {
	var b strings.Builder
	for c := d.FirstChild(id); c != NoNode; c = d.NextSibling(c) {
		d.serialize(&b, c)
	}
	return b.String()
}

func (d *Document) serialize(b *strings.Builder, id NodeID) {
	n := d.get(id)
	if n == nil {
		return
	}
	switch n.kind {
	case KindText:
		if rawTextElements[tagAtom(d.TagName(n.parent))] {
			b.WriteString(decodeUTF16(n.data))
		} else {
			textEscaper.WriteString(b, decodeUTF16(n.data))
		}
	case KindComment:
		b.WriteString("<!--")
		b.WriteString(decodeUTF16(n.data))
		b.WriteString("-->")
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.tag)
		for _, a := range n.attrs {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			attrEscaper.WriteString(b, a.Value)
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidElements[tagAtom(n.tag)] {
			return
		}
		for c := n.first; c != NoNode; c = d.nodes[c].next {
			d.serialize(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.tag)
		b.WriteByte('>')
	}
}
