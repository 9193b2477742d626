package dom

import "strings"

// Elements that start a new line in extracted text.
var blockElements = map[string]bool{
	"div": true, "p": true, "li": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ExtractText converts the children of root to plain text. Images are
// replaced by their alt text, <br> becomes a newline and block elements
// start on a new line. Surrounding whitespace is trimmed unless noTrim.
func (d *Document) ExtractText(root NodeID, noTrim bool) string {
	var b strings.Builder
	d.extractChildren(&b, root)
	text := b.String()
	if !noTrim {
		text = strings.TrimSpace(text)
	}
	return text
}

func (d *Document) extractChildren(b *strings.Builder, id NodeID) {
	for c := d.FirstChild(id); c != NoNode; c = d.NextSibling(c) {
		switch d.Kind(c) {
		case KindText:
			b.WriteString(d.Data(c))
		case KindElement:
			tag := d.TagName(c)
			switch {
			case tag == "img":
				alt, _ := d.Attribute(c, "alt")
				b.WriteString(alt)
			case tag == "br":
				b.WriteByte('\n')
			case blockElements[tag]:
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteByte('\n')
				}
				d.extractChildren(b, c)
			default:
				d.extractChildren(b, c)
			}
		}
	}
}
