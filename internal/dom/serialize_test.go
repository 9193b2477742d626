package dom

import "testing"

func TestOuterHTML(t *testing.T) {
	d := NewDocument()

	img := d.CreateElement("img",
		Attr{Name: "src", Value: "test.jpg"},
		Attr{Name: "alt", Value: "🍻"},
		Attr{Name: "class", Value: "umläöüt"},
	)
	want := `<img src="test.jpg" alt="🍻" class="umläöüt">`
	if got := d.OuterHTML(img); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := UTF16Len(d.OuterHTML(img)); got != 45 {
		t.Errorf("expected 45 code units, got %d", got)
	}
}

func TestSerializeEscaping(t *testing.T) {
	d := NewDocument()
	p := d.CreateElement("p", Attr{Name: "title", Value: "a \"b\" & <c>\u00a0"})
	_ = d.AppendChild(p, d.CreateTextNode("1 < 2 & 3 > 2\u00a0\"q\""))

	want := `<p title="a &quot;b&quot; &amp; <c>&nbsp;">1 &lt; 2 &amp; 3 &gt; 2&nbsp;"q"</p>`
	if got := d.OuterHTML(p); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSerializeNodes(t *testing.T) {
	tests := []struct {
		name  string
		build func(d *Document) NodeID
		want  string
	}{
		{
			name:  "void element",
			build: func(d *Document) NodeID { return d.CreateElement("BR") },
			want:  "<br>",
		},
		{
			name:  "empty element",
			build: func(d *Document) NodeID { return d.CreateElement("span") },
			want:  "<span></span>",
		},
		{
			name:  "comment",
			build: func(d *Document) NodeID { return d.CreateComment(" note ") },
			want:  "<!-- note -->",
		},
		{
			name: "raw text",
			build: func(d *Document) NodeID {
				s := d.CreateElement("style")
				_ = d.AppendChild(s, d.CreateTextNode("a > b {}"))
				return s
			},
			want: "<style>a > b {}</style>",
		},
		{
			name: "nested",
			build: func(d *Document) NodeID {
				b := d.CreateElement("b")
				i := d.CreateElement("i")
				_ = d.AppendChild(i, d.CreateTextNode("x"))
				_ = d.AppendChild(b, i)
				_ = d.AppendChild(b, d.CreateElement("br"))
				return b
			},
			want: "<b><i>x</i><br></b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			if got := d.OuterHTML(tt.build(d)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInnerHTML(t *testing.T) {
	d, div := newDiv(t, "")
	if got := d.InnerHTML(div); got != "" {
		t.Errorf("expected empty markup, got %q", got)
	}
	_ = d.AppendChild(div, d.CreateTextNode("hi"))
	_ = d.AppendChild(div, d.CreateElement("br"))
	if got := d.InnerHTML(div); got != "hi<br>" {
		t.Errorf("expected %q, got %q", "hi<br>", got)
	}
}

func TestSerializeElementClasses(t *testing.T) {
	voids := []string{
		"area", "base", "basefont", "bgsound", "br", "col", "embed", "frame",
		"hr", "img", "input", "keygen", "link", "meta", "param", "source",
		"track", "wbr",
	}
	for _, tag := range voids {
		d := NewDocument()
		if got := d.OuterHTML(d.CreateElement(tag)); got != "<"+tag+">" {
			t.Errorf("%s: expected a void element, got %q", tag, got)
		}
	}

	raws := []string{"iframe", "noembed", "noframes", "plaintext", "script", "style", "xmp"}
	for _, tag := range raws {
		d := NewDocument()
		el := d.CreateElement(tag)
		_ = d.AppendChild(el, d.CreateTextNode("a<b&"))
		if got, want := d.OuterHTML(el), "<"+tag+">a<b&</"+tag+">"; got != want {
			t.Errorf("%s: expected %q, got %q", tag, want, got)
		}
	}

	// Unknown and custom tags are ordinary elements.
	d := NewDocument()
	el := d.CreateElement("x-img")
	_ = d.AppendChild(el, d.CreateTextNode("a<b"))
	if got, want := d.OuterHTML(el), "<x-img>a&lt;b</x-img>"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
