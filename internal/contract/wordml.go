package contract

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
)

// wordNS is the WordprocessingML main namespace.
const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

var errNotWordDocument = errors.New("not a WordprocessingML document")

// rPrOrder is the schema order of run property children (CT_RPr). Word
// rejects documents whose run properties are out of order, so new children
// are inserted at their schema position rather than appended.
var rPrOrder = []string{
	"rStyle", "rFonts", "b", "bCs", "i", "iCs", "caps", "smallCaps", "strike",
	"dstrike", "outline", "shadow", "emboss", "imprint", "noProof", "snapToGrid",
	"vanish", "webHidden", "color", "spacing", "w", "kern", "position", "sz",
	"szCs", "highlight", "u", "effect", "bdr", "shd", "fitText", "vertAlign",
	"rtl", "cs", "em", "lang", "eastAsianLayout", "specVanish", "oMath",
}

var rPrRank = func() map[string]int {
	m := make(map[string]int, len(rPrOrder))
	for i, name := range rPrOrder {
		m[name] = i
	}
	return m
}()

// wordDocument wraps the parsed main document part.
type wordDocument struct {
	tree *node
	body *node
	// w is the prefix the document binds to wordNS, almost always "w".
	w string
}

func newWordDocument(tree *node) (*wordDocument, error) {
	root := tree.root()
	if root == nil {
		return nil, errNotWordDocument
	}

	prefix, ok := boundPrefix(root)
	if !ok || root.name.Space != prefix || root.name.Local != "document" {
		return nil, errNotWordDocument
	}
	body := root.child(prefix, "body")
	if body == nil {
		return nil, errNotWordDocument
	}
	return &wordDocument{tree: tree, body: body, w: prefix}, nil
}

// boundPrefix finds the prefix declared for wordNS on el.
func boundPrefix(el *node) (string, bool) {
	for _, a := range el.attrs {
		if a.Value != wordNS {
			continue
		}
		if a.Name.Space == "xmlns" {
			return a.Name.Local, true
		}
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			return "", true
		}
	}
	return "", false
}

// paragraphs returns the body paragraphs followed by the paragraphs of every
// body-level table cell, in document order within each group.
func (d *wordDocument) paragraphs() []*node {
	out := d.body.childrenNamed(d.w, "p")
	for _, tbl := range d.body.childrenNamed(d.w, "tbl") {
		for _, tr := range tbl.childrenNamed(d.w, "tr") {
			for _, tc := range tr.childrenNamed(d.w, "tc") {
				out = append(out, tc.childrenNamed(d.w, "p")...)
			}
		}
	}
	return out
}

// paragraphText concatenates the text of the paragraph's runs.
func (d *wordDocument) paragraphText(p *node) string {
	var b strings.Builder
	for _, r := range p.childrenNamed(d.w, "r") {
		for _, t := range r.childrenNamed(d.w, "t") {
			b.WriteString(t.textContent())
		}
	}
	return b.String()
}

// replaceRuns drops every run of p and appends one run holding text.
// The per-run formatting of the original runs is lost on purpose.
func (d *wordDocument) replaceRuns(p *node, text string) {
	p.removeChildren(func(c *node) bool { return c.is(d.w, "r") })

	t := newElement(d.w, "t")
	t.setAttr("xml", "space", "preserve")
	if text != "" {
		t.children = []*node{newText(text)}
	}
	r := newElement(d.w, "r")
	r.children = []*node{t}
	p.children = append(p.children, r)
}

// applyFont forces family and size (in points) onto every run of p.
func (d *wordDocument) applyFont(p *node, family string, size int) {
	halfPoints := strconv.Itoa(size * 2)
	for _, r := range p.childrenNamed(d.w, "r") {
		rPr := d.runProperties(r)

		fonts := d.ensureProperty(rPr, "rFonts")
		// Theme fonts take precedence over explicit ones in Word.
		fonts.attrs = dropThemeAttrs(fonts.attrs)
		for _, slot := range []string{"ascii", "hAnsi", "eastAsia", "cs"} {
			fonts.setAttr(d.w, slot, family)
		}

		d.ensureProperty(rPr, "sz").setAttr(d.w, "val", halfPoints)
		d.ensureProperty(rPr, "szCs").setAttr(d.w, "val", halfPoints)
	}
}

// runProperties returns the w:rPr of run r, creating it as the first child.
func (d *wordDocument) runProperties(r *node) *node {
	if rPr := r.child(d.w, "rPr"); rPr != nil {
		return rPr
	}
	rPr := newElement(d.w, "rPr")
	r.insertChild(0, rPr)
	return rPr
}

// ensureProperty returns the named child of rPr, inserting it at its schema
// position when missing.
func (d *wordDocument) ensureProperty(rPr *node, local string) *node {
	if el := rPr.child(d.w, local); el != nil {
		return el
	}
	el := newElement(d.w, local)

	rank := rPrRank[local]
	at := len(rPr.children)
	for i, c := range rPr.children {
		if c.kind != elementNode || c.name.Space != d.w {
			continue
		}
		r, ok := rPrRank[c.name.Local]
		if !ok {
			// rPrChange and extensions always close the sequence.
			r = len(rPrOrder)
		}
		if r > rank {
			at = i
			break
		}
	}
	rPr.insertChild(at, el)
	return el
}

func dropThemeAttrs(attrs []xml.Attr) []xml.Attr {
	kept := attrs[:0]
	for _, a := range attrs {
		if !strings.HasSuffix(a.Name.Local, "Theme") {
			kept = append(kept, a)
		}
	}
	return kept
}
