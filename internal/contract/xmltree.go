package contract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// nodeKind tells element nodes apart from everything the engine passes through.
type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
	// rawNode holds an already serialized comment, directive or processing
	// instruction.
	rawNode
)

// node is a minimal mutable XML tree. Names are kept exactly as written in
// the source (prefix in Name.Space) so the part serializes back with the same
// namespace prefixes Word expects.
type node struct {
	kind     nodeKind
	name     xml.Name
	attrs    []xml.Attr
	children []*node
	text     string
}

func newElement(prefix, local string, attrs ...xml.Attr) *node {
	return &node{kind: elementNode, name: xml.Name{Space: prefix, Local: local}, attrs: attrs}
}

func newText(s string) *node {
	return &node{kind: textNode, text: s}
}

// is reports whether n is an element with the given prefix and local name.
func (n *node) is(prefix, local string) bool {
	return n.kind == elementNode && n.name.Space == prefix && n.name.Local == local
}

// childrenNamed returns the direct element children with the given name.
func (n *node) childrenNamed(prefix, local string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.is(prefix, local) {
			out = append(out, c)
		}
	}
	return out
}

// child returns the first direct element child with the given name, or nil.
func (n *node) child(prefix, local string) *node {
	for _, c := range n.children {
		if c.is(prefix, local) {
			return c
		}
	}
	return nil
}

// removeChildren drops every direct child for which drop returns true.
func (n *node) removeChildren(drop func(*node) bool) {
	kept := n.children[:0]
	for _, c := range n.children {
		if !drop(c) {
			kept = append(kept, c)
		}
	}
	clear(n.children[len(kept):])
	n.children = kept
}

// insertChild inserts c at position i of n's children.
func (n *node) insertChild(i int, c *node) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

// attr returns the value of the attribute with the given raw name.
func (n *node) attr(prefix, local string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Space == prefix && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// setAttr sets or adds an attribute.
func (n *node) setAttr(prefix, local, value string) {
	for i, a := range n.attrs {
		if a.Name.Space == prefix && a.Name.Local == local {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, xml.Attr{Name: xml.Name{Space: prefix, Local: local}, Value: value})
}

// textContent concatenates the character data directly under n.
func (n *node) textContent() string {
	var b strings.Builder
	for _, c := range n.children {
		if c.kind == textNode {
			b.WriteString(c.text)
		}
	}
	return b.String()
}

// parseTree reads a whole XML part. The returned document node has no name;
// its children are the prolog, the root element and any trailing misc nodes.
func parseTree(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	doc := &node{kind: elementNode}
	stack := []*node{doc}

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		parent := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			el := &node{kind: elementNode, name: t.Name, attrs: append([]xml.Attr(nil), t.Attr...)}
			parent.children = append(parent.children, el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 1 || parent.name != t.Name {
				return nil, fmt.Errorf("parse xml: unexpected end element %s", qname(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			parent.children = append(parent.children, newText(string(t)))
		case xml.Comment:
			parent.children = append(parent.children, &node{kind: rawNode, text: "<!--" + string(t) + "-->"})
		case xml.ProcInst:
			parent.children = append(parent.children, &node{kind: rawNode, text: "<?" + t.Target + " " + string(t.Inst) + "?>"})
		case xml.Directive:
			parent.children = append(parent.children, &node{kind: rawNode, text: "<!" + string(t) + ">"})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("parse xml: unclosed element %s", qname(stack[len(stack)-1].name))
	}
	return doc, nil
}

// root returns the document element of a tree built by parseTree.
func (n *node) root() *node {
	for _, c := range n.children {
		if c.kind == elementNode {
			return c
		}
	}
	return nil
}

// serialize writes the tree rooted at the document node back out as XML.
func serialize(doc *node) []byte {
	var buf bytes.Buffer
	for _, c := range doc.children {
		writeNode(&buf, c)
	}
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *node) {
	switch n.kind {
	case textNode:
		escape(buf, n.text, false)
	case rawNode:
		buf.WriteString(n.text)
	case elementNode:
		buf.WriteByte('<')
		buf.WriteString(qname(n.name))
		for _, a := range n.attrs {
			buf.WriteByte(' ')
			buf.WriteString(qname(a.Name))
			buf.WriteString(`="`)
			escape(buf, a.Value, true)
			buf.WriteByte('"')
		}
		if len(n.children) == 0 {
			buf.WriteString("/>")
			return
		}
		buf.WriteByte('>')
		for _, c := range n.children {
			writeNode(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(qname(n.name))
		buf.WriteByte('>')
	}
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// escape writes s with the XML special characters replaced. Quotes and
// whitespace control characters are only escaped inside attribute values.
// Characters XML 1.0 does not allow become U+FFFD.
func escape(buf *bytes.Buffer, s string, attr bool) {
	for _, r := range s {
		switch {
		case !isXMLChar(r):
			buf.WriteRune('\uFFFD')
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case r == '\r':
			buf.WriteString("&#xD;")
		case attr && r == '"':
			buf.WriteString("&quot;")
		case attr && r == '\n':
			buf.WriteString("&#xA;")
		case attr && r == '\t':
			buf.WriteString("&#x9;")
		default:
			buf.WriteRune(r)
		}
	}
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
