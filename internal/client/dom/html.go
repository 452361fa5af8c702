package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a full server-rendered page into a mirror document
func ParseDocument(r io.Reader) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := NewDocument()
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if n := fromHTML(c); n != nil {
			doc.root.AppendChild(n)
		}
	}
	return doc, nil
}

// ParseFragment parses markup in the context of the given parent.
// A nil or non-element context parses as body content.
func ParseFragment(s string, context *Node) ([]*Node, error) {
	tag := "body"
	if context != nil && context.Kind == ElementNode && context.Tag != "html" {
		tag = context.Tag
	}

	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	hs, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment: %w", err)
	}

	nodes := make([]*Node, 0, len(hs))
	for _, h := range hs {
		if n := fromHTML(h); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// FirstRoot picks the node a fragment contributes: the first element, or the first node
// when the fragment has no element
func FirstRoot(nodes []*Node) *Node {
	for _, n := range nodes {
		if n.Kind == ElementNode {
			return n
		}
	}
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// Render writes the markup of n and its descendants
func Render(w io.Writer, n *Node) error {
	if err := html.Render(w, toHTML(n)); err != nil {
		return fmt.Errorf("failed to render %s node: %w", n.Kind, err)
	}
	return nil
}

// OuterHTML returns the markup of n; rendering errors yield an empty string
func OuterHTML(n *Node) string {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// HTML returns the markup of the whole document
func (d *Document) HTML() string {
	return OuterHTML(d.root)
}

func fromHTML(h *html.Node) *Node {
	var n *Node

	switch h.Type {
	case html.ElementNode:
		attrs := make([]Attr, 0, len(h.Attr))
		for _, a := range h.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			attrs = append(attrs, Attr{Name: name, Value: a.Val})
		}
		n = NewElement(h.Data, attrs...)
	case html.TextNode:
		return NewText(h.Data)
	case html.CommentNode:
		return NewComment(h.Data)
	case html.DoctypeNode:
		return NewDoctype(h.Data)
	case html.DocumentNode:
		n = &Node{Kind: DocumentNode}
	default:
		return nil
	}

	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := fromHTML(c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

func toHTML(n *Node) *html.Node {
	h := &html.Node{}

	switch n.Kind {
	case ElementNode:
		h.Type = html.ElementNode
		h.Data = n.Tag
		h.DataAtom = atom.Lookup([]byte(n.Tag))
		for _, a := range n.attrs {
			h.Attr = append(h.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
	case TextNode:
		h.Type = html.TextNode
		h.Data = n.Data
	case CommentNode:
		h.Type = html.CommentNode
		h.Data = n.Data
	case DoctypeNode:
		h.Type = html.DoctypeNode
		h.Data = n.Data
	case DocumentNode:
		h.Type = html.DocumentNode
	}

	for _, c := range n.children {
		h.AppendChild(toHTML(c))
	}
	return h
}
