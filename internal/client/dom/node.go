package dom

import (
	"strings"
)

// Kind тип узла зеркального дерева
type Kind int

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
	DoctypeNode
	DocumentNode
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case DoctypeNode:
		return "doctype"
	case DocumentNode:
		return "document"
	}
	return "unknown"
}

// Attr is one element attribute; names are stored lower-case
type Attr struct {
	Name  string
	Value string
}

// Node is one node of the mirror tree. A node is owned by its parent.
type Node struct {
	parent         *Node
	children       []*Node
	attrs          []Attr
	listeners      []*Listener
	files          []File
	Tag            string // element name, lower-case
	Data           string // text, comment or doctype content
	componentID    string
	listenerSource string
	value          string
	Kind           Kind
	scrollTop      int
	caret          int
	bound          bool
	checked        bool
	selected       bool
	dirtyValue     bool
	dirtyChecked   bool
	dirtySelected  bool
}

// NewElement создает элемент. Component ID берется из AttrComponentID один раз и больше не меняется.
func NewElement(tag string, attrs ...Attr) *Node {
	n := &Node{Kind: ElementNode, Tag: strings.ToLower(tag)}
	for _, a := range attrs {
		n.SetAttr(a.Name, a.Value)
	}
	if id, ok := n.Attr(AttrComponentID); ok {
		n.componentID = id
	}
	return n
}

// NewText создает текстовый узел
func NewText(data string) *Node {
	return &Node{Kind: TextNode, Data: data}
}

// NewComment создает комментарий
func NewComment(data string) *Node {
	return &Node{Kind: CommentNode, Data: data}
}

// NewDoctype создает doctype узел
func NewDoctype(name string) *Node {
	return &Node{Kind: DoctypeNode, Data: name}
}

// ComponentID returns the stable component identifier captured at creation
func (n *Node) ComponentID() string { return n.componentID }

// IsElement reports whether n is an element
func (n *Node) IsElement() bool { return n.Kind == ElementNode }

// Parent returns the owning node, nil for detached nodes and the document root
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list. The slice must not be modified by callers.
func (n *Node) Children() []*Node { return n.children }

// ChildAt returns the i-th child or nil
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IndexOf returns the position of child c or -1
func (n *Node) IndexOf(c *Node) int {
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}

// AppendChild adds c as the last child, detaching it from its previous parent first
func (n *Node) AppendChild(c *Node) {
	n.InsertAt(len(n.children), c)
}

// InsertAt inserts c before the child at index i; i == len(children) appends
func (n *Node) InsertAt(i int, c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}

	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	c.parent = n
}

// RemoveChild detaches c from n; it is a no-op when c is not a child of n
func (n *Node) RemoveChild(c *Node) {
	i := n.IndexOf(c)
	if i < 0 {
		return
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil
}

// Remove detaches n from its parent
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ReplaceWith puts r at n's position and detaches n
func (n *Node) ReplaceWith(r *Node) {
	p := n.parent
	if p == nil {
		return
	}
	i := p.IndexOf(n)
	p.RemoveChild(n)
	p.InsertAt(i, r)
}

// Contains reports whether d is n or one of its descendants
func (n *Node) Contains(d *Node) bool {
	for cur := d; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants in document order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	// копия, fn может менять дерево
	children := append([]*Node(nil), n.children...)
	for _, c := range children {
		c.Walk(fn)
	}
}

// TextContent returns the concatenated text of n and its descendants
func (n *Node) TextContent() string {
	switch n.Kind {
	case TextNode, CommentNode:
		return n.Data
	case DoctypeNode:
		return ""
	}

	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// SetTextContent replaces the text of a text node, or all children of an element with one text node
func (n *Node) SetTextContent(s string) {
	switch n.Kind {
	case TextNode, CommentNode:
		n.Data = s
		return
	case DoctypeNode:
		return
	}

	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	if s != "" {
		n.AppendChild(NewText(s))
	}
}

// Attr returns the attribute value and whether it is present
func (n *Node) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// SetAttr sets an attribute, keeping the position of an existing one
func (n *Node) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr removes an attribute if present
func (n *Node) RemoveAttr(name string) {
	name = strings.ToLower(name)
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns the ordered attribute list. The slice must not be modified by callers.
func (n *Node) Attrs() []Attr { return n.attrs }

// ScrollTop returns the scroll offset last set by the scroll plugin
func (n *Node) ScrollTop() int { return n.scrollTop }

// SetScrollTop sets the scroll offset
func (n *Node) SetScrollTop(v int) { n.scrollTop = v }

// Caret returns the caret position of a text-entry control
func (n *Node) Caret() int { return n.caret }

// SetCaret moves the caret, clamped to the current value length
func (n *Node) SetCaret(pos int) {
	if l := len(n.Value()); pos > l {
		pos = l
	}
	if pos < 0 {
		pos = 0
	}
	n.caret = pos
}
