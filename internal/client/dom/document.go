package dom

import "strings"

// Document is the mirror of one rendered page.
// It is not safe for concurrent use; the live client owns it from a single goroutine.
type Document struct {
	root    *Node
	active  *Node
	overlay *Node
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{root: &Node{Kind: DocumentNode}}
}

// Root returns the document node
func (d *Document) Root() *Node { return d.root }

// DocumentElement returns the <html> element or nil
func (d *Document) DocumentElement() *Node {
	for _, c := range d.root.children {
		if c.Kind == ElementNode {
			return c
		}
	}
	return nil
}

// Head returns the <head> element or nil
func (d *Document) Head() *Node { return d.childOfHTML("head") }

// Body returns the <body> element or nil
func (d *Document) Body() *Node { return d.childOfHTML("body") }

func (d *Document) childOfHTML(tag string) *Node {
	html := d.DocumentElement()
	if html == nil {
		return nil
	}
	for _, c := range html.children {
		if c.Kind == ElementNode && c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindComponent returns the first node in document order whose creation-time
// component id equals id
func (d *Document) FindComponent(id string) *Node {
	return d.Find(func(n *Node) bool { return n.componentID == id })
}

// Find returns the first node in document order matching fn
func (d *Document) Find(fn func(*Node) bool) *Node {
	var found *Node
	d.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if fn(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns all nodes in document order matching fn
func (d *Document) FindAll(fn func(*Node) bool) []*Node {
	var nodes []*Node
	d.root.Walk(func(n *Node) bool {
		if fn(n) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// QueryAttr returns all elements carrying the attribute
func (d *Document) QueryAttr(name string) []*Node {
	return d.FindAll(func(n *Node) bool {
		return n.Kind == ElementNode && n.HasAttr(name)
	})
}

// GetElementByID returns the element with the given id attribute or nil
func (d *Document) GetElementByID(id string) *Node {
	return d.Find(func(n *Node) bool {
		v, ok := n.Attr("id")
		return n.Kind == ElementNode && ok && v == id
	})
}

// GetElementsByName returns the elements with the given name attribute
func (d *Document) GetElementsByName(name string) []*Node {
	return d.FindAll(func(n *Node) bool {
		v, ok := n.Attr("name")
		return n.Kind == ElementNode && ok && v == name
	})
}

// Contains reports whether n is attached to the document
func (d *Document) Contains(n *Node) bool {
	return n != nil && d.root.Contains(n)
}

// Hash returns the value of the first data-hlive-hash attribute
func (d *Document) Hash() (string, bool) {
	n := d.Find(func(n *Node) bool { return n.Kind == ElementNode && n.HasAttr(AttrHash) })
	if n == nil {
		return "", false
	}
	return n.Attr(AttrHash)
}

// ActiveElement returns the focused element. A focused node that left the tree is dropped.
func (d *Document) ActiveElement() *Node {
	if d.active != nil && !d.Contains(d.active) {
		d.active = nil
	}
	return d.active
}

// Focus makes n the active element
func (d *Document) Focus(n *Node) {
	if n == nil || !d.Contains(n) {
		return
	}
	d.active = n
}

// Blur clears focus when n is the active element
func (d *Document) Blur(n *Node) {
	if d.active == n {
		d.active = nil
	}
}

// ShowOverlay marks the page as disconnected by appending the overlay element to the body
func (d *Document) ShowOverlay(message string) {
	if d.overlay != nil {
		return
	}

	d.overlay = NewElement("div", Attr{Name: AttrOverlay, Value: ""})
	d.overlay.AppendChild(NewText(message))

	parent := d.Body()
	if parent == nil {
		parent = d.DocumentElement()
	}
	if parent == nil {
		parent = d.root
	}
	parent.AppendChild(d.overlay)
}

// OverlayShown reports whether the disconnect overlay is visible
func (d *Document) OverlayShown() bool { return d.overlay != nil }

// Title returns the trimmed text of the <title> element
func (d *Document) Title() string {
	t := d.Find(func(n *Node) bool { return n.Kind == ElementNode && n.Tag == "title" })
	if t == nil {
		return ""
	}
	return strings.TrimSpace(t.TextContent())
}
