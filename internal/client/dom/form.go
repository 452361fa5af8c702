package dom

import (
	"strings"
)

// File is a file selected in a file input
type File struct {
	Name string
	Type string
	Data []byte
	Size int64 // when zero the length of Data is used
}

// Len returns the file size in bytes
func (f File) Len() int64 {
	if f.Size > 0 {
		return f.Size
	}
	return int64(len(f.Data))
}

// input types with free text entry
var textEntryTypes = map[string]bool{
	"text":           true,
	"search":         true,
	"email":          true,
	"url":            true,
	"tel":            true,
	"password":       true,
	"number":         true,
	"date":           true,
	"datetime-local": true,
	"month":          true,
	"week":           true,
	"time":           true,
	"color":          true,
}

// InputType returns the lower-case type of an input element ("text" when absent)
func (n *Node) InputType() string {
	if n.Tag != "input" {
		return ""
	}
	t, _ := n.Attr("type")
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return "text"
	}
	return t
}

// HasLiveValue reports whether the node keeps a value separate from its markup
func (n *Node) HasLiveValue() bool {
	switch n.Tag {
	case "input", "textarea", "select":
		return n.Kind == ElementNode
	}
	return false
}

// HasValue reports whether outgoing events should carry the node's value
func (n *Node) HasValue() bool {
	if n.HasLiveValue() {
		return true
	}
	switch n.Tag {
	case "button", "option":
		return n.Kind == ElementNode
	}
	return false
}

// IsTextEntry reports whether the user types into this control
func (n *Node) IsTextEntry() bool {
	if n.Tag == "textarea" {
		return true
	}
	return textEntryTypes[n.InputType()]
}

// IsCheckable reports whether the node is a checkbox or radio input
func (n *Node) IsCheckable() bool {
	t := n.InputType()
	return t == "checkbox" || t == "radio"
}

// IsFileInput reports whether the node is an <input type="file">
func (n *Node) IsFileInput() bool {
	return n.InputType() == "file"
}

// IsDisabled reports whether the control carries the disabled attribute
func (n *Node) IsDisabled() bool {
	return n.HasAttr(AttrDisabled)
}

// Value returns the live value
func (n *Node) Value() string {
	switch {
	case n.Tag == "select":
		values := n.SelectedValues()
		if len(values) == 0 {
			return ""
		}
		return values[0]
	case n.Tag == "option":
		return n.optionValue()
	case n.dirtyValue:
		return n.value
	case n.Tag == "textarea":
		return n.TextContent()
	}

	v, ok := n.Attr(AttrValue)
	if !ok && n.IsCheckable() {
		return "on"
	}
	return v
}

// SetValue writes the live value. For a select it selects the matching options.
func (n *Node) SetValue(v string) {
	switch n.Tag {
	case "select":
		multiple := n.HasAttr("multiple")
		matched := false
		for _, opt := range n.Options() {
			sel := opt.optionValue() == v && (multiple || !matched)
			matched = matched || sel
			opt.selected = sel
			opt.dirtySelected = true
		}
	case "option":
		n.SetAttr(AttrValue, v)
	default:
		n.value = v
		n.dirtyValue = true
	}
}

// DefaultValue returns the value declared in markup
func (n *Node) DefaultValue() string {
	if n.Tag == "textarea" {
		return n.TextContent()
	}
	v, _ := n.Attr(AttrValue)
	return v
}

// Checked returns the live checked state of a checkbox or radio
func (n *Node) Checked() bool {
	if n.dirtyChecked {
		return n.checked
	}
	return n.HasAttr(AttrChecked)
}

// DefaultChecked returns the checked state declared in markup
func (n *Node) DefaultChecked() bool {
	return n.HasAttr(AttrChecked)
}

// SetChecked sets the live checked state; checking a radio unchecks its group
func (n *Node) SetChecked(checked bool) {
	n.checked = checked
	n.dirtyChecked = true

	if !checked || n.InputType() != "radio" {
		return
	}

	name, ok := n.Attr("name")
	if !ok || name == "" {
		return
	}

	root := n
	for root.parent != nil {
		root = root.parent
	}
	root.Walk(func(c *Node) bool {
		if c != n && c.InputType() == "radio" {
			if other, _ := c.Attr("name"); other == name {
				c.checked = false
				c.dirtyChecked = true
			}
		}
		return true
	})
}

// Selected returns the live selected state of an option
func (n *Node) Selected() bool {
	if n.dirtySelected {
		return n.selected
	}
	return n.HasAttr(AttrSelected)
}

// DefaultSelected returns the selected state declared in markup
func (n *Node) DefaultSelected() bool {
	return n.HasAttr(AttrSelected)
}

// SetSelected sets the live selected state of an option
func (n *Node) SetSelected(selected bool) {
	n.selected = selected
	n.dirtySelected = true
}

// Options returns the option descendants of a select in document order
func (n *Node) Options() []*Node {
	var opts []*Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			if d.Kind == ElementNode && d.Tag == "option" {
				opts = append(opts, d)
				return false
			}
			return true
		})
	}
	return opts
}

// SelectedValues returns the values of the selected options of a select.
// A single select without an explicit selection reports its first option.
func (n *Node) SelectedValues() []string {
	opts := n.Options()

	var values []string
	for _, opt := range opts {
		if opt.Selected() {
			values = append(values, opt.optionValue())
		}
	}

	if len(values) == 0 && !n.HasAttr("multiple") && len(opts) != 0 {
		values = append(values, opts[0].optionValue())
	}
	if !n.HasAttr("multiple") && len(values) > 1 {
		values = values[len(values)-1:]
	}

	return values
}

func (n *Node) optionValue() string {
	if v, ok := n.Attr(AttrValue); ok {
		return v
	}
	return strings.TrimSpace(n.TextContent())
}

// Files returns the files selected in a file input
func (n *Node) Files() []File { return n.files }

// SetFiles replaces the file selection
func (n *Node) SetFiles(files []File) {
	n.files = append([]File(nil), files...)
}
