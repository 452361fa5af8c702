package live

import (
	"strconv"
	"strings"

	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/internal/client/events"
)

// Методы ниже изменяют документ; при запущенном Run вызывайте их через Do.

// Dispatch fires ev at n, see events.Manager.Dispatch
func (c *Client) Dispatch(n *dom.Node, ev *dom.Event) {
	if c.events == nil || c.closed {
		return
	}
	c.events.Dispatch(n, ev)
}

// Click dispatches a click at n
func (c *Client) Click(n *dom.Node) {
	c.Dispatch(n, dom.NewEvent("click", n))
}

// Focus moves focus to n and dispatches focus
func (c *Client) Focus(n *dom.Node) {
	if c.doc == nil || c.closed {
		return
	}
	if prev := c.doc.ActiveElement(); prev != nil && prev != n {
		c.doc.Blur(prev)
		c.Dispatch(prev, dom.NewEvent("blur", prev))
	}
	c.doc.Focus(n)
	c.Dispatch(n, dom.NewEvent("focus", n))
}

// KeyPress dispatches keydown then keyup for key at n
func (c *Client) KeyPress(n *dom.Node, key string) {
	for _, typ := range []string{events.EventKeyDn, events.EventKeyUp} {
		ev := dom.NewEvent(typ, n)
		ev.Key = key
		if r := []rune(key); len(r) == 1 {
			ev.CharCode = int(r[0])
			ev.KeyCode = int(r[0])
		}
		c.Dispatch(n, ev)
	}
}

// SetValue types v into n and dispatches input and change
func (c *Client) SetValue(n *dom.Node, v string) {
	if n == nil || c.closed {
		return
	}
	n.SetValue(v)
	if n.IsTextEntry() {
		n.SetCaret(len(v))
	}
	c.Dispatch(n, dom.NewEvent(events.EventInput, n))
	c.Dispatch(n, dom.NewEvent(events.EventChange, n))
}

// SetChecked toggles a checkbox or radio and dispatches click and change
func (c *Client) SetChecked(n *dom.Node, checked bool) {
	if n == nil || c.closed || !n.IsCheckable() {
		return
	}
	n.SetChecked(checked)
	c.Dispatch(n, dom.NewEvent("click", n))
	c.Dispatch(n, dom.NewEvent(events.EventChange, n))
}

// SetFiles selects files in a file input and dispatches change
func (c *Client) SetFiles(n *dom.Node, files []dom.File) {
	if n == nil || c.closed || !n.IsFileInput() {
		return
	}
	n.SetFiles(files)
	c.Dispatch(n, dom.NewEvent(events.EventChange, n))
}

// FindByID returns the element with the given id attribute
func (c *Client) FindByID(id string) *dom.Node {
	if c.doc == nil {
		return nil
	}
	return c.doc.GetElementByID(id)
}

// FindComponent returns the node with the given component id
func (c *Client) FindComponent(id string) *dom.Node {
	if c.doc == nil {
		return nil
	}
	return c.doc.FindComponent(id)
}

// FindByName returns the elements with the given name attribute
func (c *Client) FindByName(name string) []*dom.Node {
	if c.doc == nil {
		return nil
	}
	return c.doc.GetElementsByName(name)
}

// FindByText returns the first element whose trimmed text equals text
func (c *Client) FindByText(tag, text string) *dom.Node {
	if c.doc == nil {
		return nil
	}
	return c.doc.Find(func(n *dom.Node) bool {
		return n.IsElement() && (tag == "" || n.Tag == tag) && strings.TrimSpace(n.TextContent()) == text
	})
}

// prefill sets live form state without events, the way autofill does.
// Keys match an id first, then a name.
func (c *Client) prefill() {
	for key, value := range c.opts.Prefill {
		targets := c.FindByName(key)
		if n := c.FindByID(key); n != nil {
			targets = []*dom.Node{n}
		}
		if len(targets) == 0 {
			c.logger.Warn("Prefill target not found", "key", key)
			continue
		}

		for _, n := range targets {
			fill(n, value)
		}
	}
}

func fill(n *dom.Node, value string) {
	switch {
	case n.IsFileInput():
	case n.InputType() == "radio":
		// radio группы выбираются по value
		if n.Value() == value {
			n.SetChecked(true)
		}
	case n.IsCheckable():
		checked, err := strconv.ParseBool(value)
		if err != nil {
			checked = value == n.Value()
		}
		n.SetChecked(checked)
	case n.HasLiveValue():
		n.SetValue(value)
	}
}
