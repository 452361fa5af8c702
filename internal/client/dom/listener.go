package dom

import "strings"

// Listener is the delegated listener for one event name on one node.
// All handler IDs bound to the event share it.
type Listener struct {
	Event      string
	HandlerIDs []string
}

// Listeners returns the installed listeners in binding order
func (n *Node) Listeners() []*Listener { return n.listeners }

// Listener returns the listener for event or nil
func (n *Node) Listener(event string) *Listener {
	event = strings.ToLower(event)
	for _, l := range n.listeners {
		if l.Event == event {
			return l
		}
	}
	return nil
}

// HasListeners reports whether any listener is installed
func (n *Node) HasListeners() bool { return n.bound }

// ListenerSource returns the binding attribute value the listeners were built from
func (n *Node) ListenerSource() (string, bool) {
	return n.listenerSource, n.bound
}

// SetListeners replaces the listener table and remembers the attribute value it came from
func (n *Node) SetListeners(source string, ls []*Listener) {
	n.listeners = ls
	n.listenerSource = source
	n.bound = true
}

// ClearListeners removes all listeners
func (n *Node) ClearListeners() {
	n.listeners = nil
	n.listenerSource = ""
	n.bound = false
}
