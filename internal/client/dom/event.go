package dom

// Event is a synthetic DOM event dispatched through the mirror tree
type Event struct {
	Target        *Node
	CurrentTarget *Node
	Type          string
	Key           string
	CharCode      int
	KeyCode       int
	ShiftKey      bool
	AltKey        bool
	CtrlKey       bool
	// Initial marks events produced by the initial form sync
	Initial bool

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates an event of the given type targeted at n
func NewEvent(typ string, target *Node) *Event {
	return &Event{Type: typ, Target: target}
}

// PreventDefault suppresses the default action
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops bubbling after the current node
func (e *Event) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// IsKeyboard reports whether the event is a key event
func (e *Event) IsKeyboard() bool {
	switch e.Type {
	case "keyup", "keydown", "keypress":
		return true
	}
	return false
}
