package wire

import (
	"strings"
)

const (
	bindingSeparator = ","
	bindingFieldSep  = "|"
)

// Binding связывает handler ID сервера с именем события
type Binding struct {
	HandlerID string
	Event     string
}

// ParseBindings parses the event-binding attribute value: "h1|click,h2|keyup".
// Event names are lower-cased; entries without both parts are skipped.
func ParseBindings(value string) []Binding {
	var bindings []Binding

	for _, entry := range strings.Split(value, bindingSeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		id, event, ok := strings.Cut(entry, bindingFieldSep)
		id = strings.TrimSpace(id)
		event = strings.ToLower(strings.TrimSpace(event))
		if !ok || id == "" || event == "" {
			continue
		}

		bindings = append(bindings, Binding{HandlerID: id, Event: event})
	}

	return bindings
}

// FormatBindings is the inverse of ParseBindings
func FormatBindings(bindings []Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.HandlerID + bindingFieldSep + b.Event
	}
	return strings.Join(parts, bindingSeparator)
}
