package models

import (
	"strconv"
	"strings"
)

// RootDocument адресует корень документа, а не компонент
const RootDocument = "doc"

// DiffType тип изменения: создание, обновление или удаление
type DiffType string

const (
	DiffCreate DiffType = "c"
	DiffUpdate DiffType = "u"
	DiffDelete DiffType = "d"
)

// ContentType тип содержимого, к которому применяется diff
type ContentType string

const (
	ContentNone      ContentType = ""  // whole-node delete, the server leaves the field empty
	ContentText      ContentType = "t" // text node
	ContentHTML      ContentType = "h" // HTML fragment with a single root
	ContentAttribute ContentType = "a" // name="value" attribute payload
)

// Path is the list of child indices from a root to a node
type Path []int

// Parent returns the path without its last segment
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1]
}

// Last returns the last segment, false for an empty path
func (p Path) Last() (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

// Equal compares two paths segment by segment
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String formats the path the way it travels on the wire: 1>0>3
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ">")
}

// Record is a typed wire record: *DiffRecord or *SessionRecord
type Record interface {
	// RawRecord returns the record line as it was received
	RawRecord() string
}

// DiffRecord одна инструкция патча для зеркального дерева
type DiffRecord struct {
	Type    DiffType
	Root    string
	Content ContentType
	Payload string // base64
	Raw     string
	Path    Path
}

// RawRecord implements Record
func (d *DiffRecord) RawRecord() string { return d.Raw }

// IsNodeDelete reports whether the record removes a whole node (not an attribute)
func (d *DiffRecord) IsNodeDelete() bool {
	return d.Type == DiffDelete && d.Content != ContentAttribute
}

// SessionRecord назначает клиенту новый session ID
type SessionRecord struct {
	SessionID string
	Raw       string
}

// RawRecord implements Record
func (s *SessionRecord) RawRecord() string { return s.Raw }
