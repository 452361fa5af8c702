package patch

import "errors"

var (
	// ErrUnsupportedRecord is returned for a diff/content combination with no action
	ErrUnsupportedRecord = errors.New("unsupported record")
	// ErrEmptyFragment is returned when an HTML payload has no node to insert
	ErrEmptyFragment = errors.New("empty html fragment")
	// ErrDetachedTarget is returned when the target cannot be replaced or removed
	ErrDetachedTarget = errors.New("target has no parent")
)
