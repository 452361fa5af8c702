package wire

import (
	"errors"
	"fmt"
)

// ErrMalformedMessage is the sentinel behind every MalformedError
var ErrMalformedMessage = errors.New("malformed message")

// MalformedError describes one record that could not be parsed.
// The record is dropped, the rest of the batch is still processed.
type MalformedError struct {
	Raw    string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrMalformedMessage, e.Reason, e.Raw)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedMessage
}

func malformed(raw, format string, a ...any) *MalformedError {
	return &MalformedError{Raw: raw, Reason: fmt.Sprintf(format, a...)}
}
