package dom

import (
	"errors"
	"fmt"
)

// ErrUnresolvedTarget is the sentinel behind every UnresolvedError
var ErrUnresolvedTarget = errors.New("unresolved target")

// UnresolvedError reports a record whose root or path does not exist in the mirror tree.
// It signals drift from the server tree; the record is skipped.
type UnresolvedError struct {
	Root   string
	Path   string
	Reason string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s: %s:%s: %s", ErrUnresolvedTarget, e.Root, e.Path, e.Reason)
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolvedTarget
}
