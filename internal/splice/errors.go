package splice

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorNotFound is returned when either anchor of a Patch cannot be
	// located, or when the span between them has already been rewritten.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrOutOfBounds is returned when the search or splice range falls
	// outside of the line buffer.
	ErrOutOfBounds = errors.New("line range out of bounds")
)

// IOError wraps a failure to read or write the patched file, so that callers
// can tell it apart from the anchor errors above.
type IOError struct {
	Op   string // "read", "stat" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
