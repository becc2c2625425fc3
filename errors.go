package sievego

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned when the configured worker count is
	// not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrUnknownStrategy is returned for a strategy value outside the
	// defined set.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// ErrTableTooLarge indicates the composite table for the requested bound
// could not be allocated. It is the single fatal error path inside the
// engine; no partial table is ever returned.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTableTooLarge struct {
	Bound uint64
	cause error
}

func (e *ErrTableTooLarge) Error() string {
	return fmt.Sprintf("composite table too large for bound %d", e.Bound)
}

func (e *ErrTableTooLarge) Unwrap() error { return e.cause }
