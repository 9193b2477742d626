package engine

import (
	"errors"
	"fmt"
)

// Errors returned or logged by engine operations.
var (
	// ErrContainerNotFound indicates the bound container is missing from the document.
	ErrContainerNotFound = errors.New("container element not found")

	// ErrNoSelection indicates the environment has no selection range.
	ErrNoSelection = errors.New("no selection range")

	// ErrInvariantViolation indicates a logic error. Operations that detect
	// one panic with an error wrapping it.
	ErrInvariantViolation = errors.New("invariant violation")
)

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
