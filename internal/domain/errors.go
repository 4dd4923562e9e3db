package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every InvalidInputError via errors.Is
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned by repositories when a lookup has no result
	ErrNotFound = errors.New("not found")

	// ErrRentDataUnavailable wraps failures of the rent data source itself.
	// A city without data is NOT an error: lookups report it as absent.
	ErrRentDataUnavailable = errors.New("rent data unavailable")
)

// InvalidInputError describes a caller input that violates a domain rule.
// The computation is aborted and the error is surfaced verbatim.
type InvalidInputError struct {
	Field  string
	Reason string
}

// NewInvalidInputError creates an InvalidInputError for the given field
func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
