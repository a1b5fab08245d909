package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")
	ErrInputClosed   = errors.New("input closed")
)

// ValidationError reports malformed or out-of-range input. It matches
// ErrValidation with errors.Is, and Err as well when set.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}
	return []error{ErrValidation}
}

// NotFoundError reports that no recipe matched Name, or that the book is
// empty (Empty set, Name is whatever was asked for, possibly "").
type NotFoundError struct {
	Name  string
	Empty bool
}

func (e *NotFoundError) Error() string {
	if e.Empty || e.Name == "" {
		return "no recipes found"
	}
	return fmt.Sprintf("recipe %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Invalid is shorthand for building a ValidationError.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
