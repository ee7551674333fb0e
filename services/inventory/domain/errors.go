package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInsufficientStock indicates a remove adjustment would drive an
	// item's quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrValidation is the sentinel matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports one or more violated field constraints.
// Fields maps field name to a human-readable message. It matches
// ErrValidation under errors.Is so callers can branch on the kind
// without losing the per-field detail.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready to accumulate
// field violations.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a violation for the named field. Later violations for the same
// field overwrite earlier ones.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns nil when no violations were recorded, otherwise e.
// Validators build an accumulator and return v.OrNil() so callers get a
// plain nil error on success.
func (e *ValidationError) OrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

// Error lists the violated fields in stable order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is matches ErrValidation so errors.Is(err, ErrValidation) works on
// wrapped ValidationErrors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
