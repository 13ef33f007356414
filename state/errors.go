package state

import (
	"fmt"
	"strings"
)

// NotFoundError reports a referenced entity id that does not exist where
// existence is required.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// InsufficientStockError reports an operation that would drive an
// inventory item's stock negative. The item is left untouched.
type InsufficientStockError struct {
	Item      string
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %g, available %g", e.Item, e.Requested, e.Available)
}

// ValidationError carries the full batch of field-level problems so the
// caller can show them all at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Problems: []string{fmt.Sprintf(format, args...)}}
}

// IndexOutOfRangeError reports a line-item mutation against an index the
// order does not have.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (length %d)", e.Index, e.Length)
}
