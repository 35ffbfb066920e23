//go:build !maybe_nocheck

// Package check compares the forms Go code already uses for optional and fallible values
// against an expected value: pointers, comma-ok pairs and (value, error) pairs.
//
// Each function reports true only when the value is present (or the call succeeded) and equals
// the expected value.  Absence and failure never compare equal to anything, and neither do
// values whose dynamic type cannot be compared.
package check

import (
	"errors"

	"github.com/abevier/maybe/internal/equal"
)

// Ptr reports whether p is non-nil and points at a value equal to other.
func Ptr[T comparable](p *T, other T) bool {
	return p != nil && equal.Values(*p, other)
}

// CommaOk reports whether ok is set and v equals other.
func CommaOk[T comparable](v T, ok bool, other T) bool {
	return ok && equal.Values(v, other)
}

// Value reports whether err is nil and v equals other.
func Value[T comparable](v T, err error, other T) bool {
	return err == nil && equal.Values(v, other)
}

// Error reports whether err is non-nil and matches target according to errors.Is.
func Error[T any](_ T, err error, target error) bool {
	return err != nil && errors.Is(err, target)
}
