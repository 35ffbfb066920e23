//go:build !maybe_nocheck

package results

import "github.com/abevier/maybe/internal/equal"

// Check reports whether r is Ok and its value equals other.
func Check[T comparable, E any](r Result[T, E], other T) bool {
	return r.ok && equal.Values(r.val, other)
}

// CheckErr reports whether r is Err and its error equals other.
// Errors backed by uncomparable types, such as slices, never compare equal.
func CheckErr[T any, E comparable](r Result[T, E], other E) bool {
	return !r.ok && equal.Values(r.err, other)
}
