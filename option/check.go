//go:build !maybe_nocheck

package option

import "github.com/abevier/maybe/internal/equal"

// Check reports whether o is Some and its value equals other.
// Values that cannot be compared at run time are reported as not equal.
func Check[T comparable](o Option[T], other T) bool {
	return o.some && equal.Values(o.value, other)
}
