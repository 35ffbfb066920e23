// Package equal compares values of a comparable type parameter without panicking.
package equal

// Values reports whether a == b.
//
// A comparable constraint admits interface types, and == on two interfaces holding the same
// uncomparable dynamic type (a slice backed error, for instance) panics at run time.
// Such values are reported as not equal.
func Values[T comparable](a, b T) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = false
		}
	}()

	return a == b
}
