// Package option provides Option, a value that is either Some value of type T or None.
//
// An Option is an immutable value.  Every operation takes the Option by value and returns a new one,
// so an Option can be copied and shared freely.  The zero value of an Option is None.
//
// Absence is an ordinary value and is handled with the combinators (Map, AndThen, OrElse, Filter, ...).
// Unwrap and Expect treat None as a programming error and panic.
//
// Building with the maybe_bare tag leaves out the combinators, so only Some, None, Get, Match and String remain.
// The maybe_nocheck tag leaves out Check.
package option

import "fmt"

// Option is either Some(value) or None.
// A None never holds a payload, so two Options of a comparable T can be compared with ==.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get destructures the Option.  It returns the contained value and true for Some,
// or the zero value of T and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Match calls onSome with the contained value if o is Some, otherwise it calls onNone.
// Exactly one of the functions is invoked.
func Match[T any, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
