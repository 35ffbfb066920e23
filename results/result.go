// Package results provides Result, the outcome of an operation that either succeeded with a value of type T
// or failed with an error of type E.
//
// A Result is an immutable value.  The error type is a type parameter and does not have to implement the
// error interface, although New and Unpack bridge Result[T, error] to the usual Go (T, error) pair.
//
// The maybe_bare build tag leaves out the combinators and maybe_nocheck leaves out Check and CheckErr.
package results

import "fmt"

// Result is either Ok(value) or Err(err).
// The payload of the inactive variant is always the zero value, so Results of comparable T and E
// can be compared with ==.
//
// The zero value of a Result is Err holding the zero value of E.
type Result[T any, E any] struct {
	val T
	err E
	ok  bool
}

// Ok creates a successful Result holding v.
func Ok[T any, E any](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Err creates a failed Result holding err.
func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// New converts a Go (value, error) pair into a Result.  A nil err yields Ok(val) and any other err yields Err(err),
// in which case val is discarded.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](val)
}

// Unpack converts r back into a Go (value, error) pair.
func Unpack[T any](r Result[T, error]) (T, error) {
	return r.val, r.err
}

// Get destructures the Result.  It returns the value, the error and true if r is Ok.
// Whichever of the value and the error belongs to the inactive variant is the zero value.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.val, r.err, r.ok
}

// Match calls onOk with the value if r is Ok, otherwise it calls onErr with the error.
func Match[T any, E any, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
