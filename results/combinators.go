//go:build !maybe_bare

package results

import "log"

const unwrapErrMsg = "called `Result.Unwrap()` on an `Err` value"

// Map transforms the value of an Ok with f.  An Err is passed through with its error untouched.
func Map[T any, U any, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.val))
	}
	return Err[U](r.err)
}

// AndThen calls f with the value of an Ok and returns its result.  An Err short circuits and f is not called.
func AndThen[T any, U any, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.val)
	}
	return Err[U](r.err)
}

// OrElse returns r if it is Ok, otherwise the Result that f produces from the error.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// Unwrap returns the value of an Ok.
// Calling Unwrap on an Err is a programming error: the message is logged and Unwrap panics.
func (r Result[T, E]) Unwrap() T {
	if r.ok {
		return r.val
	}
	log.Panic(unwrapErrMsg)
	return r.val
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.val
	}
	return def
}

// UnwrapOrElse returns the value of an Ok, or recovers a value from the error with f.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.val
	}
	return f(r.err)
}

// Expect returns the value of an Ok and panics with msg, formatted by fmt.Sprint, if r is an Err.
func (r Result[T, E]) Expect(msg any) T {
	if r.ok {
		return r.val
	}
	log.Panic(msg)
	return r.val
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}
