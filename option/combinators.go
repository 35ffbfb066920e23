//go:build !maybe_bare

package option

import "log"

const unwrapNoneMsg = "called `Option.Unwrap()` on a `None` value"

// Map transforms the value of a Some with f.  f is not called for None.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// AndThen calls f with the value of a Some and returns its result.  None is returned unchanged.
func AndThen[T any, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}

// OrElse returns o if it is Some, otherwise the Option returned by f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Unwrap returns the contained value.
// Calling Unwrap on None is a programming error: the message is logged and Unwrap panics.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	log.Panic(unwrapNoneMsg)
	return o.value
}

// UnwrapOr returns the contained value or def if o is None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or the result of f if o is None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.value
	}
	return f()
}

// Expect returns the contained value and panics with msg if o is None.
// msg is formatted the way fmt.Sprint formats it.
func (o Option[T]) Expect(msg any) T {
	if o.some {
		return o.value
	}
	log.Panic(msg)
	return o.value
}

// Filter returns o if it is Some and keep reports true for its value, otherwise None.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.some && keep(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// FromPtr converts a pointer into an Option: nil becomes None, anything else Some(*p).
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk converts the result of a comma-ok expression into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

// Ptr returns a pointer to a copy of the contained value, or nil for None.
func (o Option[T]) Ptr() *T {
	if o.some {
		v := o.value
		return &v
	}
	return nil
}
