// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
//
// The outcome of a Future can be read as a Go (value, error) pair with Get, or as a results.Result with
// Result and Poll.
package futures

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/abevier/maybe/option"
	"github.com/abevier/maybe/results"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convience function.
// Once a future has been created it can be completed exactly once.  The first completion value
// wins and all other completions are silently ignored.
//
// The functions Complete, Cancel and Fail will all complete a future.
// Complete is used in the success case
// Fail is used for signaling that the Future failed with an error
// Cancel is used to signal that the asynchronous computation was canceled
//
// Get and Result are used to extract the outcome of the Future.  If the future has not been
// completed they block until the future completes or until the context is canceled.
// They can be called by multiple go routines simultaneously and all receive the same outcome.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	result results.Result[T, error]
}

// New creates a new uncompleted Future that will eventually contain a value of type T which can be anything.
// This future must be manually completed by calling Complete, Fail, or Cancel
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a new uncompleted Future that will eventually contain the return value of the provided function.
// The provided function is run asynchronously when this function is invoked.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		f.internalComplete(results.New(do()))
	}()

	return f
}

// Complete completes this Future with the provided value.  If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(results.Ok[T, error](value))
}

// Cancel completes this Future with the ErrCanceled error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail completes this Future with the provided error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(results.Err[T](err))
}

func (f *Future[T]) internalComplete(r results.Result[T, error]) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.result = r
		close(f.completed)
	}
}

// Get retrieves the value of this Future.  If the future is not yet completed this call will block until the future is
// completed or until the provided context is done, in which case the context's error is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	return results.Unpack(f.Result(ctx))
}

// Result is like Get but reports the outcome as a Result.  A context that ends first yields Err(ctx.Err()).
func (f *Future[T]) Result(ctx context.Context) results.Result[T, error] {
	select {
	case <-f.completed:
		return f.result
	case <-ctx.Done():
		return results.Err[T](ctx.Err())
	}
}

// Poll returns the outcome of this Future without blocking, or None if it has not been completed yet.
func (f *Future[T]) Poll() option.Option[results.Result[T, error]] {
	select {
	case <-f.completed:
		return option.Some(f.result)
	default:
		return option.None[results.Result[T, error]]()
	}
}
