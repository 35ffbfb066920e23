//go:build !maybe_bare && !maybe_nocheck

package futures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abevier/maybe/results"
	"github.com/stretchr/testify/require"
)

var (
	ErrTest = errors.New("test error")
)

func TestFirstCompletionWins(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	req.True(f.Poll().IsNone())

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Fail(ErrTest)
	}()

	req.Equal(results.Ok[int, error](1), f.Result(context.Background()))

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(1, v)

	req.True(results.Check(f.Poll().Unwrap(), 1))
}

func TestFromFunc(t *testing.T) {
	req := require.New(t)

	f := FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})
	req.Equal(42, f.Result(context.Background()).Unwrap())

	f = FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 7, ErrTest
	})

	r := f.Result(context.Background())
	req.True(results.CheckErr(r, ErrTest))

	// the value returned alongside an error is dropped
	v, err := f.Get(context.Background())
	req.ErrorIs(err, ErrTest)
	req.Zero(v)
}

func TestConcurrentCompletion(t *testing.T) {
	tests := []struct {
		name     string
		complete func(f *Future[int])
		check    func(req *require.Assertions, r results.Result[int, error])
	}{
		{
			name:     "complete",
			complete: func(f *Future[int]) { f.Complete(42) },
			check: func(req *require.Assertions, r results.Result[int, error]) {
				req.True(results.Check(r, 42))
			},
		},
		{
			name:     "cancel",
			complete: func(f *Future[int]) { f.Cancel() },
			check: func(req *require.Assertions, r results.Result[int, error]) {
				req.True(results.CheckErr(r, ErrCanceled))
			},
		},
		{
			name:     "fail",
			complete: func(f *Future[int]) { f.Fail(ErrTest) },
			check: func(req *require.Assertions, r results.Result[int, error]) {
				req.True(results.CheckErr(r, ErrTest))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			f := New[int]()
			for i := 0; i <= 1000; i++ {
				go func() {
					time.Sleep(10 * time.Millisecond)
					tt.complete(f)
				}()
			}

			tt.check(req, f.Result(context.Background()))
			tt.check(req, f.Poll().Unwrap())
		})
	}
}

func TestContextDone(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(ctx)
	req.ErrorIs(err, context.Canceled)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	r := f.Result(ctx)
	req.True(results.CheckErr(r, context.DeadlineExceeded))

	// an abandoned wait does not complete the future
	req.True(f.Poll().IsNone())
}
