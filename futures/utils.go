package futures

import (
	"context"

	"github.com/abevier/maybe/results"
	"golang.org/x/sync/errgroup"
)

// ResolveAll waits for all of the provided Futures to complete and returns a results.Result for each
// future at the index corresponding to the provided slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]results.Result[T, error], error) {
	res := make([]results.Result[T, error], 0, len(fs))

	for _, f := range fs {
		res = append(res, f.Result(ctx))
		// check for error at the end of the loop to avoid the race of cancelling while Getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}

// Collect waits for all of the provided Futures concurrently and returns their values in order.
// The first Future to fail stops the wait and its error becomes the Err of the returned Result.
func Collect[T any](ctx context.Context, fs []*Future[T]) results.Result[[]T, error] {
	vals := make([]T, len(fs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, f := range fs {
		i, f := i, f
		eg.Go(func() error {
			v, err := f.Get(ctx)
			if err != nil {
				return err
			}
			vals[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results.Err[[]T](err)
	}

	return results.Ok[[]T, error](vals)
}
