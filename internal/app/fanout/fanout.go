// Package fanout runs a function across a slice of items with a bounded number
// of concurrent workers, preserving input order in results. The validation
// service uses it for bulk runs.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrPanic wraps a panic recovered from fn so one bad item cannot take the
// whole batch down.
var ErrPanic = errors.New("fanout: panic in worker")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and returns one Result per item, in input order. A maxWorkers
// below 1 is treated as 1.
//
// Failures are per item: an error or panic from fn never cancels its
// siblings. An item that only gets a worker after ctx is done records
// ctx.Err() without calling fn. Items already running are left to honor ctx
// themselves.
//
// Run blocks until every item is settled. If items is empty, it returns an
// empty non-nil slice immediately.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			results[i] = call(ctx, item, fn)
			return nil
		})
	}

	_ = g.Wait() // workers never return errors; failures live in results
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, v)}
		}
	}()
	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
