// Package fanout applies a function to a slice of items with bounded
// concurrency and keeps the outcomes in input order. The readiness probe uses
// it to run health checks side by side.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item, at most maxWorkers at a time, and returns when
// every call has finished. results[i] always belongs to items[i]; a
// maxWorkers below 1 runs the items one by one.
//
// An item still waiting for a slot when ctx ends records ctx.Err() and fn is
// not called for it. Running calls are left to watch ctx themselves.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}
	wg.Wait()

	return results
}
