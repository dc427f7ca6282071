package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	if results == nil {
		t.Fatal("expected non-nil slice for empty items")
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}

func TestRun_PreservesOrderWithMixedOutcomes(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")
	items := []string{"postgres", "mongo", "todo-api"}
	delays := map[string]time.Duration{
		"postgres": 30 * time.Millisecond,
		"mongo":    5 * time.Millisecond,
		"todo-api": 15 * time.Millisecond,
	}

	results := fanout.Run(context.Background(), len(items), items, func(_ context.Context, name string) (string, error) {
		time.Sleep(delays[name])
		if name == "mongo" {
			return "", errDown
		}
		return name + ":ok", nil
	})

	if results[0].Value != "postgres:ok" || results[0].Err != nil {
		t.Errorf("results[0] = %+v, want postgres:ok", results[0])
	}
	if !errors.Is(results[1].Err, errDown) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errDown)
	}
	if results[2].Value != "todo-api:ok" || results[2].Err != nil {
		t.Errorf("results[2] = %+v, want todo-api:ok", results[2])
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3

	var peak, active atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > maxWorkers {
		t.Fatalf("peak concurrency %d exceeded maxWorkers %d", p, maxWorkers)
	}
}

func TestRun_NonPositiveWorkersRunsSerially(t *testing.T) {
	t.Parallel()

	var peak, active atomic.Int32
	items := []int{1, 2, 3, 4}

	results := fanout.Run(context.Background(), 0, items, func(_ context.Context, n int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		if cur > peak.Load() {
			peak.Store(cur)
		}
		time.Sleep(2 * time.Millisecond)
		return n * n, nil
	})

	if p := peak.Load(); p != 1 {
		t.Errorf("peak concurrency = %d, want 1", p)
	}
	if results[3].Value != 16 {
		t.Errorf("results[3].Value = %d, want 16", results[3].Value)
	}
}

func TestRun_CanceledContextSkipsWaitingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	started := make(chan struct{}, 4)
	release := make(chan struct{})

	// The first call holds the only slot until released, so the other items
	// are still waiting when ctx is canceled.
	hold := func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return n, nil
	}

	done := make(chan []fanout.Result[int])
	go func() {
		done <- fanout.Run(ctx, 1, []int{0, 1, 2, 3}, hold)
	}()

	<-started
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(release)
	results := <-done

	var canceled int
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected at least one result with context.Canceled")
	}
	if int(calls.Load())+canceled != len(results) {
		t.Errorf("calls (%d) + canceled (%d) != %d items", calls.Load(), canceled, len(results))
	}
}
