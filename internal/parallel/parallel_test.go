package parallel

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestMap_VisitsEveryIndex(t *testing.T) {
	for _, workers := range []int{-1, 0, 1, 4} {
		const n = 100
		visited := make([]int32, n)
		Map(context.Background(), n, workers, func(i int) {
			atomic.AddInt32(&visited[i], 1)
		})
		for i, v := range visited {
			if v != 1 {
				t.Errorf("workers=%d: index %d visited %d times, want 1", workers, i, v)
			}
		}
	}
}

func TestMap_ZeroItems(t *testing.T) {
	called := false
	Map(context.Background(), 0, 4, func(int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestMap_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var count atomic.Int32
	Map(ctx, 1000, 1, func(i int) {
		if count.Add(1) == 10 {
			cancel()
		}
	})
	if got := count.Load(); got >= 1000 {
		t.Errorf("processed %d items, want early stop after cancellation", got)
	}
}

func TestMap_NilContext(t *testing.T) {
	var count atomic.Int32
	Map(nil, 10, 2, func(int) { count.Add(1) })
	if count.Load() != 10 {
		t.Errorf("processed %d items, want 10", count.Load())
	}
}
