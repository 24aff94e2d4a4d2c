// Package parallel provides the bounded parallel map used for
// nearest-neighbour edge construction. It is a fan-out/join primitive, not
// a general-purpose pool: each invocation starts its workers, drains the
// index range, and joins before returning.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Map invokes fn(i) for every i in [0, n), spread across workers
// goroutines. Callers guarantee that distinct indices touch distinct data;
// Map adds no locking of its own.
//
// workers == 0 uses runtime.GOMAXPROCS(0); workers < 0 runs unbounded with
// one goroutine per index. A cancelled ctx stops handing out further
// indices; fn calls already in flight run to completion.
func Map(ctx context.Context, n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if workers < 0 {
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			if ctx.Err() != nil {
				break
			}
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				fn(i)
			}(i)
		}
		wg.Wait()
		return
	}

	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		indices <- i
	}
	close(indices)
	wg.Wait()
}
