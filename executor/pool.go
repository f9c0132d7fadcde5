package executor

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool fans work out across a fixed number of goroutines using a
// shared atomic cursor: each goroutine repeatedly claims the next
// unclaimed index until none remain. This load-balances naturally
// across items of uneven cost, the same goal the teacher's per-worker
// queue plus work-stealing design solves for a persistent pool — here
// simplified to a single run-to-completion call, since the builder only
// ever needs one bounded fan-out per build, not a long-lived pool.
type WorkerPool struct {
	workers int
}

// NewWorkerPool returns a WorkerPool with the given goroutine count. A
// count <= 0 uses runtime.GOMAXPROCS(0).
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool{workers: workers}
}

// Run fans f out across the pool's goroutines, blocking until every
// index in [0, n) has been processed.
func (p *WorkerPool) Run(n int, f func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := cursor.Add(1) - 1
				if i >= int64(n) {
					return
				}
				f(int(i))
			}
		}()
	}
	wg.Wait()
}
