// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for the fxp kernels.
//
// The kernels themselves are single-threaded. A Pool only spreads independent
// work across goroutines: the ten per-class distance scans of a digit
// classification, the queries of a batch, or the angles of a CORDIC sweep.
// A nil *Pool is valid and runs everything on the calling goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(queries), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        labels[i], errs[i] = c.Classify(queries[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool

	// sendMu is held shared while a call enqueues work and exclusively by
	// Close, so workC is never closed under a sender.
	sendMu sync.RWMutex
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes. Calling Close multiple
// times is safe, and so is calling it while other goroutines run loops on
// the pool: a loop that has started enqueuing finishes on the workers, and
// later loops run sequentially.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.sendMu.Lock()
		p.closed.Store(true)
		close(p.workC)
		p.sendMu.Unlock()
	})
}

// acquire reserves the pool for enqueuing. It reports false, holding
// nothing, when the pool is closed. Must not be called from a worker.
func (p *Pool) acquire() bool {
	p.sendMu.RLock()
	if p.closed.Load() {
		p.sendMu.RUnlock()
		return false
	}
	return true
}

// sequential reports whether work must run on the calling goroutine.
func (p *Pool) sequential() bool {
	return p == nil || p.closed.Load()
}

// ParallelFor calls fn over [0, n) split into contiguous ranges, one per
// worker, and blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	if !p.acquire() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.sendMu.RUnlock()
	wg.Wait()
}

// ParallelForAtomic calls fn once for each index in [0, n), handing indices
// out through an atomic counter so uneven items balance across workers. It
// blocks until all indices are done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.sequential() {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	if !p.acquire() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	p.sendMu.RUnlock()
	wg.Wait()
}
