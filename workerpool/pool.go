// Copyright 2025 The go-mergekit Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a bounded fork-join pool for recursive
// divide-and-conquer work. Unlike unbounded goroutine spawning, a Pool
// caps the number of concurrently running forked tasks; when no slot is
// available, work runs inline on the calling goroutine.
//
// The inline fallback makes recursive forking deadlock-free: a task that
// forks children while holding a slot can never wait on work that is
// stuck behind it in a queue, because there is no queue.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//
//	pool.Fork(
//	    func() { sortHalf(data[:mid]) },
//	    func() { sortHalf(data[mid:]) },
//	)
package workerpool

import (
	"runtime"
	"sync"
)

// Pool bounds the number of concurrently executing forked tasks.
// A Pool holds no goroutines while idle and needs no shutdown.
type Pool struct {
	numWorkers int
	slots      chan struct{}
}

// New creates a pool allowing up to numWorkers concurrently forked
// tasks. If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		numWorkers: numWorkers,
		slots:      make(chan struct{}, numWorkers),
	}
}

// NumWorkers returns the concurrency bound of the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Fork runs left and right, returning only after both complete.
//
// When a slot is free, left runs on its own goroutine while right runs
// on the calling goroutine. When the pool is saturated, both run
// sequentially inline. Fork never blocks waiting for a slot.
func (p *Pool) Fork(left, right func()) {
	select {
	case p.slots <- struct{}{}:
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-p.slots }()
			left()
		}()
		right()
		wg.Wait()
	default:
		left()
		right()
	}
}
