// Copyright 2025 go-mergekit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msort

import (
	"github.com/mergekit/go-mergekit/vecops"
	"github.com/mergekit/go-mergekit/workerpool"
)

// Buffering selects the scratch-buffer discipline of the engine.
type Buffering int

const (
	// CopyBack merges from the primary array into scratch, then block
	// copies the merged range back. One extra O(size) copy per merge,
	// simplest correctness argument.
	CopyBack Buffering = iota

	// PingPong alternates which buffer is the merge destination per
	// recursion level, eliminating the copy-back. The buffer holding
	// valid data is tracked explicitly through the recursion; the final
	// result is always in the primary array.
	PingPong
)

// Default tuning values. See Config for what each controls.
const (
	// DefaultInsertionThreshold is 64 elements = 256 bytes of int32,
	// small enough to stay resident in L1 during the base case.
	DefaultInsertionThreshold = 64

	// DefaultBlockSize is the merge range size, in elements, at which
	// StrategyBlocked starts consuming its input runs block-wise.
	DefaultBlockSize = 8192

	// DefaultPrefetchDistance is how far ahead of each cursor
	// StrategyBranchless issues read-ahead hints.
	DefaultPrefetchDistance = 32

	// DefaultParallelThreshold is the subrange length below which
	// forking a subtree is not worth the spawn overhead.
	DefaultParallelThreshold = 100000

	// DefaultForkDepthCap bounds fork fan-out to roughly 2^cap tasks.
	DefaultForkDepthCap = 4

	// DefaultCompressionCutoff: AdaptiveSort takes the run-length path
	// when runs/n falls below this ratio.
	DefaultCompressionCutoff = 0.8
)

// Config carries the tuning parameters of an Engine. The zero value
// selects the defaults; use New to construct an Engine from it.
type Config struct {
	// Strategy selects the merge kernel. Default StrategyScalar.
	Strategy Strategy

	// Buffering selects the scratch-buffer discipline. Default CopyBack.
	Buffering Buffering

	// InsertionThreshold is the subrange length at or below which the
	// recursion switches to insertion sort. Clamped to >= 2.
	InsertionThreshold int

	// BlockSize is the working-set bound for StrategyBlocked, in
	// elements.
	BlockSize int

	// PrefetchDistance is the read-ahead distance for
	// StrategyBranchless, in elements. Zero disables hints.
	PrefetchDistance int

	// Pool, when non-nil, enables fork-join sorting of independent
	// subtrees.
	Pool *workerpool.Pool

	// ParallelThreshold is the minimum subrange length for forking.
	ParallelThreshold int

	// ForkDepthCap is the recursion depth below which forking is
	// permitted.
	ForkDepthCap int

	// CompressionCutoff is the runs/n ratio below which AdaptiveSort
	// sorts the run table instead of the raw elements.
	CompressionCutoff float64
}

// DefaultConfig returns the tuning used by the package-level Sort:
// copy-back scalar merge with the default thresholds.
func DefaultConfig() Config {
	return Config{
		Strategy:           StrategyScalar,
		Buffering:          CopyBack,
		InsertionThreshold: DefaultInsertionThreshold,
		BlockSize:          DefaultBlockSize,
		PrefetchDistance:   DefaultPrefetchDistance,
		ParallelThreshold:  DefaultParallelThreshold,
		ForkDepthCap:       DefaultForkDepthCap,
		CompressionCutoff:  DefaultCompressionCutoff,
	}
}

// CacheConfig returns a cache-oriented tuning: ping-pong buffering with
// a block-bounded merge working set.
func CacheConfig() Config {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyBlocked
	cfg.Buffering = PingPong
	return cfg
}

// SIMDConfig returns a tuning that moves leftover runs and write-backs
// in register-width chunks. The smaller base case keeps more of the
// work in the chunked merge path.
func SIMDConfig() Config {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyVector
	cfg.InsertionThreshold = 32
	return cfg
}

// BranchlessConfig returns a tuning that avoids the take-left/take-right
// branch during the interleave and issues read-ahead hints.
func BranchlessConfig() Config {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyBranchless
	cfg.InsertionThreshold = 32
	return cfg
}

// Engine is a tuned merge-sort instance. Engines are immutable after
// New and safe for concurrent use by multiple goroutines; each Sort
// call owns its scratch buffer exclusively.
type Engine struct {
	cfg   Config
	merge mergeStrategy
}

// New builds an Engine from cfg, filling in defaults for zero fields.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.InsertionThreshold == 0 {
		cfg.InsertionThreshold = def.InsertionThreshold
	} else if cfg.InsertionThreshold < 2 {
		cfg.InsertionThreshold = 2
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = def.BlockSize
	}
	if cfg.ParallelThreshold <= 0 {
		cfg.ParallelThreshold = def.ParallelThreshold
	}
	if cfg.ForkDepthCap <= 0 {
		cfg.ForkDepthCap = def.ForkDepthCap
	}
	if cfg.CompressionCutoff <= 0 {
		cfg.CompressionCutoff = def.CompressionCutoff
	}

	e := &Engine{cfg: cfg}
	switch cfg.Strategy {
	case StrategyBlocked:
		e.merge = blockedMerge{block: cfg.BlockSize}
	case StrategyVector:
		e.merge = vectorMerge{}
	case StrategyBranchless:
		e.merge = branchlessMerge{dist: cfg.PrefetchDistance}
	default:
		e.merge = scalarMerge{}
	}
	return e
}

// defaultEngine backs the package-level Sort.
var defaultEngine = New(DefaultConfig())

// Sort sorts data in place, ascending and stable, using the default
// engine tuning.
func Sort(data []int32) {
	defaultEngine.Sort(data)
}

// Sort sorts data in place, ascending and stable.
//
// One scratch buffer of len(data) is allocated per call and owned by
// the call tree for its duration. Exhausting memory for it panics the
// runtime; there is no degraded mode, since every merge kernel depends
// on the buffer.
func (e *Engine) Sort(data []int32) {
	if len(data) <= 1 {
		return
	}
	scratch := make([]int32, len(data))
	e.sortRange(data, scratch, false, 0)
}

// sortRange sorts a, using scratch as the secondary buffer. a and
// scratch always have equal length and refer to the same index range of
// the top-level buffers, so sibling calls never overlap.
//
// Under PingPong, toScratch says which buffer must hold the sorted
// result on return; the flag is tracked explicitly rather than derived
// from recursion depth. Under CopyBack, toScratch stays false and the
// result is always in a.
func (e *Engine) sortRange(a, scratch []int32, toScratch bool, depth int) {
	n := len(a)

	// Base case: insertion sort directly in the designated buffer.
	if n <= e.cfg.InsertionThreshold {
		if toScratch {
			copy(scratch, a)
			insertionSort(scratch)
		} else {
			insertionSort(a)
		}
		return
	}

	mid := n / 2
	childToScratch := toScratch
	if e.cfg.Buffering == PingPong {
		childToScratch = !toScratch
	}

	if e.parallelEligible(n, depth) {
		e.cfg.Pool.Fork(
			func() { e.sortRange(a[:mid], scratch[:mid], childToScratch, depth+1) },
			func() { e.sortRange(a[mid:], scratch[mid:], childToScratch, depth+1) },
		)
	} else {
		e.sortRange(a[:mid], scratch[:mid], childToScratch, depth)
		e.sortRange(a[mid:], scratch[mid:], childToScratch, depth)
	}

	// Both halves are sorted; locate them.
	src, dst := a, scratch
	if e.cfg.Buffering == PingPong && !toScratch {
		src, dst = scratch, a
	}

	// Early termination: left max <= right min means the concatenation
	// is already sorted. The result must still land in the designated
	// buffer, so ping-pong pays a block copy instead of a merge.
	if alreadyOrdered(src, mid) {
		if e.cfg.Buffering == PingPong {
			vecops.CopyBlock(dst, src)
		}
		return
	}

	e.merge.merge(src, dst, mid)

	if e.cfg.Buffering == CopyBack {
		// Bulk write-back of the merged range into the primary array.
		vecops.CopyBlock(a, scratch)
	}
}

// alreadyOrdered is the O(1) early-termination check for two adjacent
// sorted runs src[:mid] and src[mid:].
func alreadyOrdered(src []int32, mid int) bool {
	return src[mid-1] <= src[mid]
}
