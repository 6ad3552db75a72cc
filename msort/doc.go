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

// Package msort provides hardware-aware variants of merge sort over
// 32-bit signed integers. All variants share one contract: in-place,
// ascending, stable, using exactly one scratch buffer of the input
// length.
//
// # Algorithm
//
// The engine is a hybrid merge sort:
//   - Insertion sort below a small threshold (low constant overhead,
//     near-perfect spatial locality)
//   - Recursive halving with an O(1) early-termination check that skips
//     a merge when the two halves are already globally ordered
//   - A pluggable merge kernel selected at construction time: scalar,
//     cache-blocked, lane-chunked, or branchless with read-ahead
//   - Either copy-back or ping-pong scratch-buffer discipline
//
// All merge kernels produce byte-identical output; they differ only in
// constant-factor performance.
//
// # Example Usage
//
//	import "github.com/mergekit/go-mergekit/msort"
//
//	func Process(data []int32) {
//	    msort.Sort(data) // in-place ascending stable sort
//	}
//
//	// Explicit tuning:
//	eng := msort.New(msort.CacheConfig())
//	eng.Sort(data)
//
// # Parallelism
//
// Setting Config.Pool enables fork-join sorting of independent subtrees
// for ranges at or above Config.ParallelThreshold, bounded by
// Config.ForkDepthCap levels of forking. Sibling tasks operate on
// strictly disjoint index ranges, so no locking is involved.
//
// # Duplicate-heavy input
//
// AdaptiveSort run-length encodes the input first and sorts the run
// table instead when the compression ratio is favorable, falling back
// to the plain engine otherwise.
package msort
