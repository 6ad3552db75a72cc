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

// Parallel dispatch for the recursive engine.
//
// Forked siblings sort strictly disjoint subslices of both the primary
// array and the scratch buffer, so their read/write footprints never
// overlap and no synchronization beyond the join is needed. The parent
// does not touch the mid boundary until both children have returned.

// parallelEligible reports whether the halves of a subrange of length n
// at the given fork depth should be sorted as independent tasks.
// Forking stops below ParallelThreshold (spawn overhead would dominate)
// and at ForkDepthCap (bounds fan-out to roughly 2^cap tasks).
func (e *Engine) parallelEligible(n, depth int) bool {
	return e.cfg.Pool != nil &&
		n >= e.cfg.ParallelThreshold &&
		depth < e.cfg.ForkDepthCap
}
