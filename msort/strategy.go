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

// Strategy selects the merge kernel used to combine two sorted runs.
// All kernels produce byte-identical output; they differ only in
// constant-factor performance.
type Strategy int

const (
	// StrategyScalar is the classic two-pointer interleave with
	// trailing copy loops.
	StrategyScalar Strategy = iota

	// StrategyBlocked consumes the input runs in fixed-size sub-blocks
	// for merge ranges at or above Config.BlockSize, bounding the
	// resident working set. Below the threshold it is plain scalar.
	StrategyBlocked

	// StrategyVector moves leftover runs in register-width chunks once
	// one run is exhausted. The interleave phase is plain scalar.
	StrategyVector

	// StrategyBranchless replaces the take-left/take-right branch with
	// arithmetic selection and issues read-ahead hints a fixed distance
	// ahead of the cursors.
	StrategyBranchless
)

// String returns the name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyBlocked:
		return "blocked"
	case StrategyVector:
		return "vector"
	case StrategyBranchless:
		return "branchless"
	default:
		return "unknown"
	}
}

// mergeStrategy combines the two sorted runs src[:mid] and src[mid:]
// into dst, which has the same length as src. Kernels must be stable:
// on equal keys the element from the left run is emitted first. They
// write dst only; the caller owns any write-back.
type mergeStrategy interface {
	merge(src, dst []int32, mid int)
}
