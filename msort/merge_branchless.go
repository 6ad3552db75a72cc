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

import "github.com/mergekit/go-mergekit/vecops"

// branchlessMerge replaces the take-left/take-right branch with a 0/1
// predicate that selects the emitted value by bitmask and advances both
// cursors arithmetically, so the interleave loop carries no
// data-dependent branch to mispredict. Read-ahead hints are issued dist
// elements ahead of both read cursors and the write cursor.
//
// The bitmask select is exact for the full int32 range; an a+t*(b-a)
// style select would overflow on mixed extremes.
type branchlessMerge struct {
	dist int
}

func (m branchlessMerge) merge(src, dst []int32, mid int) {
	n := len(src)
	i, j, k := 0, mid, 0

	for i < mid && j < n {
		if m.dist > 0 {
			vecops.Prefetch(src, i+m.dist)
			vecops.Prefetch(src, j+m.dist)
			vecops.Prefetch(dst, k+m.dist)
		}

		ai, aj := src[i], src[j]

		// t is 1 when taking left, 0 when taking right; sel widens it
		// to an all-ones/all-zeros mask.
		t := b2i(ai <= aj)
		sel := -int32(t)
		dst[k] = ai&sel | aj&^sel
		k++
		i += t
		j += 1 - t
	}

	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < n {
		dst[k] = src[j]
		j++
		k++
	}
}

// b2i compiles to a flag materialization (SETcc/CSET), not a branch.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
