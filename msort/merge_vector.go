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

// vectorMerge keeps the scalar interleave (data-dependent comparisons
// do not vectorize without a merge network) but moves the contiguous
// leftovers of the exhausted run in register-width chunks, with a
// single-element tail. Purely a bulk-move optimization; merge order and
// stability are unchanged.
type vectorMerge struct{}

func (vectorMerge) merge(src, dst []int32, mid int) {
	n := len(src)
	lanes := vecops.Int32Lanes()
	i, j, k := 0, mid, 0

	for i < mid && j < n {
		if src[i] <= src[j] {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}

	// Leftover left run, chunk-wise.
	for mid-i >= lanes {
		copy(dst[k:k+lanes], src[i:i+lanes])
		i += lanes
		k += lanes
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}

	// Leftover right run, chunk-wise.
	for n-j >= lanes {
		copy(dst[k:k+lanes], src[j:j+lanes])
		j += lanes
		k += lanes
	}
	for j < n {
		dst[k] = src[j]
		j++
		k++
	}
}
