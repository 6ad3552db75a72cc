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

// blockedMerge bounds the merge working set: the interleave consumes at
// most one block-sized window of each input run before recomputing its
// bounds. The comparison sequence is unchanged, so output is identical
// to scalarMerge for any input.
type blockedMerge struct {
	block int
}

func (m blockedMerge) merge(src, dst []int32, mid int) {
	n := len(src)

	// Too small for blocking to pay off.
	if n < m.block {
		scalarMerge{}.merge(src, dst, mid)
		return
	}

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		iEnd := min(i+m.block, mid)
		jEnd := min(j+m.block, n)

		for i < iEnd && j < jEnd {
			if src[i] <= src[j] {
				dst[k] = src[i]
				i++
			} else {
				dst[k] = src[j]
				j++
			}
			k++
		}
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
