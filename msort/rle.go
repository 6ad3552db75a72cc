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

// Run is a maximal contiguous block of equal values in the original
// array: Count repetitions of Value, Count >= 1.
type Run struct {
	Value int32
	Count int
}

// Compress run-length encodes data in one linear pass. A run only ends
// when the value changes, so no two adjacent runs share a value; that
// invariant is what makes sort-runs-then-decompress globally stable.
//
// Worst case (all values unique) this allocates len(data) runs.
func Compress(data []int32) []Run {
	if len(data) == 0 {
		return nil
	}

	runs := make([]Run, 0, len(data))
	runs = append(runs, Run{Value: data[0], Count: 1})
	for _, v := range data[1:] {
		if last := &runs[len(runs)-1]; v == last.Value {
			last.Count++
		} else {
			runs = append(runs, Run{Value: v, Count: 1})
		}
	}
	return runs
}

// Decompress expands runs into out in order, emitting each run's value
// Count times. out must hold the total element count of runs.
// Decompress(Compress(a), a) leaves a unchanged.
func Decompress(runs []Run, out []int32) {
	k := 0
	for _, r := range runs {
		for c := 0; c < r.Count; c++ {
			out[k] = r.Value
			k++
		}
	}
}

// AdaptiveSort sorts data in place like Sort, but first run-length
// encodes it. When the run count is below CompressionCutoff * n the run
// table is sorted by value instead of the raw elements; on
// duplicate-heavy input this shrinks the n log n term to the number of
// distinct runs. Otherwise the compression overhead was not justified
// and the plain engine sorts the original array.
func (e *Engine) AdaptiveSort(data []int32) {
	n := len(data)
	if n <= 1 {
		return
	}

	runs := Compress(data)
	if float64(len(runs)) < e.cfg.CompressionCutoff*float64(n) {
		e.sortRuns(runs)
		Decompress(runs, data)
		return
	}

	e.Sort(data)
}

// sortRuns sorts the run table by value with the same hybrid shape as
// the element engine: insertion base case, early termination, stable
// copy-back merge. Runs are atomic units; comparisons look only at
// Value.
func (e *Engine) sortRuns(runs []Run) {
	if len(runs) <= 1 {
		return
	}
	scratch := make([]Run, len(runs))
	e.sortRunsRange(runs, scratch)
}

func (e *Engine) sortRunsRange(a, scratch []Run) {
	n := len(a)
	if n <= e.cfg.InsertionThreshold {
		insertionSortRuns(a)
		return
	}

	mid := n / 2
	e.sortRunsRange(a[:mid], scratch[:mid])
	e.sortRunsRange(a[mid:], scratch[mid:])

	if a[mid-1].Value <= a[mid].Value {
		return
	}

	mergeRuns(a, scratch, mid)
	copy(a, scratch)
}

// mergeRuns merges the sorted halves src[:mid] and src[mid:] into dst.
// <= keeps the left run on ties.
func mergeRuns(src, dst []Run, mid int) {
	n := len(src)
	i, j, k := 0, mid, 0

	for i < mid && j < n {
		if src[i].Value <= src[j].Value {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}

	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:])
}

// insertionSortRuns sorts a small run table in place, stable on Value.
func insertionSortRuns(runs []Run) {
	for i := 1; i < len(runs); i++ {
		key := runs[i]
		j := i - 1
		for j >= 0 && runs[j].Value > key.Value {
			runs[j+1] = runs[j]
			j--
		}
		runs[j+1] = key
	}
}
