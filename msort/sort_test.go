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
	"math"
	"math/rand"
	"slices"
	"testing"
)

// variantConfigs covers every strategy and both buffer disciplines.
// The low-threshold entries force full merge recursion even on small
// inputs that would otherwise hit the insertion base case.
func variantConfigs() map[string]Config {
	deep := func(cfg Config) Config {
		cfg.InsertionThreshold = 2
		return cfg
	}
	return map[string]Config{
		"default":         DefaultConfig(),
		"cache":           CacheConfig(),
		"simd":            SIMDConfig(),
		"branchless":      BranchlessConfig(),
		"scalar-deep":     deep(DefaultConfig()),
		"cache-deep":      deep(CacheConfig()),
		"simd-deep":       deep(SIMDConfig()),
		"branchless-deep": deep(BranchlessConfig()),
	}
}

func sortedReference(data []int32) []int32 {
	want := slices.Clone(data)
	slices.Sort(want)
	return want
}

func randomInt32s(n int, seed int64) []int32 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(rng.Uint32())
	}
	return data
}

// checkVariants sorts input with every engine variant and compares
// against the stdlib reference.
func checkVariants(t *testing.T, input []int32) {
	t.Helper()
	want := sortedReference(input)
	for name, cfg := range variantConfigs() {
		data := slices.Clone(input)
		New(cfg).Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s: Sort(n=%d) = %v, want %v", name, len(input), head(data), head(want))
		}
	}
}

// head truncates long slices for readable failure messages.
func head(data []int32) []int32 {
	if len(data) > 24 {
		return data[:24]
	}
	return data
}

// TestSortEmpty tests that an empty slice is a no-op.
func TestSortEmpty(t *testing.T) {
	var empty []int32
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting a single-element slice.
func TestSortSingle(t *testing.T) {
	data := []int32{42}
	Sort(data)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

// TestSortSmallRandom tests a small unordered fixture.
func TestSortSmallRandom(t *testing.T) {
	input := []int32{12, 7, 14, 9, 10, 11}
	want := []int32{7, 9, 10, 11, 12, 14}
	for name, cfg := range variantConfigs() {
		data := slices.Clone(input)
		New(cfg).Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s: Sort(%v) = %v, want %v", name, input, data, want)
		}
	}
}

// TestSortInt32Extremes tests signed 32-bit boundary values; midpoint
// and comparison arithmetic must not overflow.
func TestSortInt32Extremes(t *testing.T) {
	input := []int32{math.MaxInt32, 0, math.MinInt32, -1, 1, math.MaxInt32 - 1, math.MinInt32 + 1}
	checkVariants(t, input)
}

// TestSortAlreadySorted tests ascending input; the early-termination
// path is taken at every merge level.
func TestSortAlreadySorted(t *testing.T) {
	input := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	for name, cfg := range variantConfigs() {
		data := slices.Clone(input)
		New(cfg).Sort(data)
		if !slices.Equal(data, input) {
			t.Errorf("%s: Sort(sorted) = %v, want unchanged %v", name, data, input)
		}
	}

	// A longer ascending input so the deep variants recurse well past
	// the base case.
	long := make([]int32, 10000)
	for i := range long {
		long[i] = int32(i)
	}
	checkVariants(t, long)
}

// TestSortReverse tests strictly descending input; early termination
// never triggers.
func TestSortReverse(t *testing.T) {
	input := []int32{100, 90, 80, 70, 60, 50, 40}
	checkVariants(t, input)

	long := make([]int32, 10000)
	for i := range long {
		long[i] = int32(len(long) - i)
	}
	checkVariants(t, long)
}

// TestSortDuplicates tests duplicate-heavy input.
func TestSortDuplicates(t *testing.T) {
	input := []int32{5, 1, 5, 2, 5, 3}
	want := []int32{1, 2, 3, 5, 5, 5}
	for name, cfg := range variantConfigs() {
		data := slices.Clone(input)
		New(cfg).Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s: Sort(%v) = %v, want %v", name, input, data, want)
		}
	}
}

// TestSortAllSame tests input with one distinct value.
func TestSortAllSame(t *testing.T) {
	input := []int32{5, 5, 5, 5, 5, 5, 5, 5}
	checkVariants(t, input)
}

// TestSortRandom sweeps sizes around every threshold boundary: the
// insertion base case (32, 64), lane multiples, and the blocked-merge
// cutoff (8192).
func TestSortRandom(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 33, 63, 64, 65, 100, 127, 128, 256, 1000, 4096, 8192, 10000, 20000}
	for _, n := range sizes {
		checkVariants(t, randomInt32s(n, int64(n)+1))
	}
}

// TestSortLimitedRange tests random input drawn from few distinct
// values, stressing tie handling in every merge kernel.
func TestSortLimitedRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]int32, 5000)
	for i := range data {
		data[i] = int32(rng.Intn(8))
	}
	checkVariants(t, data)
}

// TestSortIdempotent tests that sorting a sorted array changes nothing.
func TestSortIdempotent(t *testing.T) {
	data := randomInt32s(3000, 11)
	for name, cfg := range variantConfigs() {
		eng := New(cfg)
		once := slices.Clone(data)
		eng.Sort(once)
		twice := slices.Clone(once)
		eng.Sort(twice)
		if !slices.Equal(once, twice) {
			t.Errorf("%s: Sort(Sort(A)) != Sort(A)", name)
		}
	}
}

// TestSortPermutation tests that the output is a permutation of the
// input (multiset equality).
func TestSortPermutation(t *testing.T) {
	input := randomInt32s(2048, 13)
	counts := make(map[int32]int, len(input))
	for _, v := range input {
		counts[v]++
	}
	for name, cfg := range variantConfigs() {
		data := slices.Clone(input)
		New(cfg).Sort(data)
		got := make(map[int32]int, len(data))
		for _, v := range data {
			got[v]++
		}
		if len(got) != len(counts) {
			t.Errorf("%s: output is not a permutation of input", name)
			continue
		}
		for v, c := range counts {
			if got[v] != c {
				t.Errorf("%s: value %d appears %d times, want %d", name, v, got[v], c)
			}
		}
	}
}

// TestNewClampsConfig tests that out-of-range tuning values are
// corrected rather than breaking the sort.
func TestNewClampsConfig(t *testing.T) {
	cfg := Config{
		Strategy:           StrategyBlocked,
		InsertionThreshold: 1, // below the legal minimum of 2
		BlockSize:          -5,
		ParallelThreshold:  -1,
		ForkDepthCap:       -1,
		CompressionCutoff:  -0.5,
	}
	eng := New(cfg)
	data := randomInt32s(1000, 17)
	want := sortedReference(data)
	eng.Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("engine with clamped config produced wrong order")
	}
}

// TestIsSorted tests the verification predicate.
func TestIsSorted(t *testing.T) {
	cases := []struct {
		data []int32
		want bool
	}{
		{nil, true},
		{[]int32{3}, true},
		{[]int32{1, 1, 2, 3}, true},
		{[]int32{math.MinInt32, 0, math.MaxInt32}, true},
		{[]int32{2, 1}, false},
		{[]int32{1, 3, 2, 4}, false},
	}
	for _, tc := range cases {
		if got := IsSorted(tc.data); got != tc.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tc.data, got, tc.want)
		}
	}
}

// TestStrategyString tests the strategy names used in harness output.
func TestStrategyString(t *testing.T) {
	names := map[Strategy]string{
		StrategyScalar:     "scalar",
		StrategyBlocked:    "blocked",
		StrategyVector:     "vector",
		StrategyBranchless: "branchless",
		Strategy(99):       "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
