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
	"math/rand"
	"testing"

	"github.com/mergekit/go-mergekit/workerpool"
)

func benchmarkEngine(b *testing.B, eng *Engine, n int) {
	ref := randomInt32s(n, 1)
	data := make([]int32, n)

	b.SetBytes(int64(n) * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		eng.Sort(data)
	}
}

func BenchmarkSort_Scalar_10000(b *testing.B) {
	benchmarkEngine(b, New(DefaultConfig()), 10000)
}

func BenchmarkSort_Scalar_1000000(b *testing.B) {
	benchmarkEngine(b, New(DefaultConfig()), 1000000)
}

func BenchmarkSort_Cache_10000(b *testing.B) {
	benchmarkEngine(b, New(CacheConfig()), 10000)
}

func BenchmarkSort_Cache_1000000(b *testing.B) {
	benchmarkEngine(b, New(CacheConfig()), 1000000)
}

func BenchmarkSort_SIMD_10000(b *testing.B) {
	benchmarkEngine(b, New(SIMDConfig()), 10000)
}

func BenchmarkSort_SIMD_1000000(b *testing.B) {
	benchmarkEngine(b, New(SIMDConfig()), 1000000)
}

func BenchmarkSort_Branchless_10000(b *testing.B) {
	benchmarkEngine(b, New(BranchlessConfig()), 10000)
}

func BenchmarkSort_Branchless_1000000(b *testing.B) {
	benchmarkEngine(b, New(BranchlessConfig()), 1000000)
}

func BenchmarkSort_Parallel_1000000(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Pool = workerpool.New(0)
	benchmarkEngine(b, New(cfg), 1000000)
}

func BenchmarkAdaptiveSort_LowCardinality_1000000(b *testing.B) {
	const n = 1000000
	rng := rand.New(rand.NewSource(1))
	ref := make([]int32, n)
	for i := range ref {
		ref[i] = int32(rng.Intn(1000))
	}
	data := make([]int32, n)
	eng := New(DefaultConfig())

	b.SetBytes(int64(n) * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		eng.AdaptiveSort(data)
	}
}

func BenchmarkAdaptiveSort_Unique_1000000(b *testing.B) {
	const n = 1000000
	ref := randomInt32s(n, 1)
	data := make([]int32, n)
	eng := New(DefaultConfig())

	b.SetBytes(int64(n) * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		eng.AdaptiveSort(data)
	}
}
