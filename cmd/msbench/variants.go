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

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mergekit/go-mergekit/msort"
	"github.com/mergekit/go-mergekit/workerpool"
)

// sortFunc sorts data in place.
type sortFunc func(data []int32)

// newVariant maps a harness variant name to a configured engine.
func newVariant(name string) (sortFunc, error) {
	switch name {
	case "baseline":
		// Textbook recursion: merge at every level, no insertion-sort
		// base case. The reference point for the other variants.
		cfg := msort.DefaultConfig()
		cfg.InsertionThreshold = 2
		return msort.New(cfg).Sort, nil
	case "optimized":
		return msort.New(msort.DefaultConfig()).Sort, nil
	case "cache":
		return msort.New(msort.CacheConfig()).Sort, nil
	case "simd":
		return msort.New(msort.SIMDConfig()).Sort, nil
	case "branchless":
		return msort.New(msort.BranchlessConfig()).Sort, nil
	case "parallel":
		cfg := msort.DefaultConfig()
		cfg.Pool = workerpool.New(0)
		return msort.New(cfg).Sort, nil
	case "rle":
		return msort.New(msort.DefaultConfig()).AdaptiveSort, nil
	default:
		return nil, fmt.Errorf("unknown variant %q (have %s)", name, strings.Join(variantNames(), ", "))
	}
}

func variantNames() []string {
	names := []string{"baseline", "optimized", "cache", "simd", "branchless", "parallel", "rle"}
	sort.Strings(names)
	return names
}
