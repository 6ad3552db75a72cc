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
	"math/rand"
	"strings"
)

// generate produces an input array of the named value distribution.
//
//	uniform:  full-range random 32-bit values
//	limited:  100 distinct values, duplicate heavy (RLE friendly)
//	sorted:   ascending (early termination at every merge level)
//	reverse:  descending (early termination never triggers)
//	constant: one distinct value
func generate(dist string, n int, seed int64) ([]int32, error) {
	data := make([]int32, n)
	rng := rand.New(rand.NewSource(seed))

	switch dist {
	case "uniform":
		for i := range data {
			data[i] = int32(rng.Uint32())
		}
	case "limited":
		for i := range data {
			data[i] = int32(rng.Intn(100))
		}
	case "sorted":
		for i := range data {
			data[i] = int32(i)
		}
	case "reverse":
		for i := range data {
			data[i] = int32(n - i)
		}
	case "constant":
		for i := range data {
			data[i] = 7
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q (have %s)", dist, strings.Join(distNames(), ", "))
	}
	return data, nil
}

func distNames() []string {
	return []string{"uniform", "limited", "sorted", "reverse", "constant"}
}
