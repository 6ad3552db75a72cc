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
	"math"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mergekit/go-mergekit/msort"
)

func newSuiteCommand() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the fixed correctness scenarios against one variant",
		RunE: func(cmd *cobra.Command, args []string) error {
			sortVariant, err := newVariant(variant)
			if err != nil {
				return err
			}

			failures := 0
			for _, sc := range suiteScenarios() {
				if !runScenario(sc.name, sc.data, sortVariant) {
					failures++
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d scenario(s) failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "optimized", "engine variant to test")
	return cmd
}

type scenario struct {
	name string
	data []int32
}

func suiteScenarios() []scenario {
	rng := rand.New(rand.NewSource(42))
	large := make([]int32, 100000)
	for i := range large {
		large[i] = int32(rng.Uint32())
	}

	return []scenario{
		{"Small Random", []int32{12, 7, 14, 9, 10, 11}},
		{"32-bit Edge Cases", []int32{math.MaxInt32, 0, math.MinInt32, -1, 1, math.MaxInt32 - 1, math.MinInt32 + 1}},
		{"Already Sorted", []int32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"Reverse Sorted", []int32{100, 90, 80, 70, 60, 50, 40}},
		{"Duplicates", []int32{5, 1, 5, 2, 5, 3}},
		{"Large Random (100k)", large},
	}
}

func runScenario(name string, data []int32, sortVariant sortFunc) bool {
	fmt.Printf("\n=== Running Test: %s (n=%d) ===\n", name, len(data))

	// Only print contents for small datasets.
	if len(data) <= 20 {
		fmt.Printf("Before: %v\n", data)
	}

	start := time.Now()
	sortVariant(data)
	elapsed := time.Since(start)

	if len(data) <= 20 {
		fmt.Printf("After:  %v\n", data)
	}

	if msort.IsSorted(data) {
		fmt.Printf("RESULT: %s [%.6f sec]\n", color.GreenString("PASSED"), elapsed.Seconds())
		return true
	}
	fmt.Printf("RESULT: %s\n", color.RedString("FAILED!"))
	return false
}
