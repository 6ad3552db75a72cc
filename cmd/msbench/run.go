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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mergekit/go-mergekit/msort"
)

const bytesPerElement = 4

func newRunCommand() *cobra.Command {
	var (
		variant string
		count   int
		gb      int
		dist    string
		seed    int64
		rate    float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sort a generated array once and report time, throughput and cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gb > 0 {
				count = (gb << 30) / bytesPerElement
			}
			if count <= 0 {
				return fmt.Errorf("element count must be positive")
			}

			sortVariant, err := newVariant(variant)
			if err != nil {
				return err
			}

			totalBytes := uint64(count) * bytesPerElement
			fmt.Printf("[INFO] Dataset configuration:\n")
			fmt.Printf("   - Variant: %s\n", variant)
			fmt.Printf("   - Dist:    %s\n", dist)
			fmt.Printf("   - Count:   %s elements (%s)\n", humanize.Comma(int64(count)), humanize.Bytes(totalBytes))

			fmt.Printf("[INFO] Generating input...\n")
			data, err := generate(dist, count, seed)
			if err != nil {
				return err
			}

			fmt.Printf("[INFO] Sorting...\n")
			start := time.Now()
			sortVariant(data)
			elapsed := time.Since(start)

			fmt.Printf("[INFO] Verifying correctness...\n")
			if !msort.IsSorted(data) {
				fmt.Printf("\n[RESULT] %s: array is NOT sorted.\n", color.New(color.FgRed, color.Bold).Sprint("FAILURE"))
				return fmt.Errorf("verification failed")
			}

			seconds := elapsed.Seconds()
			gbSorted := float64(totalBytes) / 1e9

			fmt.Printf("\n[RESULT] %s\n", color.New(color.FgGreen, color.Bold).Sprint("SUCCESS"))
			fmt.Printf("   - Time taken:  %.4f seconds\n", seconds)
			fmt.Printf("   - Throughput:  %.4f GB/s (%s elements/s)\n",
				gbSorted/seconds, humanize.CommafWithDigits(float64(count)/seconds, 0))

			// Cost model: dollars per hour of hardware time, prorated
			// over the run and normalized per gigabyte sorted.
			runCost := seconds * rate / 3600
			fmt.Printf("   - Est. cost:   $%.8f (total for run)\n", runCost)
			fmt.Printf("   - Cost per GB: $%.8f / GB (at $%.2f/hr)\n", runCost/gbSorted, rate)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "optimized", "engine variant to run")
	cmd.Flags().IntVar(&count, "count", 100000, "number of elements")
	cmd.Flags().IntVar(&gb, "gb", 0, "dataset size in GiB (overrides --count)")
	cmd.Flags().StringVar(&dist, "dist", "uniform", "input value distribution")
	cmd.Flags().Int64Var(&seed, "seed", 42, "PRNG seed")
	cmd.Flags().Float64Var(&rate, "rate", 0.10, "hardware cost in dollars per hour")
	return cmd
}
