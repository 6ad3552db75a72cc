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
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newVerifyCommand() *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every variant against the stdlib sort on every distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			var g errgroup.Group

			for _, dist := range distNames() {
				dist := dist
				input, err := generate(dist, count, seed)
				if err != nil {
					return err
				}
				want := slices.Clone(input)
				slices.Sort(want)

				for _, name := range variantNames() {
					name := name
					sortVariant, err := newVariant(name)
					if err != nil {
						return err
					}
					g.Go(func() error {
						data := slices.Clone(input)
						sortVariant(data)
						if !slices.Equal(data, want) {
							return fmt.Errorf("%s/%s: output diverges from reference", name, dist)
						}
						fmt.Printf("%-12s %-10s %s\n", name, dist, color.GreenString("ok"))
						return nil
					})
				}
			}

			if err := g.Wait(); err != nil {
				fmt.Printf("\n%s %v\n", color.RedString("MISMATCH:"), err)
				return err
			}
			fmt.Printf("\nAll variants match the reference on all distributions.\n")
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 200000, "elements per fixture")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed")
	return cmd
}
