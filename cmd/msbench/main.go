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

// Command msbench generates input arrays, runs the merge-sort engine
// variants over them, and reports timing, throughput and an estimated
// hardware cost per gigabyte sorted.
//
// Usage:
//
//	msbench run --variant simd --count 10000000 --dist uniform
//	msbench run --variant parallel --gb 2 --rate 0.10
//	msbench suite --variant cache
//	msbench verify
//	msbench cpuinfo
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mergekit/go-mergekit/vecops"
)

func main() {
	root := &cobra.Command{
		Use:           "msbench",
		Short:         "Benchmark and verification harness for go-mergekit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newSuiteCommand())
	root.AddCommand(newVerifyCommand())
	root.AddCommand(newCPUInfoCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "msbench: %v\n", err)
		os.Exit(1)
	}
}

func newCPUInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Report the detected SIMD target and parallel capacity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("SIMD level:    %s\n", vecops.CurrentName())
			fmt.Printf("Register:      %d bytes (%d int32 lanes)\n", vecops.CurrentWidth(), vecops.Int32Lanes())
			fmt.Printf("GOMAXPROCS:    %d\n", runtime.GOMAXPROCS(0))
			fmt.Printf("CPUs:          %d\n", runtime.NumCPU())
		},
	}
}
