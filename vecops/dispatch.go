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

// Package vecops provides CPU capability detection and capability-gated
// bulk data movement for 32-bit integer slices.
//
// The detected register width only changes the chunking of block copies;
// results are always identical to a scalar element-by-element copy.
package vecops

import (
	"os"
	"strconv"
)

// Level represents the SIMD instruction set detected at startup.
type Level int

const (
	// LevelScalar indicates no usable SIMD; pure Go loops.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentLevel.String()
}

// Int32Lanes returns how many int32 values fit in one register at the
// current width. This is the chunk size used by CopyBlock.
func Int32Lanes() int {
	return currentWidth / 4
}

// NoSimdEnv checks if the MERGEKIT_NO_SIMD environment variable is set.
// When set, vecops uses the scalar width regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("MERGEKIT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // keep 16-byte chunks even in scalar mode for consistency
}
