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

package vecops

// CopyBlock copies min(len(src), len(dst)) int32 values from src to dst
// in register-width chunks, with a single-element tail for the remainder.
// Returns the number of elements copied.
//
// The chunked loop exists so that bulk moves line up with the detected
// register width; each chunk lowers to one memmove call, which the
// runtime implements with the widest loads and stores the CPU offers.
// Output is always identical to an element-by-element copy.
func CopyBlock(dst, src []int32) int {
	n := min(len(dst), len(src))
	lanes := Int32Lanes()

	i := 0
	for ; i+lanes <= n; i += lanes {
		copy(dst[i:i+lanes], src[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

// Prefetch touches s[i] to request it be brought into cache ahead of
// use. Purely advisory: Go has no portable prefetch intrinsic, so this
// degrades to a guarded read and is a no-op when i is out of range.
func Prefetch(s []int32, i int) {
	if uint(i) < uint(len(s)) {
		_ = s[i]
	}
}
