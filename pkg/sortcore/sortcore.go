// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sortcore is the in-place introspective sort engine: median-of-
// three pivot selection, insertion-sort cutoff for small partitions,
// heapsort depth-limit fallback, and a hole-threaded Hoare partition. It
// makes no allocations in steady state and is not stable.
package sortcore

// SizeThreshold is the partition size at or below which the engine
// switches to insertion sort instead of partitioning further. Any value
// in [8, 32] is acceptable; 16 is the conventional default used here.
const SizeThreshold = 16

// maxDepth returns the initial recursion-depth budget for n elements:
// 2 * (floor(log2(n)) + 1). Exceeding the budget falls back to heapsort.
func maxDepth(n int) int {
	depth := 0
	for i := n; i > 0; i >>= 1 {
		depth++
	}
	return depth * 2
}
