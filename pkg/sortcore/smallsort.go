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

package sortcore

import "github.com/matrixorigin/sortcore/pkg/order"

// sort2 conditionally swaps a 2-element partition.
func sort2[T any](k []T, ord order.Ordering[T]) {
	if ord.Less(k[1], k[0]) {
		k[0], k[1] = k[1], k[0]
	}
}

// sort3 sorts a 3-element partition with the canonical network
// (0,1), (0,2), (1,2).
func sort3[T any](k []T, ord order.Ordering[T]) {
	if ord.Less(k[1], k[0]) {
		k[0], k[1] = k[1], k[0]
	}
	if ord.Less(k[2], k[0]) {
		k[0], k[2] = k[2], k[0]
	}
	if ord.Less(k[2], k[1]) {
		k[1], k[2] = k[2], k[1]
	}
}

// insertionSort sorts k[a:b] in place. It terminates the inner shift
// early on the first comparator "not less" result, which also makes it
// the leaf sorter the introsort driver falls into for partitions of 4
// up to SizeThreshold elements.
func insertionSort[T any](k []T, a, b int, ord order.Ordering[T]) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && ord.Less(k[j], k[j-1]); j-- {
			k[j], k[j-1] = k[j-1], k[j]
		}
	}
}

func sort2Pairs[T, V any](k []T, v []V, ord order.Ordering[T]) {
	if ord.Less(k[1], k[0]) {
		k[0], k[1] = k[1], k[0]
		v[0], v[1] = v[1], v[0]
	}
}

func sort3Pairs[T, V any](k []T, v []V, ord order.Ordering[T]) {
	if ord.Less(k[1], k[0]) {
		k[0], k[1] = k[1], k[0]
		v[0], v[1] = v[1], v[0]
	}
	if ord.Less(k[2], k[0]) {
		k[0], k[2] = k[2], k[0]
		v[0], v[2] = v[2], v[0]
	}
	if ord.Less(k[2], k[1]) {
		k[1], k[2] = k[2], k[1]
		v[1], v[2] = v[2], v[1]
	}
}

func insertionSortPairs[T, V any](k []T, v []V, a, b int, ord order.Ordering[T]) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && ord.Less(k[j], k[j-1]); j-- {
			k[j], k[j-1] = k[j-1], k[j]
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
