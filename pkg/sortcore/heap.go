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

// heapSort is the worst-case O(n log n) fallback for k[a:b], invoked
// once the introsort driver's recursion-depth budget is exhausted.
func heapSort[T any](k []T, a, b int, ord order.Ordering[T]) {
	first := a
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(k, i, hi, first, ord)
	}
	for i := hi - 1; i > 0; i-- {
		k[first], k[first+i] = k[first+i], k[first]
		siftDown(k, 0, i, first, ord)
	}
}

// siftDown restores the heap property on k[first+lo : first+hi),
// rooted at lo, by sinking the element at root against the greater of
// its two children.
func siftDown[T any](k []T, lo, hi, first int, ord order.Ordering[T]) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && ord.Less(k[first+child], k[first+child+1]) {
			child++
		}
		if !ord.Less(k[first+root], k[first+child]) {
			return
		}
		k[first+root], k[first+child] = k[first+child], k[first+root]
		root = child
	}
}

func heapSortPairs[T, V any](k []T, v []V, a, b int, ord order.Ordering[T]) {
	first := a
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDownPairs(k, v, i, hi, first, ord)
	}
	for i := hi - 1; i > 0; i-- {
		k[first], k[first+i] = k[first+i], k[first]
		v[first], v[first+i] = v[first+i], v[first]
		siftDownPairs(k, v, 0, i, first, ord)
	}
}

func siftDownPairs[T, V any](k []T, v []V, lo, hi, first int, ord order.Ordering[T]) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && ord.Less(k[first+child], k[first+child+1]) {
			child++
		}
		if !ord.Less(k[first+root], k[first+child]) {
			return
		}
		k[first+root], k[first+child] = k[first+child], k[first+root]
		v[first+root], v[first+child] = v[first+child], v[first+root]
		root = child
	}
}
