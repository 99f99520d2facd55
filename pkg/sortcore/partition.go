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

// median3 returns the absolute index of the median of k[ia], k[ib],
// k[ic] under ord. Ties are broken deterministically: when two of the
// three compare equal, the decision always resolves the same way so the
// hole partition below produces reproducible index outcomes:
//
//   - if k[ic] <= k[ia] and k[ib] <= k[ic]: the median is k[ic].
//   - if k[ia] < k[ic] and k[ic] <= k[ib]: the median is k[ic].
//   - otherwise ic is a known extreme (minimum in the first case's
//     complement, maximum in the second's), and the median is
//     whichever of k[ia], k[ib] is the middle of the remaining pair.
func median3[T any](k []T, ia, ib, ic int, ord order.Ordering[T]) int {
	a, b, c := k[ia], k[ib], k[ic]
	if !ord.Less(a, c) { // c <= a
		if !ord.Less(c, b) { // b <= c
			return ic
		}
		// c is the minimum of the three; median is min(a, b).
		if ord.Less(a, b) {
			return ia
		}
		return ib
	}
	// a < c
	if !ord.Less(b, c) { // c <= b
		return ic
	}
	// c is the maximum of the three; median is max(a, b).
	if ord.Less(a, b) {
		return ib
	}
	return ia
}

// doPivot partitions k[lo:hi) around the median-of-three pivot using a
// hole-threaded Hoare partition. Precondition: hi-lo >= SizeThreshold+1.
// It returns the final resting index of the pivot.
func doPivot[T any](k []T, lo, hi int, ord order.Ordering[T]) int {
	last := hi - 1
	mid := lo + (last-lo)/2
	pivotIdx := median3(k, lo, mid, last, ord)

	pivot := k[pivotIdx]
	k[pivotIdx] = k[last] // the hole moves from pivotIdx to last

	l, h := lo, last
	for l < h {
		for l < h && !ord.Less(pivot, k[l]) { // k[l] <= pivot
			l++
		}
		if l >= h {
			break
		}
		k[h] = k[l]
		h--
		// hole now at l

		for l < h && !ord.Less(k[h], pivot) { // k[h] >= pivot
			h--
		}
		if l >= h {
			break
		}
		k[l] = k[h]
		l++
		// hole now at h
	}
	k[l] = pivot
	return l
}

func doPivotPairs[T, V any](k []T, v []V, lo, hi int, ord order.Ordering[T]) int {
	last := hi - 1
	mid := lo + (last-lo)/2
	pivotIdx := median3(k, lo, mid, last, ord)

	pivot := k[pivotIdx]
	pivotValue := v[pivotIdx]
	k[pivotIdx] = k[last]
	v[pivotIdx] = v[last]

	l, h := lo, last
	for l < h {
		for l < h && !ord.Less(pivot, k[l]) {
			l++
		}
		if l >= h {
			break
		}
		k[h] = k[l]
		v[h] = v[l]
		h--

		for l < h && !ord.Less(k[h], pivot) {
			h--
		}
		if l >= h {
			break
		}
		k[l] = k[h]
		v[l] = v[h]
		l++
	}
	k[l] = pivot
	v[l] = pivotValue
	return l
}
