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

// Package search is binary search over a range already sorted by
// pkg/sortcore's ordering (pkg/order), returned as a sibling because it
// shares the same ordering abstraction.
package search

import (
	"golang.org/x/exp/constraints"

	"github.com/matrixorigin/sortcore/pkg/order"
)

// BinarySearch looks for target in haystack[index : index+length), which
// must already be sorted under T's intrinsic ordering. It returns the
// index of a matching element if one exists, otherwise the bitwise
// complement of the index at which target would need to be inserted to
// keep the range sorted. The intrinsic ordering's Compare cannot panic,
// so the returned error is nil whenever [index, index+length) lies
// within haystack; a range outside haystack makes the read panic, which
// is reported as in BinarySearchFunc. The error result keeps this
// signature identical to BinarySearchFunc's.
func BinarySearch[T constraints.Ordered](haystack []T, index, length int, target T) (int, error) {
	return BinarySearchFunc(haystack, index, length, target, order.OrderedOf[T]{}.Compare)
}

// BinarySearchFunc is BinarySearch under an explicit three-way
// comparator. cmp must agree with the ordering haystack[index:index+length)
// was actually sorted under.
//
// Every index BinarySearchFunc reads stays within [index, index+length)
// regardless of what cmp returns, so an inconsistent comparator cannot
// drive it out of bounds on its own; but a comparator that itself
// panics is recovered at this boundary and reported as a
// *order.ComparatorError wrapping order.ErrInvalidComparator, tagged
// with cmp's identity, the same way pkg/sortcore's Sort family reports
// it.
func BinarySearchFunc[T any](haystack []T, index, length int, target T, cmp func(a, b T) int) (int, error) {
	var idx int
	err := order.Protect(cmp, func() {
		idx = binarySearch(haystack, index, length, target, cmp)
	})
	if err != nil {
		return 0, err
	}
	return idx, nil
}

func binarySearch[T any](haystack []T, index, length int, target T, cmp func(a, b T) int) int {
	lo, hi := index, index+length
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(haystack[mid], target); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid
		}
	}
	return ^lo
}
