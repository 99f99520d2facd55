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

import (
	"golang.org/x/exp/constraints"

	"github.com/matrixorigin/sortcore/pkg/order"
)

// Sort reorders keys into non-decreasing order under T's intrinsic
// ordering. For T of float32 or float64, NaN keys are segregated to the
// front by the pre-pass before the introsort proper runs on the non-NaN
// suffix. The pre-pass does not run for defined types whose underlying
// type is floating point, so NaN keys of such types are not segregated.
func Sort[T constraints.Ordered](keys []T, opts ...Option) error {
	o := buildOptions(opts)
	return o.protect(nil, func() {
		offset := floatPrepass(keys, &o)
		introsort(keys, offset, len(keys), maxDepth(len(keys)-offset), order.OrderedOf[T]{})
	})
}

// SortFunc reorders keys into non-decreasing order under the three-way
// comparator cmp. cmp must be a strict weak order; a comparator that
// panics or that drives the engine out of bounds is reported as a
// *ComparatorError wrapping ErrInvalidComparator, tagged with cmp's own
// identity, and keys is left as a valid permutation of its original
// elements.
func SortFunc[T any](keys []T, cmp func(a, b T) int, opts ...Option) error {
	o := buildOptions(opts)
	ord := order.FromFunc(cmp)
	return o.protect(cmp, func() {
		introsort(keys, 0, len(keys), maxDepth(len(keys)), ord)
	})
}

// SortPairs reorders keys into non-decreasing order under T's intrinsic
// ordering, permuting values in lockstep so that every final pair
// (keys[i], values[i]) was some original pair (keys[j], values[j]).
func SortPairs[T constraints.Ordered, V any](keys []T, values []V, opts ...Option) error {
	if len(keys) != len(values) {
		return ErrLengthMismatch
	}
	o := buildOptions(opts)
	return o.protect(nil, func() {
		offset := floatPrepassPairs(keys, values, &o)
		introsortPairs(keys, values, offset, len(keys), maxDepth(len(keys)-offset), order.OrderedOf[T]{})
	})
}

// SortPairsFunc reorders keys into non-decreasing order under cmp,
// permuting values in lockstep. See SortFunc for the comparator
// contract and SortPairs for the lockstep guarantee.
func SortPairsFunc[T, V any](keys []T, values []V, cmp func(a, b T) int, opts ...Option) error {
	if len(keys) != len(values) {
		return ErrLengthMismatch
	}
	o := buildOptions(opts)
	ord := order.FromFunc(cmp)
	return o.protect(cmp, func() {
		introsortPairs(keys, values, 0, len(keys), maxDepth(len(keys)), ord)
	})
}

// floatPrepass runs the NaN pre-pass when T is float32 or float64,
// recording the resulting prefix in o's diagnostics if attached. It is
// a no-op, returning 0, for every other ordered type, including defined
// types whose underlying type is float32 or float64.
func floatPrepass[T constraints.Ordered](keys []T, o *options) int {
	var m int
	switch ks := any(keys).(type) {
	case []float32:
		m = nanPrepass(ks)
	case []float64:
		m = nanPrepass(ks)
	default:
		return 0
	}
	o.recordNaNPrefix(m)
	return m
}

func floatPrepassPairs[T constraints.Ordered, V any](keys []T, values []V, o *options) int {
	var m int
	switch ks := any(keys).(type) {
	case []float32:
		m = nanPrepassPairs(ks, values)
	case []float64:
		m = nanPrepassPairs(ks, values)
	default:
		return 0
	}
	o.recordNaNPrefix(m)
	return m
}

// introsort sorts k[a:b) in place: insertion sort (or a fixed small
// network) at or below SizeThreshold, heapsort once depth is exhausted,
// otherwise a median-of-three hole partition followed by recursion on
// the right side and tail iteration on the left.
func introsort[T any](k []T, a, b, depth int, ord order.Ordering[T]) {
	for b-a > 1 {
		if b-a <= SizeThreshold {
			smallSort(k, a, b, ord)
			return
		}
		if depth == 0 {
			heapSort(k, a, b, ord)
			return
		}
		depth--
		p := doPivot(k, a, b, ord)
		introsort(k, p+1, b, depth, ord)
		b = p
	}
}

func smallSort[T any](k []T, a, b int, ord order.Ordering[T]) {
	switch b - a {
	case 0, 1:
	case 2:
		sort2(k[a:b:b], ord)
	case 3:
		sort3(k[a:b:b], ord)
	default:
		insertionSort(k, a, b, ord)
	}
}

func introsortPairs[T, V any](k []T, v []V, a, b, depth int, ord order.Ordering[T]) {
	for b-a > 1 {
		if b-a <= SizeThreshold {
			smallSortPairs(k, v, a, b, ord)
			return
		}
		if depth == 0 {
			heapSortPairs(k, v, a, b, ord)
			return
		}
		depth--
		p := doPivotPairs(k, v, a, b, ord)
		introsortPairs(k, v, p+1, b, depth, ord)
		b = p
	}
}

func smallSortPairs[T, V any](k []T, v []V, a, b int, ord order.Ordering[T]) {
	switch b - a {
	case 0, 1:
	case 2:
		sort2Pairs(k[a:b:b], v[a:b:b], ord)
	case 3:
		sort3Pairs(k[a:b:b], v[a:b:b], ord)
	default:
		insertionSortPairs(k, v, a, b, ord)
	}
}
