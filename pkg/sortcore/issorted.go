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

// IsSorted reports whether keys is already in non-decreasing order
// under T's intrinsic ordering. Not part of the introsort engine
// proper, but the natural companion every sort package in this lineage
// ships alongside Sort.
func IsSorted[T constraints.Ordered](keys []T) bool {
	return IsSortedFunc(keys, order.OrderedOf[T]{}.Compare)
}

// IsSortedFunc reports whether keys is already in non-decreasing order
// under cmp.
func IsSortedFunc[T any](keys []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(keys); i++ {
		if cmp(keys[i], keys[i-1]) < 0 {
			return false
		}
	}
	return true
}
