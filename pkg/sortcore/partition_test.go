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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sortcore/pkg/order"
)

func TestMedian3TieBreaks(t *testing.T) {
	var ord order.OrderedOf[int]

	// distinct values: ordinary median.
	require.Equal(t, 1, median3([]int{1, 2, 3}, 0, 1, 2, ord))
	require.Equal(t, 2, median3([]int{3, 1, 2}, 0, 1, 2, ord))

	// c <= a and b <= c: median is c.
	require.Equal(t, 2, median3([]int{5, 5, 5}, 0, 1, 2, ord))
	require.Equal(t, 2, median3([]int{5, 1, 3}, 0, 1, 2, ord))

	// a < c and c <= b: median is c.
	require.Equal(t, 2, median3([]int{1, 5, 3}, 0, 1, 2, ord))

	// c is the minimum: median is min(a, b).
	require.Equal(t, 0, median3([]int{2, 3, 1}, 0, 1, 2, ord))
	require.Equal(t, 1, median3([]int{3, 2, 1}, 0, 1, 2, ord))

	// c is the maximum: median is max(a, b).
	require.Equal(t, 1, median3([]int{1, 3, 4}, 0, 1, 2, ord))
	require.Equal(t, 0, median3([]int{3, 1, 4}, 0, 1, 2, ord))
}

func TestDoPivotPartitionsAroundPivot(t *testing.T) {
	var ord order.OrderedOf[int]
	keys := []int{9, 3, 7, 1, 8, 2, 6, 4, 5, 0, 12, 11, 10, 13, 14, 15, 16}
	require.Greater(t, len(keys), SizeThreshold)

	p := doPivot(keys, 0, len(keys), ord)
	pivot := keys[p]
	for i := 0; i < p; i++ {
		require.LessOrEqualf(t, keys[i], pivot, "index %d", i)
	}
	for i := p + 1; i < len(keys); i++ {
		require.GreaterOrEqualf(t, keys[i], pivot, "index %d", i)
	}
}

func TestDoPivotPairsKeepsLockstep(t *testing.T) {
	var ord order.OrderedOf[int]
	keys := []int{9, 3, 7, 1, 8, 2, 6, 4, 5, 0, 12, 11, 10, 13, 14, 15, 16}
	values := make([]int, len(keys))
	for i := range values {
		values[i] = keys[i] * 100
	}

	p := doPivotPairs(keys, values, 0, len(keys), ord)
	for i, k := range keys {
		require.Equal(t, k*100, values[i])
	}
	pivot := keys[p]
	for i := 0; i < p; i++ {
		require.LessOrEqual(t, keys[i], pivot)
	}
	for i := p + 1; i < len(keys); i++ {
		require.GreaterOrEqual(t, keys[i], pivot)
	}
}
