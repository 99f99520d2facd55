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

import "golang.org/x/exp/constraints"

// nanPrepass partitions k so every NaN key occupies the prefix k[:m]
// and returns m. It is a single left-to-right scan with a write
// cursor: whenever the scanned key is NaN it is swapped into the
// cursor position and the cursor advances. Relative order among
// non-NaN elements is not preserved.
func nanPrepass[T constraints.Float](k []T) int {
	w := 0
	for i := 0; i < len(k); i++ {
		if k[i] != k[i] { // NaN
			k[i], k[w] = k[w], k[i]
			w++
		}
	}
	return w
}

func nanPrepassPairs[T constraints.Float, V any](k []T, v []V) int {
	w := 0
	for i := 0; i < len(k); i++ {
		if k[i] != k[i] { // NaN
			k[i], k[w] = k[w], k[i]
			v[i], v[w] = v[w], v[i]
			w++
		}
	}
	return w
}
