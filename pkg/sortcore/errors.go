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
	"errors"

	"github.com/matrixorigin/sortcore/pkg/order"
)

// ErrInvalidComparator re-exports order.ErrInvalidComparator so callers
// of the Sort family can errors.Is against it without importing
// pkg/order directly. It is returned left wrapped in a *ComparatorError,
// which carries the offending comparator's identity.
var ErrInvalidComparator = order.ErrInvalidComparator

// ComparatorError is order.ComparatorError, re-exported for callers
// that want to errors.As their way to the offending comparator's
// identity.
type ComparatorError = order.ComparatorError

// ErrLengthMismatch is returned at entry from SortPairs/SortPairsFunc
// when the values slice length disagrees with the keys slice length.
var ErrLengthMismatch = errors.New("sortcore: keys and values length mismatch")
