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

package order

import (
	"errors"
	"fmt"
)

// ErrInvalidComparator is returned when a caller-supplied comparator
// violates the strict-weak-order contract: it either panicked, or its
// inconsistency drove the caller to index out of range. Callers of
// Protect always receive it wrapped in a *ComparatorError.
var ErrInvalidComparator = errors.New("order: comparator violated strict weak order")

// ComparatorError reports ErrInvalidComparator together with an opaque
// identifier for the offending comparator. Comparator holds the
// caller-supplied func value itself; it is not meant to be invoked
// again, only printed — its %p identity is enough to tell two
// comparators apart across repeated calls. Comparator is nil when the
// failure occurred under an intrinsic (non-func) ordering.
type ComparatorError struct {
	Comparator any
	err        error
}

func (e *ComparatorError) Error() string {
	if e.Comparator == nil {
		return e.err.Error()
	}
	return fmt.Sprintf("%s (comparator %p)", e.err, e.Comparator)
}

func (e *ComparatorError) Unwrap() error { return e.err }

// Protect runs fn, converting any panic it raises — an out-of-bounds
// slice access caused by an inconsistent comparator, or a panic raised
// by the comparator itself — into a *ComparatorError wrapping
// ErrInvalidComparator and the original failure. cmp identifies the
// comparator responsible for fn's behavior, attached to the error for
// diagnostics; pass nil when fn runs under an intrinsic ordering with
// no caller comparator to blame. Protect must be installed once at a
// driver's entry-point boundary, never inside a hot loop.
func Protect(cmp any, fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		wrapped := fmt.Errorf("%w: %v", ErrInvalidComparator, r)
		if e, ok := r.(error); ok {
			wrapped = fmt.Errorf("%w: %w", ErrInvalidComparator, e)
		}
		err = &ComparatorError{Comparator: cmp, err: wrapped}
	}()
	fn()
	return nil
}
