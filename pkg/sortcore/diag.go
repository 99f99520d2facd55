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
	"github.com/RoaringBitmap/roaring"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matrixorigin/sortcore/pkg/order"
)

// Diagnostics is an opt-in record a caller attaches via WithDiagnostics
// to observe what a sort call did. It costs nothing when not attached:
// the engine never allocates a Diagnostics value or its NaNPrefix
// bitmap on its own.
type Diagnostics struct {
	// ID correlates this call's log lines, assigned on first use.
	ID uuid.UUID
	// NaNPrefix records the final indices [0, m) occupied by NaN keys
	// after the pre-pass. Populated only by Sort/SortPairs over a
	// []float32 or []float64 key slice that holds at least one NaN; left
	// untouched otherwise.
	NaNPrefix *roaring.Bitmap
}

type options struct {
	diag   *Diagnostics
	logger *zap.Logger
}

// Option configures an optional, zero-cost-when-absent aspect of a
// Sort/SortFunc/SortPairs/SortPairsFunc call.
type Option func(*options)

// WithDiagnostics attaches d to the call; the engine fills it in as it
// runs. The caller owns d's lifetime and allocation.
func WithDiagnostics(d *Diagnostics) Option {
	return func(o *options) { o.diag = d }
}

// WithLogger attaches a *zap.Logger that receives exactly one warning
// log line if the comparator violates the strict-weak-order contract.
// It is never called on the successful path.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	var o options
	for _, f := range opts {
		f(&o)
	}
	return o
}

func (o *options) beginCall() {
	if o.diag != nil && o.diag.ID == uuid.Nil {
		o.diag.ID = uuid.New()
	}
}

func (o *options) recordNaNPrefix(m int) {
	if o.diag == nil || m == 0 {
		return
	}
	if o.diag.NaNPrefix == nil {
		o.diag.NaNPrefix = roaring.New()
	}
	for i := 0; i < m; i++ {
		o.diag.NaNPrefix.Add(uint32(i))
	}
}

func (o *options) logInvalidComparator(err error) {
	if o.logger == nil {
		return
	}
	id := ""
	if o.diag != nil {
		id = o.diag.ID.String()
	}
	o.logger.Warn("sortcore: comparator violated strict weak order",
		zap.Error(err),
		zap.String("op_id", id),
	)
}

// protect runs fn, converting any panic it raises into
// ErrInvalidComparator (tagged with cmp's identity, nil for an
// intrinsic ordering with no user comparator) and logging it if a
// logger was attached. It must be called once at each public entry
// point boundary, never from a hot loop.
func (o *options) protect(cmp any, fn func()) error {
	o.beginCall()
	err := order.Protect(cmp, fn)
	if err != nil {
		o.logInvalidComparator(err)
	}
	return err
}
