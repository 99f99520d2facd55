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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLoggerWarnsOnlyOnComparatorViolation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	keys := []int{3, 1, 2, 5, 4}
	require.NoError(t, Sort(keys, WithLogger(logger)))
	require.Equal(t, 0, logs.Len(), "a clean sort must not log anything")

	bad := []int{5, 4, 3, 2, 1}
	err := SortFunc(bad, func(a, b int) int { panic("bad comparator") }, WithLogger(logger))
	require.ErrorIs(t, err, ErrInvalidComparator)
	require.Equal(t, 1, logs.Len())
	require.Contains(t, logs.All()[0].Message, "comparator violated strict weak order")
}
