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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtectCleanRun(t *testing.T) {
	ran := false
	err := Protect(nil, func() { ran = true })
	require.NoError(t, err)
	require.True(t, ran)
}

func TestProtectRecoversComparatorPanic(t *testing.T) {
	boom := errors.New("boom")
	cmp := func(a, b int) int { panic(boom) }
	err := Protect(cmp, func() { cmp(1, 2) })
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidComparator)
	require.ErrorIs(t, err, boom)

	var ce *ComparatorError
	require.ErrorAs(t, err, &ce)
	require.NotNil(t, ce.Comparator)
}

func TestProtectRecoversNonErrorPanic(t *testing.T) {
	err := Protect(nil, func() { panic("index out of range") })
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidComparator)
	require.Contains(t, err.Error(), "index out of range")
}

func TestProtectDistinguishesComparatorIdentity(t *testing.T) {
	cmpA := func(a, b int) int { panic("a") }
	cmpB := func(a, b int) int { panic("b") }

	errA := Protect(cmpA, func() { cmpA(0, 0) })
	errB := Protect(cmpB, func() { cmpB(0, 0) })

	var ceA, ceB *ComparatorError
	require.ErrorAs(t, errA, &ceA)
	require.ErrorAs(t, errB, &ceB)
	require.NotEqual(t, ceA.Error(), ceB.Error())
}
