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

// Package order is the ordering abstraction shared by the introsort
// engine and its binary-search companion. It supports three ways of
// comparing keys: the intrinsic order of a constraints.Ordered type, a
// caller-supplied three-way comparator, and a user type's own CompareTo
// method.
package order

import (
	"golang.org/x/exp/constraints"
)

// Ordering is a strict weak order over T. Less and Compare must agree:
// Less(a, b) == Compare(a, b) < 0.
type Ordering[T any] interface {
	Less(a, b T) bool
	Compare(a, b T) int
}

// CompareTo is the capability a user type implements to supply its own
// intrinsic three-way order.
type CompareTo[T any] interface {
	CompareTo(other T) int
}

// OrderedOf is the intrinsic ordering for any constraints.Ordered type.
// Its Less method compiles down to a raw machine '<': no three-way call,
// no NaN handling. NaN segregation for floating-point keys is the
// responsibility of the pre-pass in pkg/sortcore, not of this type.
type OrderedOf[T constraints.Ordered] struct{}

func (OrderedOf[T]) Less(a, b T) bool { return a < b }

func (OrderedOf[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FuncOrdering adapts a three-way comparator func to Ordering.
type FuncOrdering[T any] struct {
	Cmp func(a, b T) int
}

func (o FuncOrdering[T]) Less(a, b T) bool { return o.Cmp(a, b) < 0 }
func (o FuncOrdering[T]) Compare(a, b T) int { return o.Cmp(a, b) }

// FromFunc wraps a three-way comparator as an Ordering.
func FromFunc[T any](cmp func(a, b T) int) Ordering[T] {
	return FuncOrdering[T]{Cmp: cmp}
}

// CompareToOrdering derives an Ordering from a type's own CompareTo method.
type CompareToOrdering[T CompareTo[T]] struct{}

func (CompareToOrdering[T]) Less(a, b T) bool { return a.CompareTo(b) < 0 }
func (CompareToOrdering[T]) Compare(a, b T) int { return a.CompareTo(b) }

// NilsFirst wraps a three-way comparator for a pointer or interface key
// type so that a nil key compares strictly less than every non-nil key
// and equal only to another nil. inner is only invoked when both a and
// b are non-nil.
func NilsFirst[T comparable](inner func(a, b T) int) func(a, b T) int {
	var zero T
	return func(a, b T) int {
		aNil := any(a) == any(zero)
		bNil := any(b) == any(zero)
		switch {
		case aNil && bNil:
			return 0
		case aNil:
			return -1
		case bNil:
			return 1
		default:
			return inner(a, b)
		}
	}
}
