// File: container/compare.go
// Author: momentics <momentics@gmail.com>
//
// Equality and lexicographic ordering. A nil array compares as empty.

package container

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same size and equal elements in order.
func Equal[T comparable](a, b *DynamicArray[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *DynamicArray[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *DynamicArray[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically: -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *DynamicArray[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *DynamicArray[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}

// Less reports whether a precedes b lexicographically.
func Less[T constraints.Ordered](a, b *DynamicArray[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual is !Less(b, a).
func LessOrEqual[T constraints.Ordered](a, b *DynamicArray[T]) bool {
	return !Less(b, a)
}

// Greater is Less(b, a).
func Greater[T constraints.Ordered](a, b *DynamicArray[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual is !Less(a, b).
func GreaterOrEqual[T constraints.Ordered](a, b *DynamicArray[T]) bool {
	return !Less(a, b)
}
