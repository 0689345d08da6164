// File: container/iterator.go
// Author: momentics <momentics@gmail.com>
//
// Random-access cursors and range-over-func sequences.

package container

import "iter"

// Iterator is a position inside a DynamicArray. It stays meaningful across
// reallocation (it stores an index, not an address) but not across inserts
// or erases before it.
type Iterator[T any] struct {
	a *DynamicArray[T]
	i int
}

// Begin returns an iterator at index 0.
func (a *DynamicArray[T]) Begin() Iterator[T] { return Iterator[T]{a: a} }

// End returns the iterator one past the last element.
func (a *DynamicArray[T]) End() Iterator[T] { return Iterator[T]{a: a, i: a.Size()} }

// IteratorAt returns an iterator at index i.
func (a *DynamicArray[T]) IteratorAt(i int) Iterator[T] { return Iterator[T]{a: a, i: i} }

// Index returns the position as an element index.
func (it Iterator[T]) Index() int { return it.i }

// Valid reports whether the iterator addresses an element.
func (it Iterator[T]) Valid() bool { return it.a != nil && it.i >= 0 && it.i < it.a.size }

// Value returns the element under the iterator (unchecked).
func (it Iterator[T]) Value() T { return it.a.Get(it.i) }

// Ref returns a pointer to the element under the iterator (unchecked).
func (it Iterator[T]) Ref() *T { return it.a.Ref(it.i) }

// Set overwrites the element under the iterator (unchecked).
func (it Iterator[T]) Set(v T) { it.a.Set(it.i, v) }

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add moves the iterator by n positions.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{a: it.a, i: it.i + n} }

// Distance returns it - from in positions.
func (it Iterator[T]) Distance(from Iterator[T]) int { return it.i - from.i }

// Equal reports whether both iterators address the same position of the
// same array.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.a == o.a && it.i == o.i }

// Less orders positions of the same array.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.i < o.i }

// All yields index/value pairs front to back.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Size(); i++ {
			if !yield(i, a.Get(i)) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.Size(); i++ {
			if !yield(a.Get(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (a *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.Size() - 1; i >= 0; i-- {
			if !yield(i, a.Get(i)) {
				return
			}
		}
	}
}
