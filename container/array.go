// File: container/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// DynamicArray type, construction, copy/move and swap.

package container

import (
	"github.com/momentics/dynarray/api"
	"github.com/momentics/dynarray/pool"
)

// DynamicArray holds size logically valid elements inside an allocated
// block of Capacity() slots. Slots in [size, capacity) always hold T's zero
// value. The zero value is an empty array with no storage.
type DynamicArray[T any] struct {
	items pool.Buffer[T]
	size  int
	alloc api.Allocator[T]
}

// Option customizes a DynamicArray at construction.
type Option[T any] func(*DynamicArray[T])

// WithAllocator sources every block of the array from alloc.
func WithAllocator[T any](alloc api.Allocator[T]) Option[T] {
	return func(a *DynamicArray[T]) {
		a.alloc = alloc
	}
}

func build[T any](opts []Option[T]) *DynamicArray[T] {
	a := &DynamicArray[T]{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func checkCount(op string, n int) {
	if n < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, op+": negative count").
			WithContext("count", n))
	}
}

// New returns an empty array with no storage.
func New[T any](opts ...Option[T]) *DynamicArray[T] {
	return build(opts)
}

// NewWithSize returns an array of n zero-valued elements; size == capacity == n.
func NewWithSize[T any](n int, opts ...Option[T]) *DynamicArray[T] {
	checkCount("NewWithSize", n)
	a := build(opts)
	a.items = a.newBuffer(n)
	a.size = n
	return a
}

// NewFilled returns an array of n copies of value; size == capacity == n.
func NewFilled[T any](n int, value T, opts ...Option[T]) *DynamicArray[T] {
	checkCount("NewFilled", n)
	a := build(opts)
	a.items = a.newBuffer(n)
	s := a.items.Slice()
	for i := range s {
		s[i] = value
	}
	a.size = n
	return a
}

// Of returns an array holding items in order; size == capacity == len(items).
func Of[T any](items ...T) *DynamicArray[T] {
	return FromSlice(items)
}

// FromSlice copies items into a new size-tight array.
func FromSlice[T any](items []T, opts ...Option[T]) *DynamicArray[T] {
	a := build(opts)
	a.items = a.newBuffer(len(items))
	copy(a.items.Slice(), items)
	a.size = len(items)
	return a
}

// NewReserved returns an empty array with req.Capacity() slots allocated.
func NewReserved[T any](req ReserveRequest, opts ...Option[T]) *DynamicArray[T] {
	a := build(opts)
	a.Reserve(req.Capacity())
	return a
}

func (a *DynamicArray[T]) newBuffer(n int) pool.Buffer[T] {
	return pool.NewBufferFrom(a.alloc, n)
}

// Size returns the number of valid elements.
func (a *DynamicArray[T]) Size() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *DynamicArray[T]) Capacity() int {
	if a == nil {
		return 0
	}
	return a.items.Len()
}

// IsEmpty reports whether Size() == 0.
func (a *DynamicArray[T]) IsEmpty() bool {
	return a.Size() == 0
}

// Data returns a view of [0, Size()). The view aliases the array storage and
// is invalidated by any operation that reallocates.
func (a *DynamicArray[T]) Data() []T {
	if a == nil {
		return nil
	}
	return a.items.Slice()[:a.size]
}

// Clone returns a deep copy holding exactly Size() slots. Spare capacity of
// a is not preserved.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	c := &DynamicArray[T]{alloc: a.alloc}
	c.items = c.newBuffer(a.size)
	copy(c.items.Slice(), a.Data())
	c.size = a.size
	return c
}

// Move returns a new array that owns a's storage. a is left empty with
// zero capacity. No element is copied.
func (a *DynamicArray[T]) Move() *DynamicArray[T] {
	m := &DynamicArray[T]{alloc: a.alloc}
	m.items.Swap(&a.items)
	m.size, a.size = a.size, 0
	return m
}

// Assign replaces a's contents with a size-tight copy of other using
// copy-and-swap. Assigning an array to itself is a no-op.
func (a *DynamicArray[T]) Assign(other *DynamicArray[T]) {
	if a == other {
		return
	}
	tmp := &DynamicArray[T]{alloc: a.alloc}
	tmp.items = tmp.newBuffer(other.Size())
	copy(tmp.items.Slice(), other.Data())
	tmp.size = other.Size()
	a.Swap(tmp)
	tmp.Release()
}

// MoveAssign transfers other's elements into a size-tight block owned by a
// and resets other to empty with zero capacity. Self move is a no-op.
func (a *DynamicArray[T]) MoveAssign(other *DynamicArray[T]) {
	if a == other {
		return
	}
	buf := a.newBuffer(other.Size())
	copy(buf.Slice(), other.Data())
	a.items.Swap(&buf)
	buf.Release()
	a.size = other.Size()
	other.Release()
}

// Swap exchanges storage, size and capacity with other in O(1).
func (a *DynamicArray[T]) Swap(other *DynamicArray[T]) {
	a.items.Swap(&other.items)
	a.size, other.size = other.size, a.size
	a.alloc, other.alloc = other.alloc, a.alloc
}

// Release hands the storage back to its allocator; the array becomes empty
// with zero capacity and stays usable.
func (a *DynamicArray[T]) Release() {
	a.items.Release()
	a.size = 0
}
