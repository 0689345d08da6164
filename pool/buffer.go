// File: pool/buffer.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-length, exclusively owned element block.

package pool

import "github.com/momentics/dynarray/api"

// Buffer exclusively owns a contiguous block of n elements, n fixed at
// construction. It has no resize operation; ownership moves only via Swap.
// The zero value is a valid empty Buffer.
type Buffer[T any] struct {
	data  []T
	alloc api.Allocator[T]
}

// NewBuffer allocates n zero-valued elements on the Go heap.
// n == 0 performs no allocation.
func NewBuffer[T any](n int) Buffer[T] {
	return NewBufferFrom[T](nil, n)
}

// NewBufferFrom allocates n elements from alloc. A nil alloc means the heap.
func NewBufferFrom[T any](alloc api.Allocator[T], n int) Buffer[T] {
	if n < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "negative buffer length").
			WithContext("length", n))
	}
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	return Buffer[T]{data: alloc.Allocate(n), alloc: alloc}
}

// Len returns the number of element slots owned.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Ref returns a pointer to slot i. Only Go's runtime bounds check applies.
func (b *Buffer[T]) Ref(i int) *T { return &b.data[i] }

// Slice exposes the whole block. The view is valid until the Buffer is
// swapped or released.
func (b *Buffer[T]) Slice() []T { return b.data }

// Allocator reports where the block came from (nil for the zero Buffer).
func (b *Buffer[T]) Allocator() api.Allocator[T] { return b.alloc }

// Swap exchanges owned blocks in O(1); no element is copied.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
	b.alloc, other.alloc = other.alloc, b.alloc
}

// Release hands the block back to its allocator and leaves b empty.
func (b *Buffer[T]) Release() {
	if b.data != nil && b.alloc != nil {
		b.alloc.Free(b.data)
	}
	b.data = nil
}
