// File: pool/heap.go
// Author: momentics <momentics@gmail.com>

package pool

import "github.com/momentics/dynarray/api"

// HeapAllocator allocates blocks with make and leaves reclamation to the GC.
type HeapAllocator[T any] struct{}

// Allocate returns a fresh zero-valued block of exactly n elements.
func (HeapAllocator[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// Free is a no-op; the GC handles memory.
func (HeapAllocator[T]) Free([]T) {}

var _ api.Allocator[int] = HeapAllocator[int]{}
