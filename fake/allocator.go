// Package fake provides test doubles for dynarray contracts.
package fake

import (
	"sync"

	"github.com/momentics/dynarray/api"
)

// Allocator implements api.Allocator and records every call.
type Allocator[T any] struct {
	mu        sync.Mutex
	Allocated []int // requested lengths, in call order
	Freed     []int // lengths of freed blocks, in call order
}

// NewAllocator creates an empty recording allocator.
func NewAllocator[T any]() *Allocator[T] {
	return &Allocator[T]{}
}

func (f *Allocator[T]) Allocate(n int) []T {
	f.mu.Lock()
	f.Allocated = append(f.Allocated, n)
	f.mu.Unlock()
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

func (f *Allocator[T]) Free(block []T) {
	f.mu.Lock()
	f.Freed = append(f.Freed, len(block))
	f.mu.Unlock()
}

// Live returns allocations (of non-zero length) not yet freed.
func (f *Allocator[T]) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, size := range f.Allocated {
		if size > 0 {
			n++
		}
	}
	return n - len(f.Freed)
}

var _ api.Allocator[int] = (*Allocator[int])(nil)
