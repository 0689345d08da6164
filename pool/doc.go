// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage layer for dynarray.
// Buffer owns exactly one fixed-length element block and never resizes it;
// growth policy lives in the container package. Blocks come from an
// api.Allocator: HeapAllocator for plain GC-managed memory, BlockPool for
// size-class recycling of released blocks.
// See buffer.go, heap.go and blockpool.go for implementation details.
package pool
