// Package api
// Author: momentics
//
// Element block allocation contracts shared by buffers and containers.
//
// A block is a contiguous []T; only its length is meaningful to the holder,
// spare capacity belongs to the allocator. Whoever holds
// a block owns it exclusively until it is handed back through Free.

package api

// Allocator hands out and takes back element blocks.
type Allocator[T any] interface {
	// Allocate returns a zero-valued block with len == n (cap may be
	// larger). n == 0 yields nil.
	Allocate(n int) []T

	// Free returns a block previously obtained from Allocate.
	// The caller must not touch the block afterwards.
	Free(block []T)
}

// StatsAllocator is an Allocator that also reports accounting data.
type StatsAllocator[T any] interface {
	Allocator[T]

	// Stats exposes allocation/reuse counters for observability.
	Stats() AllocatorStats
}

// AllocatorStats aggregates block allocation/reuse stats.
type AllocatorStats struct {
	TotalAlloc int64
	TotalFree  int64
	Reused     int64
	Dropped    int64
	InUse      int64
	Classes    map[int]int64 // size class -> blocks retained
}
