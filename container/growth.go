// File: container/growth.go
// Author: momentics <momentics@gmail.com>
//
// The one place where capacity grows.

package container

// nextCapacity applies the doubling policy: at least minCapacity, at least
// twice the current capacity, and never less than one slot.
func (a *DynamicArray[T]) nextCapacity(minCapacity int) int {
	return max(minCapacity, 2*a.Capacity(), 1)
}

// relocate transfers the live elements into a fresh block of newCap slots
// and swaps it in. When gap >= 0 the elements from gap onward land one slot
// to the right, leaving slot gap zero-valued for the caller to fill.
// The new block is fully populated before the swap; the old block goes back
// to its allocator afterwards.
func (a *DynamicArray[T]) relocate(newCap, gap int) {
	buf := a.newBuffer(newCap)
	dst, src := buf.Slice(), a.Data()
	if gap < 0 {
		copy(dst, src)
	} else {
		copy(dst[:gap], src[:gap])
		copy(dst[gap+1:], src[gap:])
	}
	a.items.Swap(&buf)
	buf.Release()
}
