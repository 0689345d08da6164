// File: container/mutate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity management and positional mutation.

package container

import "github.com/momentics/dynarray/api"

func invalidPosition(op string, pos, size int) *api.Error {
	return api.NewError(api.ErrCodeInvalidPosition, op+": position outside array").
		WithContext("position", pos).
		WithContext("size", size)
}

// Reserve grows capacity to exactly newCapacity when it exceeds the current
// capacity; otherwise it does nothing. Size is unchanged.
func (a *DynamicArray[T]) Reserve(newCapacity int) {
	if newCapacity <= a.Capacity() {
		return
	}
	a.relocate(newCapacity, -1)
}

// Resize changes the logical size.
//
// Shrinking only drops elements from the logical range; capacity is kept.
// Growing within capacity appends zero values. Growing past capacity moves
// to a block of max(newSize, 2*Capacity()) slots and makes every slot valid,
// so Size() == Capacity() afterwards.
func (a *DynamicArray[T]) Resize(newSize int) {
	checkCount("Resize", newSize)
	switch {
	case newSize < a.size:
		clear(a.items.Slice()[newSize:a.size])
		a.size = newSize
	case newSize <= a.Capacity():
		clear(a.items.Slice()[a.size:newSize])
		a.size = newSize
	default:
		newCap := a.nextCapacity(newSize)
		a.relocate(newCap, -1)
		a.size = newCap
	}
}

// Clear sets the size to zero; capacity and storage are retained.
func (a *DynamicArray[T]) Clear() {
	clear(a.Data())
	a.size = 0
}

// PushBack appends v, doubling capacity when the array is full.
func (a *DynamicArray[T]) PushBack(v T) {
	if a.size == a.Capacity() {
		a.relocate(a.nextCapacity(a.size+1), -1)
	}
	*a.items.Ref(a.size) = v
	a.size++
}

// PopBack drops the last element. It does nothing on an empty array.
func (a *DynamicArray[T]) PopBack() {
	if a.size == 0 {
		return
	}
	a.size--
	var zero T
	*a.items.Ref(a.size) = zero
}

// Insert places v at pos, shifting [pos, Size()) one slot right, and
// returns pos. pos == Size() appends. Panics when pos is outside
// [0, Size()].
func (a *DynamicArray[T]) Insert(pos int, v T) int {
	if pos < 0 || pos > a.size {
		panic(invalidPosition("Insert", pos, a.size))
	}
	if a.size < a.Capacity() {
		s := a.items.Slice()
		copy(s[pos+1:a.size+1], s[pos:a.size])
	} else {
		a.relocate(a.nextCapacity(a.size+1), pos)
	}
	*a.items.Ref(pos) = v
	a.size++
	return pos
}

// Erase removes the element at pos, shifting the tail one slot left, and
// returns pos. Panics when pos is outside [0, Size()).
func (a *DynamicArray[T]) Erase(pos int) int {
	if pos < 0 || pos >= a.size {
		panic(invalidPosition("Erase", pos, a.size))
	}
	s := a.items.Slice()
	copy(s[pos:a.size-1], s[pos+1:a.size])
	a.size--
	var zero T
	s[a.size] = zero
	return pos
}

// InsertAt is Insert addressed by iterator. The returned iterator points at
// the inserted element.
func (a *DynamicArray[T]) InsertAt(it Iterator[T], v T) Iterator[T] {
	if it.a != a {
		panic(invalidPosition("InsertAt", it.i, a.size))
	}
	return Iterator[T]{a: a, i: a.Insert(it.i, v)}
}

// EraseAt is Erase addressed by iterator. The returned iterator points at
// the element that followed the erased one.
func (a *DynamicArray[T]) EraseAt(it Iterator[T]) Iterator[T] {
	if it.a != a {
		panic(invalidPosition("EraseAt", it.i, a.size))
	}
	return Iterator[T]{a: a, i: a.Erase(it.i)}
}
