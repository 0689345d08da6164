// File: container/access.go
// Author: momentics <momentics@gmail.com>
//
// Element access. Get/Ref/Set trust the caller like a raw array would;
// At/AtRef validate the index against Size().

package container

import "github.com/momentics/dynarray/api"

// Get returns element i without checking it against Size().
func (a *DynamicArray[T]) Get(i int) T {
	return *a.items.Ref(i)
}

// Ref returns a pointer to element i without checking it against Size().
// The pointer is invalidated by any reallocation.
func (a *DynamicArray[T]) Ref(i int) *T {
	return a.items.Ref(i)
}

// Set stores v at index i without checking it against Size().
func (a *DynamicArray[T]) Set(i int, v T) {
	*a.items.Ref(i) = v
}

// Front returns the first element. The array must not be empty.
func (a *DynamicArray[T]) Front() T {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *DynamicArray[T]) Back() T {
	return a.Get(a.size - 1)
}

// At returns element i, or an error matching api.ErrOutOfRange when
// i is not in [0, Size()).
func (a *DynamicArray[T]) At(i int) (T, error) {
	p, err := a.AtRef(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef is the mutable form of At.
func (a *DynamicArray[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= a.Size() {
		return nil, api.NewError(api.ErrCodeOutOfRange, "index is out of range").
			WithContext("index", i).
			WithContext("size", a.Size())
	}
	return a.items.Ref(i), nil
}
