// Package container
// Author: momentics <momentics@gmail.com>
//
// DynamicArray is a generic growable array with explicit size/capacity
// bookkeeping, a single doubling growth policy, checked and unchecked
// element access, positional insert/erase and copy/move helpers.
//
// Storage is owned through a pool.Buffer; the array decides every growth
// step and the buffer never resizes itself. A growth step builds the new
// block completely before swapping it in, then hands the old block back to
// its allocator.
//
// A DynamicArray is not safe for concurrent mutation. Copying the struct
// value aliases its storage; use Clone for an independent copy.
package container
