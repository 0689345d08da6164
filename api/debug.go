// Package api
// Author: momentics
//
// Live debug support: named probes reporting container and allocator state.

package api

// Debug exposes runtime introspection.
type Debug interface {
	// DumpState emits a snapshot of every registered probe.
	DumpState() map[string]any

	// RegisterProbe registers or replaces a named probe.
	RegisterProbe(name string, fn func() any)
}

// Sized is implemented by anything that tracks a logical size inside an
// allocated capacity.
type Sized interface {
	Size() int
	Capacity() int
	IsEmpty() bool
}
