// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for dynarray users.
//
// Provides concurrent-safe state handling primitives including:
//   - a metrics registry with snapshot reads
//   - debug probe registration and state export
//   - adapters that publish allocator stats and container size/capacity
package control
