// File: container/reserve.go
// Author: momentics <momentics@gmail.com>

package container

// ReserveRequest asks a constructor for spare capacity without elements.
type ReserveRequest struct {
	capacity int
}

// MakeReserveRequest wraps a capacity for NewReserved.
func MakeReserveRequest(capacity int) ReserveRequest {
	return ReserveRequest{capacity: capacity}
}

// Capacity returns the requested capacity.
func (r ReserveRequest) Capacity() int { return r.capacity }
