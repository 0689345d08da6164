// File: container/codec.go
// Author: momentics <momentics@gmail.com>
//
// Text forms: fmt.Stringer and JSON arrays.

package container

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/momentics/dynarray/api"
)

// String formats the valid elements like a slice: [a b c].
func (a *DynamicArray[T]) String() string {
	return fmt.Sprint(a.Data())
}

// MarshalJSON encodes the valid elements as a JSON array.
func (a *DynamicArray[T]) MarshalJSON() ([]byte, error) {
	if a.IsEmpty() {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Data())
}

// UnmarshalJSON replaces the contents with a decoded JSON array. The result
// is size-tight; on error the array is left untouched.
func (a *DynamicArray[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return api.WrapError(api.ErrCodeDecode, "decode array", err)
	}
	tmp := FromSlice(items, WithAllocator(a.alloc))
	a.Swap(tmp)
	tmp.Release()
	return nil
}
