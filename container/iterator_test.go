package container_test

import (
	"testing"

	"github.com/momentics/dynarray/api"
	"github.com/momentics/dynarray/container"
)

// find returns the iterator of the first element equal to v, or End().
func find[T comparable](a *container.DynamicArray[T], v T) container.Iterator[T] {
	for it := a.Begin(); !it.Equal(a.End()); it = it.Next() {
		if it.Value() == v {
			return it
		}
	}
	return a.End()
}

func TestIteratorTraversal(t *testing.T) {
	a := container.Of(5, 6, 7)
	if d := a.End().Distance(a.Begin()); d != a.Size() {
		t.Fatalf("distance: got %d, want %d", d, a.Size())
	}
	var got []int
	for it := a.Begin(); it.Less(a.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	if len(got) != 3 || got[0] != 5 || got[2] != 7 {
		t.Fatalf("forward traversal: %v", got)
	}

	it := a.End().Prev()
	if it.Value() != 7 || !it.Valid() {
		t.Errorf("End().Prev(): %d valid=%v", it.Value(), it.Valid())
	}
	if a.End().Valid() {
		t.Error("End() must not be valid")
	}
	it = a.Begin().Add(1)
	it.Set(60)
	*a.IteratorAt(2).Ref() = 70
	expectContents(t, a, 5, 60, 70)
}

func TestEraseAtScenario(t *testing.T) {
	a := container.Of(1, 2, 3, 4)
	it := a.EraseAt(find(a, 2))
	expectContents(t, a, 1, 3, 4)
	if it.Index() != 1 || it.Value() != 3 {
		t.Errorf("returned iterator: index=%d value=%d", it.Index(), it.Value())
	}
}

func TestInsertAtScenario(t *testing.T) {
	a := container.Of(1, 2, 3)
	it := a.InsertAt(find(a, 2), 99)
	expectContents(t, a, 1, 99, 2, 3)
	if it.Index() != 1 || it.Value() != 99 {
		t.Errorf("returned iterator: index=%d value=%d", it.Index(), it.Value())
	}
	a.InsertAt(a.End(), 100)
	expectContents(t, a, 1, 99, 2, 3, 100)
}

func TestForeignIteratorPanics(t *testing.T) {
	a := container.Of(1, 2)
	b := container.Of(1, 2)
	expectPanicIs(t, api.ErrInvalidPosition, func() { a.InsertAt(b.Begin(), 0) })
	expectPanicIs(t, api.ErrInvalidPosition, func() { a.EraseAt(b.Begin()) })
}

func TestSequences(t *testing.T) {
	a := container.Of(1, 2, 3, 4)

	sum := 0
	for v := range a.Values() {
		sum += v
	}
	if sum != 10 {
		t.Errorf("Values sum: %d", sum)
	}

	for i, v := range a.All() {
		if v != i+1 {
			t.Errorf("All: index %d value %d", i, v)
		}
		if i == 1 {
			break
		}
	}

	var back []int
	for _, v := range a.Backward() {
		back = append(back, v)
	}
	if len(back) != 4 || back[0] != 4 || back[3] != 1 {
		t.Errorf("Backward: %v", back)
	}

	var empty container.DynamicArray[int]
	for range empty.All() {
		t.Fatal("empty array yielded an element")
	}
}
