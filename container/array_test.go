package container_test

import (
	"errors"
	"testing"

	"github.com/momentics/dynarray/api"
	"github.com/momentics/dynarray/container"
	"github.com/momentics/dynarray/fake"
)

func expectContents[T comparable](t *testing.T, a *container.DynamicArray[T], want ...T) {
	t.Helper()
	if a.Size() != len(want) {
		t.Fatalf("size: got %d, want %d (%v)", a.Size(), len(want), a)
	}
	for i, w := range want {
		if got := a.Get(i); got != w {
			t.Fatalf("element %d: got %v, want %v", i, got, w)
		}
	}
}

func expectPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic %v does not match %v", r, target)
		}
	}()
	fn()
}

func TestZeroValueIsEmpty(t *testing.T) {
	var a container.DynamicArray[int]
	if !a.IsEmpty() || a.Size() != 0 || a.Capacity() != 0 {
		t.Fatalf("zero value not empty: size=%d cap=%d", a.Size(), a.Capacity())
	}
	a.PushBack(7)
	expectContents(t, &a, 7)
	if a.Capacity() != 1 {
		t.Errorf("capacity after first push: got %d, want 1", a.Capacity())
	}
}

func TestNewWithSize(t *testing.T) {
	for n := 0; n <= 16; n++ {
		a := container.NewWithSize[int](n)
		if a.Size() != n || a.Capacity() != n {
			t.Fatalf("n=%d: size=%d cap=%d", n, a.Size(), a.Capacity())
		}
		for i := 0; i < n; i++ {
			if a.Get(i) != 0 {
				t.Fatalf("n=%d: element %d not zero", n, i)
			}
		}
	}
}

func TestNewFilled(t *testing.T) {
	a := container.NewFilled(5, "x")
	expectContents(t, a, "x", "x", "x", "x", "x")
	if a.Capacity() != 5 {
		t.Errorf("capacity: got %d, want 5", a.Capacity())
	}
	if b := container.NewFilled(0, 3); !b.IsEmpty() || b.Capacity() != 0 {
		t.Errorf("empty fill: size=%d cap=%d", b.Size(), b.Capacity())
	}
}

func TestOf(t *testing.T) {
	a := container.Of(4, 5, 6)
	expectContents(t, a, 4, 5, 6)
	if a.Capacity() != 3 {
		t.Errorf("capacity: got %d, want 3", a.Capacity())
	}
	if e := container.Of[int](); !e.IsEmpty() || e.Capacity() != 0 {
		t.Errorf("empty literal: size=%d cap=%d", e.Size(), e.Capacity())
	}
}

func TestFromSliceDoesNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	a := container.FromSlice(src)
	src[0] = 100
	expectContents(t, a, 1, 2, 3)
}

func TestNewReserved(t *testing.T) {
	req := container.MakeReserveRequest(10)
	if req.Capacity() != 10 {
		t.Fatalf("request capacity: got %d", req.Capacity())
	}
	a := container.NewReserved[int](req)
	if !a.IsEmpty() || a.Capacity() != 10 {
		t.Fatalf("reserved: size=%d cap=%d", a.Size(), a.Capacity())
	}
	a.PushBack(1)
	if a.Capacity() != 10 {
		t.Errorf("push within reserve reallocated: cap=%d", a.Capacity())
	}
}

func TestNegativeCountPanics(t *testing.T) {
	expectPanicIs(t, api.ErrInvalidArgument, func() { container.NewWithSize[int](-1) })
	expectPanicIs(t, api.ErrInvalidArgument, func() { container.NewFilled(-2, 0) })
	expectPanicIs(t, api.ErrInvalidArgument, func() { container.Of(1).Resize(-1) })
}

func TestCloneIsDeepAndTight(t *testing.T) {
	a := container.Of(1, 2, 3)
	a.Reserve(10)
	b := a.Clone()
	if !container.Equal(a, b) {
		t.Fatalf("clone differs: %v vs %v", a, b)
	}
	if b.Capacity() != a.Size() {
		t.Errorf("clone capacity: got %d, want %d", b.Capacity(), a.Size())
	}
	b.Set(0, 42)
	b.PushBack(4)
	expectContents(t, a, 1, 2, 3)
}

func TestMoveStealsStorage(t *testing.T) {
	a := container.Of(1, 2, 3)
	before := a.Ref(0)
	b := a.Move()
	expectContents(t, b, 1, 2, 3)
	if a.Size() != 0 || a.Capacity() != 0 {
		t.Errorf("moved-from: size=%d cap=%d", a.Size(), a.Capacity())
	}
	if b.Ref(0) != before {
		t.Error("move copied elements instead of transferring storage")
	}
	a.PushBack(9)
	expectContents(t, a, 9)
	expectContents(t, b, 1, 2, 3)
}

func TestAssign(t *testing.T) {
	a := container.Of(1, 2)
	b := container.Of(7, 8, 9)
	b.Reserve(20)
	a.Assign(b)
	expectContents(t, a, 7, 8, 9)
	if a.Capacity() != 3 {
		t.Errorf("assigned capacity: got %d, want 3", a.Capacity())
	}
	a.Set(0, 0)
	expectContents(t, b, 7, 8, 9)

	capBefore := a.Capacity()
	a.Assign(a)
	expectContents(t, a, 0, 8, 9)
	if a.Capacity() != capBefore {
		t.Errorf("self-assign changed capacity: %d -> %d", capBefore, a.Capacity())
	}
}

func TestMoveAssignResetsSource(t *testing.T) {
	a := container.Of(1)
	b := container.Of(4, 5, 6)
	b.Reserve(10)
	a.MoveAssign(b)
	expectContents(t, a, 4, 5, 6)
	if a.Capacity() != 3 {
		t.Errorf("capacity: got %d, want 3", a.Capacity())
	}
	if b.Size() != 0 || b.Capacity() != 0 {
		t.Errorf("source not reset: size=%d cap=%d", b.Size(), b.Capacity())
	}

	a.MoveAssign(a)
	expectContents(t, a, 4, 5, 6)
}

func TestSwap(t *testing.T) {
	a := container.Of(1, 2, 3)
	b := container.NewReserved[int](container.MakeReserveRequest(8))
	b.PushBack(9)
	a.Swap(b)
	expectContents(t, a, 9)
	expectContents(t, b, 1, 2, 3)
	if a.Capacity() != 8 || b.Capacity() != 3 {
		t.Errorf("capacities: a=%d b=%d", a.Capacity(), b.Capacity())
	}
}

func TestAllocatorBlocksReturnedOnGrowth(t *testing.T) {
	fa := fake.NewAllocator[int]()
	a := container.New(container.WithAllocator[int](fa))
	a.PushBack(1)
	a.PushBack(2)
	a.PushBack(3)

	wantAlloc := []int{1, 2, 4}
	if len(fa.Allocated) != len(wantAlloc) {
		t.Fatalf("allocations: got %v, want %v", fa.Allocated, wantAlloc)
	}
	for i, n := range wantAlloc {
		if fa.Allocated[i] != n {
			t.Fatalf("allocations: got %v, want %v", fa.Allocated, wantAlloc)
		}
	}
	if fa.Live() != 1 {
		t.Errorf("live blocks: got %d, want 1", fa.Live())
	}

	c := a.Clone()
	if fa.Live() != 2 {
		t.Errorf("clone should allocate from the same allocator, live=%d", fa.Live())
	}
	c.Release()
	a.Release()
	if fa.Live() != 0 {
		t.Errorf("blocks leaked: live=%d", fa.Live())
	}
	if !a.IsEmpty() || a.Capacity() != 0 {
		t.Errorf("released array: size=%d cap=%d", a.Size(), a.Capacity())
	}
}

func TestAt(t *testing.T) {
	a := container.Of(10, 20, 30)
	a.Reserve(8)
	for i := 0; i < a.Size(); i++ {
		v, err := a.At(i)
		if err != nil || v != (i+1)*10 {
			t.Fatalf("At(%d) = %d, %v", i, v, err)
		}
	}
	for _, i := range []int{-1, 3, 4, 7, 100} {
		_, err := a.At(i)
		if !errors.Is(err, api.ErrOutOfRange) {
			t.Fatalf("At(%d): expected out of range, got %v", i, err)
		}
	}

	_, err := a.At(5)
	var aerr *api.Error
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if aerr.Context["index"] != 5 || aerr.Context["size"] != 3 {
		t.Errorf("error context: %+v", aerr.Context)
	}
}

func TestAtRefMutates(t *testing.T) {
	a := container.Of("a", "b")
	p, err := a.AtRef(1)
	if err != nil {
		t.Fatal(err)
	}
	*p = "z"
	expectContents(t, a, "a", "z")
	if _, err := a.AtRef(2); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("AtRef(2): got %v", err)
	}
}

func TestFrontBack(t *testing.T) {
	a := container.Of(3, 4, 5)
	if a.Front() != 3 || a.Back() != 5 {
		t.Errorf("front/back: %d %d", a.Front(), a.Back())
	}
}
