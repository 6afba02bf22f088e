package ui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVecPushEmitsAddAtTail(t *testing.T) {
	v := NewVec[string](GadgetRef{})
	adds := make(chan VecAdd[string], 8)
	v.ListenAdd("test", func(ev VecAdd[string]) { adds <- ev })

	v.Push("a")
	v.Push("b")

	if ev := recv(t, adds); ev.Index != 0 || ev.New != "a" {
		t.Errorf("first add = %d/%q, want 0/a", ev.Index, ev.New)
	}
	if ev := recv(t, adds); ev.Index != 1 || ev.New != "b" {
		t.Errorf("second add = %d/%q, want 1/b", ev.Index, ev.New)
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestVecRemoveAt(t *testing.T) {
	v := NewVec[string](GadgetRef{})
	removes := make(chan VecRemove[string], 8)
	v.ListenRemove("test", func(ev VecRemove[string]) { removes <- ev })
	v.Push("a")
	v.Push("b")
	v.Push("c")

	old, err := v.RemoveAt(1)
	if err != nil || old != "b" {
		t.Fatalf("RemoveAt(1) = %q, %v", old, err)
	}
	ev := recv(t, removes)
	if ev.Index != 1 || ev.Old != "b" {
		t.Errorf("remove event = %d/%q, want 1/b", ev.Index, ev.Old)
	}

	// A missing index is a distinct failure, not a silent no-op.
	if _, err := v.RemoveAt(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RemoveAt(5) error = %v, want ErrIndexOutOfRange", err)
	}
	expectNone(t, removes)
}

func TestVecSet(t *testing.T) {
	v := NewVec[int](GadgetRef{})
	sets := make(chan VecSet[int], 8)
	v.ListenSet("test", func(ev VecSet[int]) { sets <- ev })
	v.Push(10)

	if err := v.Set(0, 20); err != nil {
		t.Fatalf("Set(0, 20) = %v", err)
	}
	ev := recv(t, sets)
	if ev.Index != 0 || ev.Old != 10 || ev.New != 20 {
		t.Errorf("set event = %d/%d->%d, want 0/10->20", ev.Index, ev.Old, ev.New)
	}

	if err := v.Set(3, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Set(3, 1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestVecRemoveByValue(t *testing.T) {
	v := NewVec[string](GadgetRef{})
	removes := make(chan VecRemove[string], 8)
	v.ListenRemove("test", func(ev VecRemove[string]) { removes <- ev })
	v.Push("a")
	v.Push("b")

	if !v.Remove("a") {
		t.Fatal("Remove(a) should find the element")
	}
	if ev := recv(t, removes); ev.Index != 0 || ev.Old != "a" {
		t.Errorf("remove event = %d/%q, want 0/a", ev.Index, ev.Old)
	}

	// Absence is a normal outcome.
	if v.Remove("nope") {
		t.Error("Remove(nope) should report not found")
	}
	expectNone(t, removes)
}

func TestVecPopAndClear(t *testing.T) {
	v := NewVec[int](GadgetRef{})
	removes := make(chan VecRemove[int], 8)
	v.ListenRemove("test", func(ev VecRemove[int]) { removes <- ev })

	if _, ok := v.Pop(); ok {
		t.Error("Pop() on empty vec should report empty")
	}
	v.Push(1)
	v.Push(2)

	value, ok := v.Pop()
	if !ok || value != 2 {
		t.Fatalf("Pop() = %d, %v, want 2, true", value, ok)
	}
	if ev := recv(t, removes); ev.Index != 1 || ev.Old != 2 {
		t.Errorf("pop event = %d/%d, want 1/2", ev.Index, ev.Old)
	}

	v.Push(3)
	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len() after Clear() = %d", v.Len())
	}
	// Clear removes back to front, one event per element.
	if ev := recv(t, removes); ev.Index != 1 || ev.Old != 3 {
		t.Errorf("clear event = %d/%d, want 1/3", ev.Index, ev.Old)
	}
	if ev := recv(t, removes); ev.Index != 0 || ev.Old != 1 {
		t.Errorf("clear event = %d/%d, want 0/1", ev.Index, ev.Old)
	}
}

func TestVecLookups(t *testing.T) {
	v := NewVec[string](GadgetRef{})
	v.Push("x")
	v.Push("y")

	if got := v.IndexOf("y"); got != 1 {
		t.Errorf("IndexOf(y) = %d, want 1", got)
	}
	if got := v.IndexOf("z"); got != -1 {
		t.Errorf("IndexOf(z) = %d, want -1", got)
	}
	if !v.Contains("x") || v.Contains("z") {
		t.Error("Contains misreported membership")
	}
	if item, ok := v.At(0); !ok || item != "x" {
		t.Errorf("At(0) = %q, %v", item, ok)
	}
	if _, ok := v.At(9); ok {
		t.Error("At(9) should report out of range")
	}
}
