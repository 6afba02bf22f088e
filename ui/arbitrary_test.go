package ui

import "testing"

type fakeWidgetState struct {
	clicks int
}

func TestArbitraryTypedAccess(t *testing.T) {
	a := ArbitraryOf(fakeWidgetState{clicks: 3})

	if !Is[fakeWidgetState](a) {
		t.Error("Is should match the stored type")
	}
	if Is[string](a) {
		t.Error("Is should reject a different type")
	}
	got, ok := As[fakeWidgetState](a)
	if !ok || got.clicks != 3 {
		t.Errorf("As = %+v, %v", got, ok)
	}
	if _, ok := As[int](a); ok {
		t.Error("As with wrong type should report false, not panic")
	}
}

func TestArbitraryIdentityEquality(t *testing.T) {
	a := ArbitraryOf("x")
	b := ArbitraryOf("x")
	if a == b {
		t.Error("distinct boxes must not compare equal")
	}
	c := a
	if a != c {
		t.Error("copies of the same box must compare equal")
	}
	if !Placeholder().IsPlaceholder() {
		t.Error("Placeholder should report itself")
	}
	if a.IsPlaceholder() {
		t.Error("a real value is not a placeholder")
	}
}

func TestMutableArbitrary(t *testing.T) {
	m := MutableOf(fakeWidgetState{})

	ok := With(m, func(s *fakeWidgetState) {
		s.clicks++
	})
	if !ok {
		t.Fatal("With should match the stored type")
	}
	With(m, func(s *fakeWidgetState) {
		if s.clicks != 1 {
			t.Errorf("clicks = %d, want 1", s.clicks)
		}
	})

	if With(m, func(s *string) {}) {
		t.Error("With on wrong type should report false")
	}
	if !MutableIs[fakeWidgetState](m) || MutableIs[int](m) {
		t.Error("MutableIs misreported the stored type")
	}

	old := m.Replace("swapped")
	if _, ok := old.(fakeWidgetState); !ok {
		t.Errorf("Replace returned %T, want fakeWidgetState", old)
	}
	if !MutableIs[string](m) {
		t.Error("Replace should install the new value")
	}
	if MutablePlaceholder().IsPlaceholder() != true {
		t.Error("MutablePlaceholder should report itself")
	}
}
