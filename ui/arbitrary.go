package ui

import "sync"

// Arbitrary is an immutable type-erased value slot. Widgets attach
// private state to shared gadget cells through it without the core
// knowing widget types. Retrieval is runtime-checked: asking for the
// wrong type yields false, never a panic.
//
// Two Arbitrary values are equal iff they share the same underlying
// box, so equality is identity, not structure.
type Arbitrary struct {
	box *anyBox
}

type anyBox struct {
	value any
}

type placeholder struct{}

// ArbitraryOf wraps a value.
func ArbitraryOf(value any) Arbitrary {
	return Arbitrary{box: &anyBox{value: value}}
}

// Placeholder returns the distinguished empty slot value.
func Placeholder() Arbitrary {
	return ArbitraryOf(placeholder{})
}

// IsPlaceholder reports whether the slot holds the placeholder.
func (a Arbitrary) IsPlaceholder() bool {
	return Is[placeholder](a)
}

// As extracts the wrapped value if it has type T.
func As[T any](a Arbitrary) (T, bool) {
	if a.box == nil {
		var zero T
		return zero, false
	}
	value, ok := a.box.value.(T)
	return value, ok
}

// Is reports whether the wrapped value has type T.
func Is[T any](a Arbitrary) bool {
	if a.box == nil {
		return false
	}
	_, ok := a.box.value.(T)
	return ok
}

// MutableArbitrary is a lock-guarded type-erased slot for state that is
// mutated in place rather than replaced. It is the backing store of a
// gadget's specialized-data cell.
//
// Equality is identity-based, like Arbitrary.
type MutableArbitrary struct {
	box *mutBox
}

type mutBox struct {
	mu    sync.Mutex
	value any
}

// MutableOf wraps a value.
func MutableOf(value any) MutableArbitrary {
	return MutableArbitrary{box: &mutBox{value: value}}
}

// MutablePlaceholder returns the distinguished empty slot value.
func MutablePlaceholder() MutableArbitrary {
	return MutableOf(placeholder{})
}

// IsPlaceholder reports whether the slot holds the placeholder.
func (m MutableArbitrary) IsPlaceholder() bool {
	if m.box == nil {
		return true
	}
	m.box.mu.Lock()
	defer m.box.mu.Unlock()
	_, ok := m.box.value.(placeholder)
	return ok
}

// Replace swaps in a new value and returns the previous one.
func (m MutableArbitrary) Replace(value any) any {
	m.box.mu.Lock()
	defer m.box.mu.Unlock()
	old := m.box.value
	m.box.value = value
	return old
}

// With runs fn with exclusive access to the wrapped value if it has
// type T, reporting whether the type matched.
func With[T any](m MutableArbitrary, fn func(*T)) bool {
	if m.box == nil {
		return false
	}
	m.box.mu.Lock()
	defer m.box.mu.Unlock()
	value, ok := m.box.value.(T)
	if !ok {
		return false
	}
	fn(&value)
	m.box.value = value
	return true
}

// MutableIs reports whether the wrapped value has type T.
func MutableIs[T any](m MutableArbitrary) bool {
	if m.box == nil {
		return false
	}
	m.box.mu.Lock()
	defer m.box.mu.Unlock()
	_, ok := m.box.value.(T)
	return ok
}
