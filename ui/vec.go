package ui

import (
	"fmt"
	"sync"
)

// Vec is a reactive cell holding an ordered list. Mutations emit
// add, set and remove events carrying the affected index along with the
// old/new values read under the same lock that performed the mutation,
// so listeners can mirror the list incrementally without re-reading it.
type Vec[T comparable] struct {
	mu    sync.RWMutex
	items []T
	owner GadgetRef

	onAdd    listeners[VecAdd[T]]
	onSet    listeners[VecSet[T]]
	onRemove listeners[VecRemove[T]]
}

// VecAdd reports an element inserted at Index.
type VecAdd[T comparable] struct {
	State *Vec[T]
	Owner GadgetRef
	Index int
	New   T
}

// VecSet reports the element at Index being replaced.
type VecSet[T comparable] struct {
	State *Vec[T]
	Owner GadgetRef
	Index int
	Old   T
	New   T
}

// VecRemove reports the element previously at Index being removed.
type VecRemove[T comparable] struct {
	State *Vec[T]
	Owner GadgetRef
	Index int
	Old   T
}

// NewVec creates an empty list cell owned by the referenced gadget.
func NewVec[T comparable](owner GadgetRef) *Vec[T] {
	return &Vec[T]{owner: owner}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}

// At returns the element at index i, or false if out of range.
func (v *Vec[T]) At(i int) (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

// Values returns a copy of the list.
func (v *Vec[T]) Values() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// IndexOf returns the index of the first element equal to value, or -1.
func (v *Vec[T]) IndexOf(value T) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for i, item := range v.items {
		if item == value {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds an element equal to value.
func (v *Vec[T]) Contains(value T) bool {
	return v.IndexOf(value) >= 0
}

// Owner returns the gadget this cell belongs to.
func (v *Vec[T]) Owner() GadgetRef {
	return v.owner
}

// Push appends value, emitting an add event whose index is the length
// of the list before the push.
func (v *Vec[T]) Push(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = append(v.items, value)
	v.onAdd.notify(VecAdd[T]{State: v, Owner: v.owner, Index: len(v.items) - 1, New: value})
}

// Pop removes and returns the last element. No event is emitted when
// the list is already empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(v.items) - 1
	value := v.items[last]
	v.items = v.items[:last]
	v.onRemove.notify(VecRemove[T]{State: v, Owner: v.owner, Index: last, Old: value})
	return value, true
}

// Set replaces the element at index i. A set event carries both the
// displaced and the new value.
func (v *Vec[T]) Set(i int, value T) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.items) {
		return fmt.Errorf("vec set %d of %d: %w", i, len(v.items), ErrIndexOutOfRange)
	}
	old := v.items[i]
	v.items[i] = value
	v.onSet.notify(VecSet[T]{State: v, Owner: v.owner, Index: i, Old: old, New: value})
	return nil
}

// RemoveAt removes and returns the element at index i. Removing a
// non-existent index is a caller error, distinct from removing nothing.
func (v *Vec[T]) RemoveAt(i int) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, fmt.Errorf("vec remove %d of %d: %w", i, len(v.items), ErrIndexOutOfRange)
	}
	old := v.items[i]
	v.items = append(v.items[:i], v.items[i+1:]...)
	v.onRemove.notify(VecRemove[T]{State: v, Owner: v.owner, Index: i, Old: old})
	return old, nil
}

// Remove deletes the first element equal to value, reporting whether
// one was found. Absence is a normal outcome, not an error.
func (v *Vec[T]) Remove(value T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, item := range v.items {
		if item == value {
			v.items = append(v.items[:i], v.items[i+1:]...)
			v.onRemove.notify(VecRemove[T]{State: v, Owner: v.owner, Index: i, Old: item})
			return true
		}
	}
	return false
}

// Clear removes all elements back to front, emitting a remove event for
// each.
func (v *Vec[T]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for len(v.items) > 0 {
		last := len(v.items) - 1
		value := v.items[last]
		v.items = v.items[:last]
		v.onRemove.notify(VecRemove[T]{State: v, Owner: v.owner, Index: last, Old: value})
	}
}

// ListenAdd registers a named listener for insertions.
func (v *Vec[T]) ListenAdd(name string, fn func(VecAdd[T])) {
	v.onAdd.add(name, fn)
}

// ListenSet registers a named listener for in-place replacements.
func (v *Vec[T]) ListenSet(name string, fn func(VecSet[T])) {
	v.onSet.add(name, fn)
}

// ListenRemove registers a named listener for removals.
func (v *Vec[T]) ListenRemove(name string, fn func(VecRemove[T])) {
	v.onRemove.add(name, fn)
}

// RemoveListenerAdd removes the named add listener; no-op if absent.
func (v *Vec[T]) RemoveListenerAdd(name string) {
	v.onAdd.remove(name)
}

// RemoveListenerSet removes the named set listener; no-op if absent.
func (v *Vec[T]) RemoveListenerSet(name string) {
	v.onSet.remove(name)
}

// RemoveListenerRemove removes the named remove listener; no-op if absent.
func (v *Vec[T]) RemoveListenerRemove(name string) {
	v.onRemove.remove(name)
}
