package ui

import "sync"

// Optional is a reactive cell that may hold a value or be empty.
// Mutations report one of three distinct transitions to listeners:
// empty-to-present is a set, present-to-empty is an unset, and
// present-to-present is a change. Each transition kind has its own
// listener registry so observers subscribe only to what they react to.
type Optional[T any] struct {
	mu      sync.RWMutex
	value   T
	present bool
	owner   GadgetRef

	onSet    listeners[OptionalSet[T]]
	onChange listeners[OptionalChange[T]]
	onUnset  listeners[OptionalUnset[T]]
}

// OptionalSet reports an empty-to-present transition.
type OptionalSet[T any] struct {
	State *Optional[T]
	Owner GadgetRef
	Value T
}

// OptionalChange reports a present-to-present transition.
type OptionalChange[T any] struct {
	State *Optional[T]
	Owner GadgetRef
	Old   T
	New   T
}

// OptionalUnset reports a present-to-empty transition, carrying the
// value that was removed.
type OptionalUnset[T any] struct {
	State *Optional[T]
	Owner GadgetRef
	Old   T
}

// NewOptional creates an empty cell owned by the referenced gadget.
func NewOptional[T any](owner GadgetRef) *Optional[T] {
	return &Optional[T]{owner: owner}
}

// Get returns the current value and whether one is present.
func (o *Optional[T]) Get() (T, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value, o.present
}

// IsSet reports whether a value is present.
func (o *Optional[T]) IsSet() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.present
}

// Owner returns the gadget this cell belongs to.
func (o *Optional[T]) Owner() GadgetRef {
	return o.owner
}

// Put installs a value. An empty cell emits a set event; an occupied
// cell emits a change event carrying the displaced value.
func (o *Optional[T]) Put(value T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	old, had := o.value, o.present
	o.value = value
	o.present = true
	if had {
		o.onChange.notify(OptionalChange[T]{State: o, Owner: o.owner, Old: old, New: value})
	} else {
		o.onSet.notify(OptionalSet[T]{State: o, Owner: o.owner, Value: value})
	}
}

// Take empties the cell and returns the value that was present, if any.
// Emits an unset event only when a value was actually removed.
func (o *Optional[T]) Take() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	old, had := o.value, o.present
	var zero T
	o.value = zero
	o.present = false
	if had {
		o.onUnset.notify(OptionalUnset[T]{State: o, Owner: o.owner, Old: old})
	}
	return old, had
}

// ListenSet registers a named listener for empty-to-present transitions.
func (o *Optional[T]) ListenSet(name string, fn func(OptionalSet[T])) {
	o.onSet.add(name, fn)
}

// ListenChange registers a named listener for present-to-present transitions.
func (o *Optional[T]) ListenChange(name string, fn func(OptionalChange[T])) {
	o.onChange.add(name, fn)
}

// ListenUnset registers a named listener for present-to-empty transitions.
func (o *Optional[T]) ListenUnset(name string, fn func(OptionalUnset[T])) {
	o.onUnset.add(name, fn)
}

// RemoveListenerSet removes the named set listener; no-op if absent.
func (o *Optional[T]) RemoveListenerSet(name string) {
	o.onSet.remove(name)
}

// RemoveListenerChange removes the named change listener; no-op if absent.
func (o *Optional[T]) RemoveListenerChange(name string) {
	o.onChange.remove(name)
}

// RemoveListenerUnset removes the named unset listener; no-op if absent.
func (o *Optional[T]) RemoveListenerUnset(name string) {
	o.onUnset.remove(name)
}
