// Package ui implements the reactive-state, gadget-tree, window and focus
// subsystems of the toolkit.
//
// Every gadget property lives in a cell (State, Optional, Vec or Map).
// Cells are safe for concurrent use and notify registered listeners on
// every mutation. Listeners are named so reactive wiring can be attached
// and detached as tree membership changes; each notification runs as an
// independent task on the shared pool, never inline with the mutation.
package ui

import (
	"sync"

	"github.com/okapiui/okapi/internal/taskpool"
)

// listeners is the by-name callback registry shared by all cell kinds.
// At most one callback is registered per name; re-registering a name
// replaces the callback in place, keeping its notification position.
//
// Each listener owns a FIFO of pending events drained by at most one
// pool task at a time, so one listener observes the mutations of a cell
// in the order they were installed while distinct listeners still run
// concurrently. A stalled listener delays only its own queue, never the
// cell or its other listeners.
type listeners[E any] struct {
	mu      sync.RWMutex
	entries []*listenerEntry[E]
}

type listenerEntry[E any] struct {
	name string

	mu      sync.Mutex
	fn      func(E)
	pending []E
	running bool
}

func (l *listeners[E]) add(name string, fn func(E)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.entries {
		if entry.name == name {
			entry.mu.Lock()
			entry.fn = fn
			entry.mu.Unlock()
			return
		}
	}
	l.entries = append(l.entries, &listenerEntry[E]{name: name, fn: fn})
}

// remove is a no-op when the name was never registered.
func (l *listeners[E]) remove(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, entry := range l.entries {
		if entry.name == name {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// notify enqueues the event for every registered listener in
// registration order. It returns once every event is queued, not once
// the callbacks complete.
func (l *listeners[E]) notify(event E) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, entry := range l.entries {
		entry.dispatch(event)
	}
}

func (e *listenerEntry[E]) dispatch(event E) {
	e.mu.Lock()
	e.pending = append(e.pending, event)
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()
	taskpool.Go(e.drain)
}

func (e *listenerEntry[E]) drain() {
	for {
		e.mu.Lock()
		if len(e.pending) == 0 {
			e.running = false
			e.mu.Unlock()
			return
		}
		event := e.pending[0]
		e.pending = e.pending[1:]
		fn := e.fn
		e.mu.Unlock()
		fn(event)
	}
}

// State is a reactive cell holding a single value of type T.
type State[T any] struct {
	mu        sync.RWMutex
	value     T
	owner     GadgetRef
	listeners listeners[Change[T]]
}

// Change describes one State mutation. Old is the value the cell held
// before the triggering Set or Update installed New.
type Change[T any] struct {
	State *State[T]
	Owner GadgetRef
	Old   T
	New   T
}

// NewState creates a cell owned by the referenced gadget. A zero
// GadgetRef is valid for cells without an owning gadget (window cells).
func NewState[T any](owner GadgetRef, initial T) *State[T] {
	return &State[T]{value: initial, owner: owner}
}

// Get returns a copy of the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Owner returns the gadget this cell belongs to.
func (s *State[T]) Owner() GadgetRef {
	return s.owner
}

// Set installs a new value and notifies every listener. The value is
// installed under the write lock before any notification is scheduled,
// so a listener always observes a value at least as new as the change
// that triggered it. Set does not wait for listeners to run.
func (s *State[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.value
	s.value = value
	s.listeners.notify(Change[T]{State: s, Owner: s.owner, Old: old, New: value})
}

// Update mutates the value in place under the write lock, then notifies.
// This is the exclusive-access counterpart to Set for values that are
// expensive to copy or mutated field-wise.
func (s *State[T]) Update(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.value
	fn(&s.value)
	s.listeners.notify(Change[T]{State: s, Owner: s.owner, Old: old, New: s.value})
}

// Listen registers a named listener. Re-registering an existing name
// replaces the previous callback.
func (s *State[T]) Listen(name string, fn func(Change[T])) {
	s.listeners.add(name, fn)
}

// RemoveListener removes the named listener; no-op if absent.
func (s *State[T]) RemoveListener(name string) {
	s.listeners.remove(name)
}
