package ui

import (
	"fmt"
	"sync"
)

// Map is a reactive cell holding a keyed collection. All mutations emit
// one unified event carrying the key and the old and new values, either
// of which may be absent: insert has no old, delete has no new, update
// has both.
type Map[K comparable, V any] struct {
	mu        sync.RWMutex
	items     map[K]V
	owner     GadgetRef
	listeners listeners[MapEvent[K, V]]
}

// MapEvent reports one Map mutation. HadOld/HasNew distinguish insert,
// update and delete.
type MapEvent[K comparable, V any] struct {
	State  *Map[K, V]
	Owner  GadgetRef
	Key    K
	Old    V
	New    V
	HadOld bool
	HasNew bool
}

// NewMap creates an empty map cell owned by the referenced gadget.
func NewMap[K comparable, V any](owner GadgetRef) *Map[K, V] {
	return &Map[K, V]{items: make(map[K]V), owner: owner}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Get returns the value for key and whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[key]
	return value, ok
}

// Snapshot returns a copy of the map contents.
func (m *Map[K, V]) Snapshot() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]V, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}

// Owner returns the gadget this cell belongs to.
func (m *Map[K, V]) Owner() GadgetRef {
	return m.owner
}

// Set inserts or updates the entry for key.
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, had := m.items[key]
	m.items[key] = value
	m.listeners.notify(MapEvent[K, V]{
		State: m, Owner: m.owner, Key: key,
		Old: old, New: value, HadOld: had, HasNew: true,
	})
}

// Delete removes the entry for key and returns the removed value.
// Deleting a missing key is a caller error, distinct from deleting
// nothing.
func (m *Map[K, V]) Delete(key K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, had := m.items[key]
	if !had {
		var zero V
		return zero, fmt.Errorf("map delete %v: %w", key, ErrKeyNotFound)
	}
	delete(m.items, key)
	m.listeners.notify(MapEvent[K, V]{
		State: m, Owner: m.owner, Key: key,
		Old: old, HadOld: true, HasNew: false,
	})
	return old, nil
}

// Listen registers a named listener. Re-registering an existing name
// replaces the previous callback.
func (m *Map[K, V]) Listen(name string, fn func(MapEvent[K, V])) {
	m.listeners.add(name, fn)
}

// RemoveListener removes the named listener; no-op if absent.
func (m *Map[K, V]) RemoveListener(name string) {
	m.listeners.remove(name)
}
