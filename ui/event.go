package ui

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Event is a gathered broadcast: every named handler runs as its own
// task, and Gather waits for all of them before returning their results
// in registration order. It is the negotiation primitive behind focus
// accept/release voting, where each handler contributes one boolean and
// the votes are combined by logical AND.
type Event[P, R any] struct {
	mu      sync.RWMutex
	entries []handlerEntry[P, R]
}

type handlerEntry[P, R any] struct {
	name string
	fn   func(P) R
}

// Handle registers a named handler. Re-registering an existing name
// replaces the previous handler in place.
func (e *Event[P, R]) Handle(name string, fn func(P) R) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.entries {
		if e.entries[i].name == name {
			e.entries[i].fn = fn
			return
		}
	}
	e.entries = append(e.entries, handlerEntry[P, R]{name: name, fn: fn})
}

// RemoveHandler removes the named handler; no-op if absent.
func (e *Event[P, R]) RemoveHandler(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.entries {
		if e.entries[i].name == name {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Gather runs every handler concurrently with param and returns their
// results in registration order once all have finished.
func (e *Event[P, R]) Gather(param P) []R {
	e.mu.RLock()
	entries := make([]handlerEntry[P, R], len(e.entries))
	copy(entries, e.entries)
	e.mu.RUnlock()

	results := make([]R, len(entries))
	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			results[i] = entry.fn(param)
			return nil
		})
	}
	_ = g.Wait() // handlers return no errors
	return results
}

// Broadcast runs every handler concurrently with param and waits for
// them, discarding results.
func (e *Event[P, R]) Broadcast(param P) {
	e.Gather(param)
}

// allTrue combines negotiation votes: an empty ballot passes.
func allTrue(votes []bool) bool {
	for _, v := range votes {
		if !v {
			return false
		}
	}
	return true
}
