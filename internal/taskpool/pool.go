// Package taskpool provides the process-wide asynchronous task pool that
// backs cell notification and focus negotiation. Listener callbacks are
// spawned here rather than invoked inline so a slow listener never blocks
// the cell that fired it.
//
// The pool follows an init-once/teardown lifecycle: call Init during
// process bootstrap and Shutdown on exit. Code that spawns before Init
// gets a pool with default sizing.
package taskpool

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Config sizes the shared pool.
type Config struct {
	// Workers is the number of goroutines draining the task queue.
	Workers int

	// QueueDepth is the buffer size of the task queue. Larger buffers
	// absorb notification bursts without spilling into overflow.
	QueueDepth int

	// MaxOverflow bounds the ad-hoc goroutines started when the queue
	// is full. Beyond this, Go blocks until the queue drains.
	MaxOverflow int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:     8,
		QueueDepth:  1024,
		MaxOverflow: 256,
	}
}

type pool struct {
	queue    chan func()
	overflow *semaphore.Weighted

	// closeMu makes the closed check and any queue send atomic with
	// respect to stop closing the channel: senders hold it for reading
	// across the send, stop holds it for writing across the close.
	closeMu sync.RWMutex
	closed  bool

	wg sync.WaitGroup
}

var (
	mu     sync.Mutex
	shared *pool
)

// Init starts the shared pool with the given configuration. Calling Init
// after the pool is already running (including implicitly via Go) has no
// effect and returns false.
func Init(cfg Config) bool {
	mu.Lock()
	defer mu.Unlock()
	if shared != nil {
		return false
	}
	shared = newPool(cfg)
	slog.Debug("taskpool: started",
		"workers", cfg.Workers, "queue", cfg.QueueDepth)
	return true
}

// Shutdown stops the shared pool after draining queued tasks. Tasks
// spawned concurrently with Shutdown may run on plain goroutines.
func Shutdown() {
	mu.Lock()
	p := shared
	shared = nil
	mu.Unlock()
	if p == nil {
		return
	}
	p.stop()
	slog.Debug("taskpool: stopped")
}

// Go schedules fn on the shared pool. The queue is tried first; when it
// is full a bounded number of overflow goroutines pick up the slack, and
// past that bound the call blocks until a worker frees the queue.
func Go(fn func()) {
	get().spawn(fn)
}

func get() *pool {
	mu.Lock()
	defer mu.Unlock()
	if shared == nil {
		shared = newPool(DefaultConfig())
	}
	return shared
}

func newPool(cfg Config) *pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueDepth < 1 {
		cfg.QueueDepth = 1
	}
	if cfg.MaxOverflow < 1 {
		cfg.MaxOverflow = 1
	}
	p := &pool{
		queue:    make(chan func(), cfg.QueueDepth),
		overflow: semaphore.NewWeighted(int64(cfg.MaxOverflow)),
	}
	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	defer p.wg.Done()
	for fn := range p.queue {
		fn()
	}
}

func (p *pool) spawn(fn func()) {
	p.closeMu.RLock()
	if p.closed {
		p.closeMu.RUnlock()
		// Shutting down - do not lose the task.
		go fn()
		return
	}
	select {
	case p.queue <- fn:
		p.closeMu.RUnlock()
		return
	default:
	}
	if p.overflow.TryAcquire(1) {
		p.closeMu.RUnlock()
		go func() {
			defer p.overflow.Release(1)
			fn()
		}()
		return
	}
	// Queue and overflow both full: block until a worker frees a slot.
	// The read lock keeps stop from closing the channel mid-send.
	p.queue <- fn
	p.closeMu.RUnlock()
}

// stop closes the queue exactly once and waits for the workers to drain
// it. Pending blocked sends complete before the close.
func (p *pool) stop() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.closeMu.Unlock()
	p.wg.Wait()
}
