package ui

import "sync"

// InputTuning adjusts how the routing layer interprets raw pointer
// state.
type InputTuning struct {
	// DragThreshold is the pointer travel, in logical pixels, before a
	// held button becomes a drag on the hovered child.
	DragThreshold float32
}

// DefaultInputTuning returns the built-in thresholds.
func DefaultInputTuning() InputTuning {
	return InputTuning{DragThreshold: 5}
}

var (
	tuningMu sync.RWMutex
	tuning   = DefaultInputTuning()
)

// SetInputTuning replaces the process-wide input tuning. Call during
// startup, before input starts flowing.
func SetInputTuning(t InputTuning) {
	tuningMu.Lock()
	defer tuningMu.Unlock()
	tuning = t
}

// CurrentInputTuning returns the process-wide input tuning.
func CurrentInputTuning() InputTuning {
	tuningMu.RLock()
	defer tuningMu.RUnlock()
	return tuning
}
