// Package okapi is the public facade of the okapi UI core: reactive
// cells, the gadget tree, windows and focus tracking. Applications call
// Init once at startup, build a gadget tree with the ui package, and
// hand it to a rendering backend.
//
// The heavy lifting lives in the ui package; this package re-exports
// the common types and owns runtime configuration and the shared task
// pool lifecycle.
package okapi

import (
	"log/slog"

	"github.com/okapiui/okapi/internal/taskpool"
	"github.com/okapiui/okapi/ui"
)

// Re-exports of the core types for consumer convenience.
type (
	Gadget       = ui.Gadget
	GadgetRef    = ui.GadgetRef
	Window       = ui.Window
	WindowRef    = ui.WindowRef
	Backend      = ui.Backend
	FocusTracker = ui.FocusTracker
	Point        = ui.Point
	Bounds       = ui.Bounds
	Key          = ui.Key
	MouseButton  = ui.MouseButton
	Modifiers    = ui.Modifiers
	Brush        = ui.Brush
	Batch        = ui.Batch
)

// Init applies the configuration: it starts the shared task pool,
// installs the input tuning, and raises the log level when focus
// debugging is on. It is safe to skip for casual use; the pool then
// starts itself with defaults on first dispatch.
func Init(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	taskpool.Init(taskpool.Config{
		Workers:     cfg.Pool.Workers,
		QueueDepth:  cfg.Pool.QueueDepth,
		MaxOverflow: cfg.Pool.MaxOverflow,
	})
	ui.SetInputTuning(ui.InputTuning{
		DragThreshold: cfg.Input.DragThresholdPx,
	})
	if cfg.Debug.FocusLog {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return nil
}

// Shutdown drains and stops the shared task pool.
func Shutdown() {
	taskpool.Shutdown()
}

// NewGadget creates a standalone gadget with default cell values.
func NewGadget() Gadget {
	return ui.NewGadget()
}

// NewLayout creates a container gadget with pointer routing wired.
func NewLayout() Gadget {
	return ui.NewLayout()
}

// NewWindow creates a window around a root gadget.
func NewWindow(backend Backend, root Gadget) Window {
	return ui.NewWindow(backend, root)
}
