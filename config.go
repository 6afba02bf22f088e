package okapi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the okapi.toml runtime configuration file.
type Config struct {
	Pool  PoolConfig  `toml:"pool"`
	Input InputConfig `toml:"input"`
	Debug DebugConfig `toml:"debug"`
}

// PoolConfig sizes the shared task pool that runs cell listeners and
// focus negotiation votes.
type PoolConfig struct {
	// Workers is the number of goroutines draining the task queue.
	Workers int `toml:"workers"`
	// QueueDepth is the buffered task backlog before overflow kicks in.
	QueueDepth int `toml:"queue_depth"`
	// MaxOverflow bounds ad-hoc goroutines when the queue is full.
	MaxOverflow int `toml:"max_overflow"`
}

// InputConfig tunes input interpretation in the routing layer.
type InputConfig struct {
	// DragThresholdPx is the pointer travel before a press becomes a drag.
	DragThresholdPx float32 `toml:"drag_threshold_px"`
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	// FocusLog enables slog debug output from the focus tracker.
	FocusLog bool `toml:"focus_log"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Pool: PoolConfig{
			Workers:     8,
			QueueDepth:  1024,
			MaxOverflow: 256,
		},
		Input: InputConfig{
			DragThresholdPx: 5,
		},
	}
}

// LoadConfig reads an okapi.toml file, applying defaults for any field
// the file omits. Unknown keys are rejected so typos fail loudly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Pool.Workers < 1 {
		return fmt.Errorf("pool.workers must be at least 1, got %d", c.Pool.Workers)
	}
	if c.Pool.QueueDepth < 1 {
		return fmt.Errorf("pool.queue_depth must be at least 1, got %d", c.Pool.QueueDepth)
	}
	if c.Input.DragThresholdPx < 0 {
		return fmt.Errorf("input.drag_threshold_px must not be negative, got %g", c.Input.DragThresholdPx)
	}
	return nil
}
