package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/okapiui/okapi"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "check-config":
		err = checkConfig(args)
	case "version":
		fmt.Printf("okapi version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// checkConfig loads and validates an okapi.toml, printing the resolved
// settings so defaults are visible too.
func checkConfig(args []string) error {
	path := "okapi.toml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := okapi.LoadConfig(path)
	if err != nil {
		return err
	}
	if cfg.Debug.FocusLog {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	fmt.Printf("%s is valid\n", path)
	fmt.Printf("  pool.workers       = %d\n", cfg.Pool.Workers)
	fmt.Printf("  pool.queue_depth   = %d\n", cfg.Pool.QueueDepth)
	fmt.Printf("  pool.max_overflow  = %d\n", cfg.Pool.MaxOverflow)
	fmt.Printf("  input.drag_threshold_px = %g\n", cfg.Input.DragThresholdPx)
	fmt.Printf("  debug.focus_log    = %v\n", cfg.Debug.FocusLog)
	return nil
}

func printUsage() {
	fmt.Println(`okapi - UI core utilities

Usage:
  okapi <command> [arguments]

Commands:
  check-config [path]   Validate an okapi.toml (default: ./okapi.toml)
  version               Print the okapi version
  help                  Show this help`)
}
