// Package logger configures typeforge's single process-wide slog.Logger.
// It discards everything until Init runs, matching the teacher's
// cmd/hiveexplorer/logger: a CLI run that never asks for -v sees only
// error-level records, but the moment it does ask, the same Logger
// value everywhere picks it up.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger. Call Init before running any subcommand logic.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	// Verbosity is the repeatable -v flag's count: 0 logs error-level
	// records only, 1 enables info-level text logging, 2+ enables debug-level and, if
	// JSON is set, structured JSON output instead of text.
	Verbosity int
	JSON      bool
	Quiet     bool
}

// Init configures L from opts. Quiet always wins over Verbosity: with -q
// (even alongside -v) L discards every record, error-level included.
func Init(opts Options) {
	if opts.Quiet || opts.Verbosity <= 0 {
		level := slog.LevelError
		if opts.Quiet {
			level = slog.LevelError + 1 // above Error: fully discarded below
		}
		if level > slog.LevelError {
			L = slog.New(slog.NewTextHandler(io.Discard, nil))
			return
		}
		L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return
	}

	level := slog.LevelInfo
	if opts.Verbosity >= 2 {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.Verbosity >= 2 && opts.JSON {
		L = slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}
