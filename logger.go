// mcdat2bin - Intel microcode .dat to .bin converter
// logger.go - Logger construction
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"io"
	"log/slog"
)

const defaultLogLevel = "info"

// newLogger creates a text slog.Logger writing to outW. It does not set the
// global logger, so tests can capture output per run.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
