// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for monocloud using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler so it never mixes
// with the prompts drawn on stdout.
func Setup(verbose, quiet bool) {
	SetupTo(os.Stderr, verbose, quiet)
}

// SetupTo is Setup with an explicit destination.
func SetupTo(w io.Writer, verbose, quiet bool) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
