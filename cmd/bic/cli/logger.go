// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger on stderr. When stderr is
// a terminal it uses slog.TextHandler for human-readable output;
// otherwise it uses slog.JSONHandler so scripts can parse diagnostics.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(cfg.LogLevel.SlogLevel()).With("command", "check")
func NewCommandLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger is NewCommandLogger for an arbitrary writer. Writers other
// than a terminal *os.File get the JSON handler.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	file, ok := w.(*os.File)
	return newLogger(w, ok && term.IsTerminal(int(file.Fd())), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
