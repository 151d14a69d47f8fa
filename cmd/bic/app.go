// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"

	"github.com/bureau-foundation/bic/cmd/bic/cli"
	"github.com/bureau-foundation/bic/lib/config"
)

// app holds the streams and per-invocation state shared by commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// newLogger builds the diagnostic logger once the level is known.
	// Nil logs to stderr.
	newLogger func(slog.Level) *slog.Logger

	config *config.Config
	logger *slog.Logger
	styles cli.Styles
}

// CommonParams are the flags every command accepts. Parameter structs
// embed it; it is exported so reflection can bind its fields.
type CommonParams struct {
	cli.OutputFormat
	ConfigPath string `flag:"config" desc:"path to a bic.yaml config file (default: $BIC_CONFIG)"`
}

func (a *app) rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "bic",
		Summary: "Inspect ISO 9362 business identifier codes",
		Description: `Inspect ISO 9362 business identifier codes (BIC, also called SWIFT
codes).

Codes are validated structurally: a four-character institution prefix,
a two-letter country code, a two-character location suffix and an
optional three-character branch code, all uppercase ASCII. Codes are
never trimmed or case-folded; output uses the canonical form, which
drops a primary-branch "XXX" suffix.`,
		HelpOutput: a.stderr,
		Subcommands: []*cli.Command{
			a.parseCommand(),
			a.composeCommand(),
			a.sortCommand(),
			a.checkCommand(),
			a.encodeCommand(),
			a.decodeCommand(),
			a.versionCommand(),
		},
		Examples: []cli.Example{
			{Description: "Describe a code", Command: "bic parse DEUTDEFF500"},
			{Description: "Validate a file of codes", Command: "bic check creditors.txt"},
		},
	}
}

// setup loads configuration and builds the logger for one command run.
func (a *app) setup(command string, params *CommonParams) error {
	cfg, err := config.Resolve(params.ConfigPath)
	if err != nil {
		return err
	}
	a.config = cfg
	newLogger := a.newLogger
	if newLogger == nil {
		newLogger = func(level slog.Level) *slog.Logger {
			return cli.NewLogger(a.stderr, level)
		}
	}
	a.logger = newLogger(cfg.LogLevel.SlogLevel()).With("command", command)
	a.styles = cli.StylesFor(a.stdout)
	a.logger.Debug("configuration loaded",
		"source", params.ConfigPath,
		"output", cfg.Output,
		"log_level", cfg.LogLevel,
	)
	return nil
}

// emit writes result in the structured format selected by flags or
// config. It returns false when the caller should print text.
func (a *app) emit(params *CommonParams, result any) (bool, error) {
	return params.Emit(a.stdout, a.config.Output, result)
}
