// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bic/cmd/bic/cli"
	"github.com/bureau-foundation/bic/lib/bic"
)

type sortParams struct {
	CommonParams
	Unique bool `flag:"unique,u" desc:"drop codes equal to an earlier one (default: sort.unique from config)"`
}

func (a *app) sortCommand() *cli.Command {
	var params sortParams

	return &cli.Command{
		Name:    "sort",
		Summary: "Print codes in canonical order",
		Description: `Read codes from FILE (or stdin) and print their canonical forms in
canonical order. A primary office sorts before all of its branches.

The first invalid code aborts the command with its location and the
reason it was rejected.`,
		Usage: "bic sort [FILE] [flags]",
		Examples: []cli.Example{
			{Description: "Sort and deduplicate a file", Command: "bic sort --unique creditors.txt"},
			{Description: "Sort a JSON array", Command: "bic sort --json codes.jsonc"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sort", &params)
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("sort takes at most one FILE, got %d arguments", len(args))
			}
			if err := a.setup("sort", &params.CommonParams); err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			entries, err := readEntries(path, a.stdin)
			if err != nil {
				return err
			}

			codes := make([]bic.BIC, 0, len(entries))
			for _, entry := range entries {
				code, err := bic.Parse(entry.Text)
				if err != nil {
					return fmt.Errorf("%s: %w", entry.Location, err)
				}
				codes = append(codes, code)
			}

			if params.Unique || a.config.Sort.Unique {
				before := len(codes)
				codes = bic.Unique(codes)
				a.logger.Debug("dropped duplicates", "count", before-len(codes))
			} else {
				bic.Sort(codes)
			}

			canonical := make([]string, len(codes))
			for i, code := range codes {
				canonical[i] = code.Canonical()
			}

			if done, err := a.emit(&params.CommonParams, canonical); done {
				return err
			}
			for _, text := range canonical {
				if _, err := fmt.Fprintln(a.stdout, text); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type checkParams struct {
	CommonParams
	FailFast bool `flag:"fail-fast" desc:"stop at the first invalid code (default: check.fail_fast from config)"`
}

// checkFailure is one invalid code found by "bic check".
type checkFailure struct {
	Location string `json:"location" yaml:"location"`
	Input    string `json:"input" yaml:"input"`
	Segment  string `json:"segment" yaml:"segment"`
	Error    string `json:"error" yaml:"error"`
}

// checkReport summarizes a "bic check" run. Stopped is set when
// --fail-fast ended the run before all codes were checked.
type checkReport struct {
	Checked  int            `json:"checked" yaml:"checked"`
	Valid    int            `json:"valid" yaml:"valid"`
	Invalid  int            `json:"invalid" yaml:"invalid"`
	Stopped  bool           `json:"stopped" yaml:"stopped"`
	Failures []checkFailure `json:"failures" yaml:"failures"`
}

func (a *app) checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Validate a batch of codes",
		Description: `Validate every code in FILE ("-" for stdin) and report each invalid
one with its location, failing segment and reason, followed by a
summary. The command exits 1 if any code is invalid.`,
		Usage: "bic check FILE [flags]",
		Examples: []cli.Example{
			{Description: "Validate a file", Command: "bic check creditors.txt"},
			{Description: "Stop at the first error", Command: "bic check --fail-fast creditors.jsonc"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("check takes exactly one FILE (use - for stdin)")
			}
			if err := a.setup("check", &params.CommonParams); err != nil {
				return err
			}

			entries, err := readEntries(args[0], a.stdin)
			if err != nil {
				return err
			}

			report := checkEntries(entries, params.FailFast || a.config.Check.FailFast)
			a.logger.Debug("checked codes",
				"checked", report.Checked,
				"invalid", report.Invalid,
				"stopped", report.Stopped,
			)

			if done, err := a.emit(&params.CommonParams, report); done {
				if err != nil {
					return err
				}
			} else if err := writeCheckReport(a, report); err != nil {
				return err
			}

			if report.Invalid > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func checkEntries(entries []entry, failFast bool) checkReport {
	report := checkReport{Failures: []checkFailure{}}
	for _, entry := range entries {
		report.Checked++
		if _, err := bic.Parse(entry.Text); err != nil {
			report.Invalid++
			failure := checkFailure{Location: entry.Location, Input: entry.Text, Error: err.Error()}
			if segment, ok := bic.SegmentOf(err); ok {
				failure.Segment = segment.String()
			}
			report.Failures = append(report.Failures, failure)
			if failFast {
				report.Stopped = report.Checked < len(entries)
				break
			}
			continue
		}
		report.Valid++
	}
	return report
}

func writeCheckReport(a *app, report checkReport) error {
	var errs []error
	for _, failure := range report.Failures {
		_, err := fmt.Fprintf(a.stdout, "%s: %s\n", failure.Location, a.styles.Invalid(failure.Error))
		errs = append(errs, err)
	}

	summary := fmt.Sprintf("%d checked, %d valid, %d invalid", report.Checked, report.Valid, report.Invalid)
	if report.Stopped {
		summary += " (stopped at first failure)"
	}
	if report.Invalid == 0 {
		summary = a.styles.Valid(summary)
	}
	_, err := fmt.Fprintln(a.stdout, summary)
	errs = append(errs, err)
	return errors.Join(errs...)
}
