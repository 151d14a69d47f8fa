// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bic/cmd/bic/cli"
	"github.com/bureau-foundation/bic/lib/bic"
)

type parseParams struct {
	CommonParams
}

func (a *app) parseCommand() *cli.Command {
	var params parseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Parse and describe codes",
		Description: `Parse each CODE and print its canonical form, its 11-character full
form and its segments.

Every code is reported, valid or not. Invalid codes name the failing
segment (length, prefix, country, suffix or branch) and the offending
position. The command exits 1 if any code is invalid.`,
		Usage: "bic parse CODE... [flags]",
		Examples: []cli.Example{
			{Description: "Describe a branch code", Command: "bic parse DEUTDEFF500"},
			{Description: "Describe codes as JSON", Command: "bic parse --json DEUTDEFFXXX NTSBDEB1"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("parse", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one CODE is required")
			}
			if err := a.setup("parse", &params.CommonParams); err != nil {
				return err
			}

			reports := make([]codeReport, len(args))
			invalid := 0
			for i, input := range args {
				reports[i] = reportFor(input)
				if !reports[i].Valid {
					invalid++
				}
			}
			a.logger.Debug("parsed codes", "total", len(reports), "invalid", invalid)

			if done, err := a.emit(&params.CommonParams, reports); done {
				if err != nil {
					return err
				}
			} else if err := writeReports(a.stdout, a.styles, reports); err != nil {
				return err
			}

			if invalid > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

type composeParams struct {
	CommonParams
	Prefix  string `flag:"prefix" desc:"four-character institution prefix"`
	Country string `flag:"country" desc:"two-letter country code"`
	Suffix  string `flag:"suffix" desc:"two-character location suffix"`
	Branch  string `flag:"branch" desc:"optional three-character branch code"`
}

func (a *app) composeCommand() *cli.Command {
	var params composeParams

	return &cli.Command{
		Name:    "compose",
		Summary: "Build a code from its segments",
		Description: `Concatenate the given segments and parse the result. The segments are
joined as given, so the result is validated as a whole code, exactly as
if it had been passed to "bic parse".`,
		Usage: "bic compose --prefix P --country C --suffix S [--branch B] [flags]",
		Examples: []cli.Example{
			{
				Description: "Compose a branch code",
				Command:     "bic compose --prefix DEUT --country DE --suffix FF --branch 500",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("compose", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("compose takes no positional arguments, got %q", args[0])
			}
			if err := a.setup("compose", &params.CommonParams); err != nil {
				return err
			}

			code, err := bic.FromParts(params.Prefix, params.Country, params.Suffix, params.Branch)
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}

			report := reportValid(code)
			if done, err := a.emit(&params.CommonParams, report); done {
				return err
			}
			return writeReport(a.stdout, a.styles, report)
		},
	}
}
