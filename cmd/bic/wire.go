// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bic/cmd/bic/cli"
	"github.com/bureau-foundation/bic/lib/bic"
	"github.com/bureau-foundation/bic/lib/codec"
	"github.com/bureau-foundation/bic/lib/version"
)

type encodeParams struct {
	CommonParams
	Diag bool `flag:"diag" desc:"also print CBOR diagnostic notation"`
}

// encodeResult is the structured output of "bic encode".
type encodeResult struct {
	Code       string `json:"code" yaml:"code"`
	CBOR       string `json:"cbor" yaml:"cbor"`
	Diagnostic string `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
}

func (a *app) encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Print the CBOR encoding of a code",
		Description: `Parse CODE and print the hex of its deterministic CBOR encoding. A code
is encoded as a CBOR text string holding the code as it was given, so
decoding restores the original input and validates it again.`,
		Usage: "bic encode CODE [flags]",
		Examples: []cli.Example{
			{Description: "Encode and inspect", Command: "bic encode --diag DEUTDEFF"},
			{Description: "Round-trip", Command: "bic decode $(bic encode DEUTDEFF500)"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("encode", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("encode takes exactly one CODE")
			}
			if err := a.setup("encode", &params.CommonParams); err != nil {
				return err
			}

			code, err := bic.Parse(args[0])
			if err != nil {
				return err
			}
			data, err := codec.Marshal(code)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", code, err)
			}

			result := encodeResult{Code: code.Original(), CBOR: hex.EncodeToString(data)}
			if params.Diag {
				result.Diagnostic, err = codec.Diagnose(data)
				if err != nil {
					return fmt.Errorf("diagnosing %s: %w", result.CBOR, err)
				}
			}

			if done, err := a.emit(&params.CommonParams, result); done {
				return err
			}
			if _, err := fmt.Fprintln(a.stdout, result.CBOR); err != nil {
				return err
			}
			if params.Diag {
				_, err = fmt.Fprintln(a.stdout, a.styles.Faint(result.Diagnostic))
			}
			return err
		},
	}
}

type decodeParams struct {
	CommonParams
}

func (a *app) decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a CBOR-encoded code",
		Description: `Decode HEX as a CBOR text string, validate it again and describe the
result as "bic parse" does. Whitespace in HEX is ignored, so the input
may be given as separate arguments or byte pairs.

Input that is not a single CBOR text string is an error. A well-formed
string that is not a valid code is reported like an invalid code and
the command exits 1.`,
		Usage: "bic decode HEX [flags]",
		Examples: []cli.Example{
			{Description: "Decode an encoded code", Command: "bic decode 6844455554444546 46"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("decode requires HEX input")
			}
			if err := a.setup("decode", &params.CommonParams); err != nil {
				return err
			}

			data, err := decodeHexArgument(strings.Join(args, " "))
			if err != nil {
				return err
			}

			var report codeReport
			var code bic.BIC
			if err := codec.Unmarshal(data, &code); err != nil {
				var parseErr *bic.ParseError
				if !errors.As(err, &parseErr) {
					return fmt.Errorf("decoding CBOR: %w", err)
				}
				report = reportInvalid(parseErr.Input, err)
			} else {
				report = reportValid(code)
			}

			if done, err := a.emit(&params.CommonParams, report); done {
				if err != nil {
					return err
				}
			} else if err := writeReport(a.stdout, a.styles, report); err != nil {
				return err
			}

			if !report.Valid {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

type versionParams struct {
	CommonParams
}

func (a *app) versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "bic version [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version takes no positional arguments, got %q", args[0])
			}
			if err := a.setup("version", &params.CommonParams); err != nil {
				return err
			}
			if done, err := a.emit(&params.CommonParams, version.Current()); done {
				return err
			}
			_, err := fmt.Fprintf(a.stdout, "bic %s\n", version.Full())
			return err
		},
	}
}
