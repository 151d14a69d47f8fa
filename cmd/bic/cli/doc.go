// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework of the bic tool.
//
// A [Command] tree dispatches on the first positional argument, parses
// pflag flag sets, prints structured help and suggests the closest
// command or flag name on a typo. Flags are declared as tagged struct
// fields and bound with [FlagsFromParams] or [BindFlags].
//
// Output helpers:
//
//   - [OutputFormat] -- embeddable --json, --yaml and --cbor flags with
//     [OutputFormat.Emit] for structured results
//   - [Styles] -- lipgloss styling for text output, disabled when the
//     destination is not a terminal
//   - [ExitError] -- a non-zero exit status without an error message
//   - [NewCommandLogger] -- slog on stderr, text on a terminal and JSON
//     otherwise
package cli
