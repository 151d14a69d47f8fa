// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bic inspects ISO 9362 business identifier codes.
//
// Commands:
//
//	bic parse CODE...                     describe each code
//	bic compose --prefix P --country C --suffix S [--branch B]
//	bic sort [--unique] [FILE]            print canonical forms in order
//	bic check FILE [--fail-fast]          validate a batch
//	bic encode CODE [--diag]              hex of the CBOR encoding
//	bic decode HEX                        decode and re-validate CBOR
//	bic version                           build information
//
// Input files hold one code per line (blank lines and lines starting
// with # are skipped), or a JSON or JSONC array of strings when the
// file name ends in .json or .jsonc. A FILE of "-" or no FILE reads
// stdin.
//
// Every command accepts --json, --yaml and --cbor for structured
// output and --config to name a YAML configuration file (see package
// lib/config). The process exits 1 when any input code is invalid.
package main
