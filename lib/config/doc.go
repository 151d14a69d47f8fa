// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the bic
// command.
//
// Configuration is optional. When used, it is loaded from a single
// file named by the --config flag (via [LoadFile]) or the BIC_CONFIG
// environment variable (via [Load]). There is no automatic file search
// and no per-field environment overrides: the file is the only source
// besides the built-in defaults from [Default].
//
// Unknown keys are rejected so that a misspelled setting fails loudly
// instead of being ignored.
//
// Key exports:
//
//   - [Config] -- output format, log level, sort and check defaults
//   - [Default] -- the values used when no file is given
//   - [Load], [LoadFile] and [Resolve] -- the loading entry points
//
// This package depends on no other packages of this module.
package config
