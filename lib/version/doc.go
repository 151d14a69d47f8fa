// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the bic
// command.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When GitCommit is not injected, the VCS stamp recorded by the Go
// toolchain is used instead, so "go install" builds still report their
// revision. Test binaries carry no stamp and report "unknown".
//
// [Info], [Full], [Short] and [Commit] format the values for humans;
// [Current] returns them as a [Build] for structured output.
package version
