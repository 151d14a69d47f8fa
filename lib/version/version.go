// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// shortCommitLength matches "git rev-parse --short".
const shortCommitLength = 7

// Build is the version information of the running binary.
type Build struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Current returns the version information of the running binary.
func Current() Build {
	commit, dirty, buildTime := stamp()
	return Build{
		Version:   Version,
		Commit:    commit,
		Dirty:     dirty,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// stamp returns the injected commit values, falling back to the
// toolchain's VCS settings when GitCommit was not injected.
func stamp() (commit string, dirty bool, buildTime string) {
	commit, dirty, buildTime = GitCommit, GitDirty == "true", BuildTime
	if commit != "unknown" {
		return commit, dirty, buildTime
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, dirty, buildTime
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > shortCommitLength {
				commit = commit[:shortCommitLength]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		case "vcs.time":
			if buildTime == "unknown" {
				buildTime = setting.Value
			}
		}
	}
	return commit, dirty, buildTime
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	build := Current()
	dirty := ""
	if build.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", build.Version, build.Commit, dirty, build.BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	build := Current()
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s",
		Info(), build.GoVersion, build.Platform)
}

// Short returns just the version number.
func Short() string {
	return Version
}

// Commit returns the git commit SHA.
func Commit() string {
	commit, _, _ := stamp()
	return commit
}
