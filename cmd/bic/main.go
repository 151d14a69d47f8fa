// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/bic/cmd/bic/cli"
)

func main() {
	if err := run(); err != nil {
		// Commands that report their own failures (parse, check) return
		// an ExitError; don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	application := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,

		newLogger: cli.NewCommandLogger,
	}
	return application.rootCommand().Execute(os.Args[1:])
}
