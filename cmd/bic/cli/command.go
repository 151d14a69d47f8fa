// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command represents a CLI command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "parse").
	Name string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is shown in the command's own help output.
	Description string

	// Usage is the usage string (e.g., "bic parse CODE... [flags]").
	// If empty, it is synthesized from the command path.
	Usage string

	// Examples are shown in the help output after the flags.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command. Called
	// on each use, so it must bind to the same variables every time. If
	// nil, the command accepts no flags.
	Flags func() *pflag.FlagSet

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Run executes the command with the remaining args (after flag parsing).
	Run func(args []string) error

	// HelpOutput receives help text. Only consulted on the root
	// command; nil means os.Stderr.
	HelpOutput io.Writer

	// parent is set during dispatch to build the full command path for help.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args and dispatches to the appropriate subcommand or Run
// function.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.helpOutput())
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name := args[0]
		for _, sub := range c.Subcommands {
			if sub.Name == name {
				sub.parent = c
				return sub.Execute(args[1:])
			}
		}

		if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
			return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
				name, suggestion, c.fullName())
		}
		return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.",
			name, c.fullName())
	}

	if len(c.Subcommands) > 0 && c.Run == nil {
		c.PrintHelp(c.helpOutput())
		if len(args) == 0 {
			return fmt.Errorf("subcommand required")
		}
		return fmt.Errorf("subcommand required (got flag %q)", args[0])
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		flagSet.SetOutput(io.Discard)

		if err := flagSet.Parse(args); err != nil {
			if err == pflag.ErrHelp {
				c.PrintHelp(c.helpOutput())
				return nil
			}
			errMsg := err.Error()
			if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown shorthand flag") {
				if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
					return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
						errMsg, suggestion, c.fullName())
				}
			}
			return fmt.Errorf("%s\n\nRun '%s --help' for usage.", errMsg, c.fullName())
		}
		args = flagSet.Args()
	}

	if c.Run != nil {
		return c.Run(args)
	}

	c.PrintHelp(c.helpOutput())
	return fmt.Errorf("no action defined for %q", c.fullName())
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		flagHelp := c.Flags().FlagUsages()
		if flagHelp != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName returns the complete command path (e.g., "bic parse").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) helpOutput() io.Writer {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	if root.HelpOutput != nil {
		return root.HelpOutput
	}
	return os.Stderr
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
