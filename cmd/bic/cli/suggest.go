// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestionThreshold is one more than the largest edit distance that
// still produces a suggestion.
const suggestionThreshold = 4

// suggestCommand returns the name of the closest matching subcommand to
// the unknown input, or "" if nothing is within an edit distance of 3.
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, command := range commands {
		names = append(names, command.Name)
	}
	return closest(unknown, names)
}

// suggestFlag finds the first unrecognized flag in args and returns the
// closest defined flag name with its -- or - prefix, or "".
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})

	for _, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if index := strings.IndexByte(name, '='); index >= 0 {
			name = name[:index]
		}
		if flagSet.Lookup(name) != nil {
			continue
		}
		// ShorthandLookup panics on names longer than one character.
		if len(name) == 1 && flagSet.ShorthandLookup(name) != nil {
			continue
		}

		bestName := closest(name, defined)
		if bestName == "" {
			return ""
		}
		if len(bestName) == 1 {
			return "-" + bestName
		}
		return "--" + bestName
	}
	return ""
}

func closest(unknown string, candidates []string) string {
	bestName := ""
	bestDistance := suggestionThreshold
	for _, candidate := range candidates {
		if distance := levenshtein(unknown, candidate); distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}
	return bestName
}

// levenshtein computes the Levenshtein edit distance between two strings
// using a single row of the distance matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}
