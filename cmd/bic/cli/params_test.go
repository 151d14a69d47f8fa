// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Prefix   string `flag:"prefix,p" desc:"institution prefix"`
		Unique   bool   `flag:"unique,u" desc:"drop duplicates"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"-p", "DEUT", "--unique"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Prefix != "DEUT" {
		t.Errorf("Prefix = %q, want %q", p.Prefix, "DEUT")
	}
	if !p.Unique {
		t.Error("Unique = false, want true")
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field should not produce a flag")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Branch string `flag:"branch" default:"XXX"`
		Diag   bool   `flag:"diag" default:"true"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Branch != "XXX" {
		t.Errorf("Branch = %q, want %q", p.Branch, "XXX")
	}
	if !p.Diag {
		t.Error("Diag = false, want true from default tag")
	}

	if err := flagSet.Parse([]string{"--branch", "500", "--diag=false"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Branch != "500" || p.Diag {
		t.Errorf("after parse: Branch = %q, Diag = %v; want 500, false", p.Branch, p.Diag)
	}
}

func TestBindFlags_EmbeddedOutputFormat(t *testing.T) {
	type params struct {
		OutputFormat
		FailFast bool `flag:"fail-fast"`
	}

	var p params
	flagSet := FlagsFromParams("check", &p)
	if err := flagSet.Parse([]string{"--yaml", "--fail-fast"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputYAML {
		t.Error("OutputYAML = false, want true")
	}
	if !p.FailFast {
		t.Error("FailFast = false, want true")
	}
	for _, name := range []string{"json", "yaml", "cbor"} {
		if flagSet.Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestBindFlags_PositionalArgsRemain(t *testing.T) {
	type params struct {
		Unique bool `flag:"unique"`
	}

	var p params
	flagSet := FlagsFromParams("sort", &p)
	if err := flagSet.Parse([]string{"codes.txt", "--unique"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if args := flagSet.Args(); len(args) != 1 || args[0] != "codes.txt" {
		t.Errorf("Args() = %v, want [codes.txt]", args)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	type unsupported struct {
		Count int `flag:"count"`
	}
	type badDefault struct {
		Diag bool `flag:"diag" default:"maybe"`
	}
	type unexported struct {
		hidden string `flag:"hidden"`
	}

	tests := []struct {
		name   string
		params any
		want   string
	}{
		{"not a pointer", struct{}{}, "must be a pointer to a struct"},
		{"pointer to non-struct", new(string), "must be a pointer to a struct"},
		{"unsupported type", &unsupported{}, "unsupported type int"},
		{"bad default", &badDefault{}, "default for --diag"},
		{"unexported", &unexported{}, "not settable"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BindFlags(test.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("BindFlags() = nil, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestFlagsFromParams_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic on invalid params")
		}
	}()
	FlagsFromParams("test", "not a struct pointer")
}
