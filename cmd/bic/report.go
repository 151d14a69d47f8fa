// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/bic/cmd/bic/cli"
	"github.com/bureau-foundation/bic/lib/bic"
)

// codeReport describes one input code. Invalid codes carry only Input,
// Segment and Error.
type codeReport struct {
	Input         string `json:"input" yaml:"input"`
	Valid         bool   `json:"valid" yaml:"valid"`
	Canonical     string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Full          string `json:"full,omitempty" yaml:"full,omitempty"`
	ID            string `json:"id,omitempty" yaml:"id,omitempty"`
	Prefix        string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Country       string `json:"country,omitempty" yaml:"country,omitempty"`
	Suffix        string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Branch        string `json:"branch,omitempty" yaml:"branch,omitempty"`
	HasBranch     bool   `json:"has_branch" yaml:"has_branch"`
	PrimaryBranch bool   `json:"primary_branch" yaml:"primary_branch"`
	Test          bool   `json:"test" yaml:"test"`
	Institution   string `json:"institution,omitempty" yaml:"institution,omitempty"`
	Segment       string `json:"segment,omitempty" yaml:"segment,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

func reportValid(code bic.BIC) codeReport {
	return codeReport{
		Input:         code.Original(),
		Valid:         true,
		Canonical:     code.Canonical(),
		Full:          code.Full(),
		ID:            code.ID(),
		Prefix:        code.Prefix(),
		Country:       code.Country(),
		Suffix:        code.Suffix(),
		Branch:        code.Branch(),
		HasBranch:     code.HasBranch(),
		PrimaryBranch: code.IsPrimaryBranch(),
		Test:          code.IsTest(),
		Institution:   institutionName(code),
	}
}

func reportInvalid(input string, err error) codeReport {
	report := codeReport{Input: input, Error: err.Error()}
	if segment, ok := bic.SegmentOf(err); ok {
		report.Segment = segment.String()
	}
	return report
}

func reportFor(input string) codeReport {
	code, err := bic.Parse(input)
	if err != nil {
		return reportInvalid(input, err)
	}
	return reportValid(code)
}

// institutionName names the reference institutions known to package bic.
func institutionName(code bic.BIC) string {
	switch {
	case code.IsDeutscheBank():
		return "Deutsche Bank"
	case code.IsN26():
		return "N26"
	default:
		return ""
	}
}

const labelWidth = 16

// writeReports prints reports as aligned label/value blocks separated by
// blank lines.
func writeReports(w io.Writer, styles cli.Styles, reports []codeReport) error {
	var errs []error
	for i, report := range reports {
		if i > 0 {
			_, err := fmt.Fprintln(w)
			errs = append(errs, err)
		}
		errs = append(errs, writeReport(w, styles, report))
	}
	return errors.Join(errs...)
}

func writeReport(w io.Writer, styles cli.Styles, report codeReport) error {
	line := func(label, value string) error {
		_, err := fmt.Fprintf(w, "%s %s\n", styles.Label(label, labelWidth), value)
		return err
	}

	if !report.Valid {
		return errors.Join(
			line("input", fmt.Sprintf("%q", report.Input)),
			line("valid", styles.Invalid("no")),
			line("segment", report.Segment),
			line("error", styles.Invalid(report.Error)),
		)
	}

	branch := report.Branch
	if !report.HasBranch {
		branch += " " + styles.Faint("(primary)")
	}
	errs := []error{
		line("input", report.Input),
		line("valid", styles.Valid("yes")),
		line("canonical", styles.Value(report.Canonical)),
		line("full", report.Full),
		line("id", report.ID),
		line("prefix", report.Prefix),
		line("country", report.Country),
		line("suffix", report.Suffix),
		line("branch", branch),
		line("primary branch", yesNo(report.PrimaryBranch)),
		line("test", yesNo(report.Test)),
	}
	if report.Institution != "" {
		errs = append(errs, line("institution", report.Institution))
	}
	return errors.Join(errs...)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
