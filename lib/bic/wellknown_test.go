// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic_test

import (
	"testing"

	"github.com/bureau-foundation/bic/lib/bic"
)

func TestWellKnownCodes(t *testing.T) {
	tests := []struct {
		name      string
		code      bic.BIC
		canonical string
		isTest    bool
		deutsche  bool
		n26       bool
	}{
		{name: "DeutscheBank", code: bic.DeutscheBank(), canonical: "DEUTDEFF", deutsche: true},
		{name: "DeutscheBankTest", code: bic.DeutscheBankTest(), canonical: "DEUTDEF0", isTest: true, deutsche: true},
		{name: "N26", code: bic.N26(), canonical: "NTSBDEB1", n26: true},
		{name: "N26Test", code: bic.N26Test(), canonical: "NTSBDEB0", isTest: true, n26: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code.Canonical() != tt.canonical {
				t.Errorf("Canonical() = %q, want %q", tt.code.Canonical(), tt.canonical)
			}
			if tt.code.IsTest() != tt.isTest {
				t.Errorf("IsTest() = %v, want %v", tt.code.IsTest(), tt.isTest)
			}
			if tt.code.IsDeutscheBank() != tt.deutsche {
				t.Errorf("IsDeutscheBank() = %v, want %v", tt.code.IsDeutscheBank(), tt.deutsche)
			}
			if tt.code.IsN26() != tt.n26 {
				t.Errorf("IsN26() = %v, want %v", tt.code.IsN26(), tt.n26)
			}
		})
	}
}

func TestWellKnownPredicatesUseCanonicalForm(t *testing.T) {
	if !bic.MustParse("DEUTDEFFXXX").IsDeutscheBank() {
		t.Error("DEUTDEFFXXX should be Deutsche Bank")
	}
	if bic.MustParse("DEUTDEFF500").IsDeutscheBank() {
		t.Error("a specific branch is not the reference code")
	}
	if !bic.MustParse("NTSBDEB1XXX").IsN26() {
		t.Error("NTSBDEB1XXX should be N26")
	}
}

func TestWellKnownOrder(t *testing.T) {
	want := []string{"DEUTDEF0", "DEUTDEFF", "NTSBDEB0", "NTSBDEB1"}
	codes := bic.WellKnown()
	if len(codes) != len(want) {
		t.Fatalf("WellKnown() returned %d codes, want %d", len(codes), len(want))
	}
	for i, code := range codes {
		if code.Canonical() != want[i] {
			t.Errorf("WellKnown()[%d] = %s, want %s", i, code, want[i])
		}
	}

	// Callers may sort or truncate the result without affecting the
	// reference codes.
	codes[0] = bic.MustParse("AAAABBCC")
	if bic.WellKnown()[0].Canonical() != "DEUTDEF0" {
		t.Error("WellKnown() shares its backing array between calls")
	}
}
