// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic

// Reference codes used in documentation and tests. They are ordinary
// BICs: nothing in validation treats them specially.
var (
	deutscheBank     = MustParse("DEUTDEFF")
	deutscheBankTest = MustParse("DEUTDEF0")
	n26              = MustParse("NTSBDEB1")
	n26Test          = MustParse("NTSBDEB0")
)

// DeutscheBank returns the BIC of Deutsche Bank, Frankfurt: DEUTDEFF.
func DeutscheBank() BIC { return deutscheBank }

// DeutscheBankTest returns the test & training variant of DeutscheBank.
func DeutscheBankTest() BIC { return deutscheBankTest }

// N26 returns the BIC of N26 Bank, Berlin: NTSBDEB1.
func N26() BIC { return n26 }

// N26Test returns the test & training variant of N26.
func N26Test() BIC { return n26Test }

// IsDeutscheBank reports whether b is DeutscheBank or DeutscheBankTest.
func (b BIC) IsDeutscheBank() bool {
	return b.Equal(deutscheBank) || b.Equal(deutscheBankTest)
}

// IsN26 reports whether b is N26 or N26Test.
func (b BIC) IsN26() bool {
	return b.Equal(n26) || b.Equal(n26Test)
}

// WellKnown returns the reference codes in canonical order.
func WellKnown() []BIC {
	codes := []BIC{deutscheBank, deutscheBankTest, n26, n26Test}
	Sort(codes)
	return codes
}
