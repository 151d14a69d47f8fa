// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic

import "fmt"

// Layout of a BIC. All offsets are byte offsets; every valid BIC is
// ASCII.
const (
	prefixStart  = 0
	prefixEnd    = 4
	countryStart = 4
	countryEnd   = 6
	suffixStart  = 6
	suffixEnd    = 8
	branchStart  = 8
	branchEnd    = 11

	// bpiLength is the length of a BIC without a branch code, and of
	// the business party identifier (prefix + country + suffix).
	bpiLength = 8

	// fullLength is the length of a BIC with a branch code.
	fullLength = 11

	// testMarkerIndex is the position of the test & training marker:
	// the second character of the suffix.
	testMarkerIndex = 7
)

// PrimaryBranch is the reserved branch code for an institution's
// primary office. A BIC with this branch is equal to the 8-character
// BIC without one.
const PrimaryBranch = "XXX"

// BIC is a validated Business Identifier Code.
//
// BIC is an immutable value type. The zero value is not a valid BIC;
// its accessors return empty strings and false. Use IsZero to check.
//
// Because the original input is retained, the == operator compares
// inputs as well as identities: "DEUTDEFF" and "DEUTDEFFXXX" are
// Equal but not ==. Use Equal for identity, and Canonical as a map key.
type BIC struct {
	original  string
	canonical string // pre-computed: original without a trailing "XXX" branch
}

// Parse validates raw and returns the BIC it denotes. raw must be
// exactly 8 or 11 characters of uppercase ASCII letters and digits,
// with letters only in the country code. Parse does not trim or
// upper-case its input.
func Parse(raw string) (BIC, error) {
	if err := validate(raw); err != nil {
		return BIC{}, err
	}
	return BIC{original: raw, canonical: canonicalize(raw)}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(raw string) BIC {
	b, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("bic.MustParse(%q): %v", raw, err))
	}
	return b
}

// FromParts builds a BIC from its segments. An empty branch means the
// code has no branch. Parts are concatenated and parsed as a whole, so
// a part of the wrong size is reported as a length or segment error of
// the combined string rather than of the part.
func FromParts(prefix, country, suffix, branch string) (BIC, error) {
	return Parse(prefix + country + suffix + branch)
}

// canonicalize drops the primary-branch marker from a validated code.
func canonicalize(raw string) string {
	if len(raw) == fullLength && raw[branchStart:branchEnd] == PrimaryBranch {
		return raw[:bpiLength]
	}
	return raw
}

// Original returns the string the BIC was parsed from, unchanged.
func (b BIC) Original() string { return b.original }

// Canonical returns the 8-character form for primary-branch codes and
// the 11-character form otherwise. This is the preferred form for
// storage and comparison.
func (b BIC) Canonical() string { return b.canonical }

// String returns the canonical form, satisfying fmt.Stringer.
func (b BIC) String() string { return b.canonical }

// IsZero reports whether this is an uninitialized zero-value BIC.
func (b BIC) IsZero() bool { return b.canonical == "" }

// Full returns the 11-character form, appending the primary-branch
// marker when the canonical form has no branch.
func (b BIC) Full() string {
	switch len(b.canonical) {
	case fullLength:
		return b.canonical
	case bpiLength:
		return b.canonical + PrimaryBranch
	default:
		return ""
	}
}

// ID returns the business party identifier: prefix, country and
// suffix (the first 8 characters).
func (b BIC) ID() string { return b.segment(prefixStart, suffixEnd) }

// Prefix returns the 4-character institution code.
func (b BIC) Prefix() string { return b.segment(prefixStart, prefixEnd) }

// Country returns the 2-letter country code.
func (b BIC) Country() string { return b.segment(countryStart, countryEnd) }

// Suffix returns the 2-character location code.
func (b BIC) Suffix() string { return b.segment(suffixStart, suffixEnd) }

// Branch returns the 3-character branch code, or PrimaryBranch when
// the BIC identifies the primary office.
func (b BIC) Branch() string {
	if b.HasBranch() {
		return b.canonical[branchStart:branchEnd]
	}
	if b.IsZero() {
		return ""
	}
	return PrimaryBranch
}

// HasBranch reports whether the BIC names a specific branch rather
// than the primary office.
func (b BIC) HasBranch() bool { return len(b.canonical) == fullLength }

// IsPrimaryBranch reports whether the BIC names the primary office,
// either by omitting the branch or by using PrimaryBranch.
func (b BIC) IsPrimaryBranch() bool { return !b.IsZero() && !b.HasBranch() }

// IsTest reports whether the BIC is a test & training code: the
// second character of the location suffix is '0'.
func (b BIC) IsTest() bool {
	return len(b.canonical) > testMarkerIndex && b.canonical[testMarkerIndex] == '0'
}

// Primary returns the BIC of the institution's primary office: the
// 8-character code formed by ID.
func (b BIC) Primary() BIC {
	id := b.ID()
	return BIC{original: id, canonical: id}
}

// GoString returns a diagnostic form showing the original, canonical
// and full strings. It is what %#v prints.
func (b BIC) GoString() string {
	return fmt.Sprintf("bic.BIC{original:%q, canonical:%q, full:%q}", b.original, b.canonical, b.Full())
}

// segment returns canonical[start:end], or "" for the zero value.
func (b BIC) segment(start, end int) string {
	if len(b.canonical) < end {
		return ""
	}
	return b.canonical[start:end]
}
