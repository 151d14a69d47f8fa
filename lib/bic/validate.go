// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic

// Byte-indexed character classes. Any byte outside A-Z and 0-9,
// including every byte of a multi-byte UTF-8 sequence, maps to false.
// Built by initializer expressions rather than init so that
// package-level MustParse calls see them populated.
var (
	alphabetic   = byteClass("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	alphanumeric = byteClass("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
)

func byteClass(members string) [256]bool {
	var class [256]bool
	for i := 0; i < len(members); i++ {
		class[members[i]] = true
	}
	return class
}

// segmentRule binds a layout region to its character class.
type segmentRule struct {
	segment Segment
	start   int
	end     int
	class   *[256]bool
}

// rules are checked in order; the branch rule applies only when the
// input is long enough to contain a branch.
var rules = [...]segmentRule{
	{segment: SegmentPrefix, start: prefixStart, end: prefixEnd, class: &alphanumeric},
	{segment: SegmentCountry, start: countryStart, end: countryEnd, class: &alphabetic},
	{segment: SegmentSuffix, start: suffixStart, end: suffixEnd, class: &alphanumeric},
	{segment: SegmentBranch, start: branchStart, end: branchEnd, class: &alphanumeric},
}

// validate checks raw against the BIC grammar and returns a
// *ParseError for the first violated rule.
func validate(raw string) error {
	if len(raw) != bpiLength && len(raw) != fullLength {
		return &ParseError{Input: raw, Segment: SegmentLength, Offset: -1, Err: ErrInvalidLength}
	}
	for _, rule := range rules {
		if rule.end > len(raw) {
			break
		}
		for i := rule.start; i < rule.end; i++ {
			if !rule.class[raw[i]] {
				return &ParseError{Input: raw, Segment: rule.segment, Offset: i, Err: rule.segment.sentinel()}
			}
		}
	}
	return nil
}
