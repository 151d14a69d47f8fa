// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors for each rule of the BIC grammar. Construction and
// decoding return a [*ParseError] wrapping one of these; test with
// errors.Is.
var (
	ErrInvalidLength  = errors.New("bic: length must be 8 or 11")
	ErrInvalidPrefix  = errors.New("bic: invalid institution prefix")
	ErrInvalidCountry = errors.New("bic: invalid country code")
	ErrInvalidSuffix  = errors.New("bic: invalid location suffix")
	ErrInvalidBranch  = errors.New("bic: invalid branch code")
)

// Segment identifies the part of a BIC that failed validation.
type Segment uint8

const (
	// SegmentLength reports a length other than 8 or 11. No
	// character was inspected.
	SegmentLength Segment = iota
	SegmentPrefix
	SegmentCountry
	SegmentSuffix
	SegmentBranch
)

func (s Segment) String() string {
	switch s {
	case SegmentLength:
		return "length"
	case SegmentPrefix:
		return "prefix"
	case SegmentCountry:
		return "country"
	case SegmentSuffix:
		return "suffix"
	case SegmentBranch:
		return "branch"
	default:
		return fmt.Sprintf("segment(%d)", uint8(s))
	}
}

// sentinel returns the error wrapped by a ParseError for this segment.
func (s Segment) sentinel() error {
	switch s {
	case SegmentPrefix:
		return ErrInvalidPrefix
	case SegmentCountry:
		return ErrInvalidCountry
	case SegmentSuffix:
		return ErrInvalidSuffix
	case SegmentBranch:
		return ErrInvalidBranch
	default:
		return ErrInvalidLength
	}
}

// ParseError describes why a string is not a valid BIC.
type ParseError struct {
	// Input is the rejected string, verbatim.
	Input string

	// Segment is the first segment that failed validation.
	Segment Segment

	// Offset is the byte offset of the first rejected character, or
	// -1 when Segment is SegmentLength.
	Offset int

	// Err is the sentinel for Segment (ErrInvalidLength, ...).
	Err error
}

func (e *ParseError) Error() string {
	if e.Segment == SegmentLength || e.Offset < 0 || e.Offset >= len(e.Input) {
		return fmt.Sprintf("%v: %q is %d bytes", e.Err, e.Input, len(e.Input))
	}
	allowed := "A-Z, 0-9"
	if e.Segment == SegmentCountry {
		allowed = "A-Z"
	}
	found := fmt.Sprintf("%q", e.Input[e.Offset])
	if e.Input[e.Offset] >= utf8.RuneSelf {
		// Part of a multi-byte or invalid sequence; a quoted rune would
		// misname it.
		found = fmt.Sprintf("byte 0x%02x", e.Input[e.Offset])
	}
	return fmt.Sprintf("%v: %q has %s at position %d (allowed: %s)",
		e.Err, e.Input, found, e.Offset, allowed)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SegmentOf reports the failing segment of a validation error returned
// by this package, including errors wrapped by decoders.
func SegmentOf(err error) (Segment, bool) {
	var parseError *ParseError
	if !errors.As(err, &parseError) {
		return 0, false
	}
	return parseError.Segment, true
}
