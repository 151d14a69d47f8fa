// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bic parses, validates and normalizes Business Identifier
// Codes as defined by ISO 9362:2014.
//
// A BIC is an 8- or 11-character code with a fixed layout:
//
//	offset  0..4   prefix   A-Z 0-9   institution code
//	offset  4..6   country  A-Z       ISO 3166-1 alpha-2 country
//	offset  6..8   suffix   A-Z 0-9   location code
//	offset  8..11  branch   A-Z 0-9   optional branch code
//
// The branch code "XXX" is reserved for the primary office, so
// "DEUTDEFF" and "DEUTDEFFXXX" name the same institution. [BIC] keeps
// the input verbatim ([BIC.Original]) and pre-computes a canonical form
// ([BIC.Canonical]) that drops the primary-branch marker. Equality,
// ordering and hashing use the canonical form only. [BIC.Full] returns
// the fixed-width 11-character form expected by most payment messages.
//
// Validation is structural. The package does not consult the SWIFT
// directory, so a syntactically valid code may still be unassigned.
// Input is never trimmed or case-folded: lowercase letters fail.
//
// Construction fails with a [*ParseError] that wraps exactly one of
// [ErrInvalidLength], [ErrInvalidPrefix], [ErrInvalidCountry],
// [ErrInvalidSuffix] or [ErrInvalidBranch]. Segments are checked in
// layout order and the first failing segment is reported.
//
// # Serialization
//
// Only the original string is ever written. Every decode path
// (encoding.TextUnmarshaler and therefore encoding/json, yaml.v3,
// CBOR and database/sql) runs the parser again on the stored string,
// so corrupted data surfaces the same errors as fresh input:
//
//	var decoded bic.BIC
//	err := json.Unmarshal([]byte(`"DEUTDEff"`), &decoded)
//	errors.Is(err, bic.ErrInvalidSuffix) // true
//
// The parser sees the bytes each decoder hands it. CBOR and
// database/sql keep invalid UTF-8 bytes intact, so they are reported
// at their position. yaml.v3 rejects the document before the parser
// runs. encoding/json replaces each invalid byte with U+FFFD (three bytes)
// before UnmarshalText runs, so the same corruption in JSON surfaces
// as ErrInvalidLength.
//
// BIC values are immutable and safe for concurrent use.
package bic
