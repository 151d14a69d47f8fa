// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by the
// BIC binary form and the bic command.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always produces identical bytes, so encoded
// records can be compared and hashed directly.
//
// Types that implement encoding.TextMarshaler and
// encoding.TextUnmarshaler are written and read as CBOR text strings.
// Types that implement cbor.Marshaler (such as bic.BIC) take
// precedence over the text form.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Unmarshal rejects text strings that are not valid UTF-8.
// UnmarshalLenient accepts them unchanged, for callers that check
// every byte themselves.
//
// This package depends on no other packages of this module.
package codec
