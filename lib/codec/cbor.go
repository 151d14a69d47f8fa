// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the deterministic CBOR encoder.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Unknown struct fields are ignored and
// text strings must be valid UTF-8.
var decMode cbor.DecMode

// lenientDecMode matches decMode but passes text strings through with
// their bytes intact, valid UTF-8 or not.
var lenientDecMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		UTF8:            cbor.UTF8RejectInvalid,
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}

	lenientDecMode, err = cbor.DecOptions{
		UTF8:            cbor.UTF8DecodeInvalid,
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: lenient CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes a single CBOR data item from data into v. Trailing
// bytes are an error.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// UnmarshalLenient is Unmarshal without UTF-8 validation of text
// strings. Callers that validate the decoded bytes themselves use it
// so that a corrupted byte reaches their own checks.
func UnmarshalLenient(data []byte, v any) error {
	return lenientDecMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// NewEncoder returns a deterministic CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
