// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic_test

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/bic/lib/bic"
	"github.com/bureau-foundation/bic/lib/codec"
)

// FuzzParse checks that Parse never panics and that every accepted
// input satisfies the layout and round-trip invariants.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("NTSBDEB1XXX")
	f.Add("MARKDEFF")
	f.Add("DEUTDEFF500")
	f.Add("aaaaBBCC")
	f.Add("AAAA11CC")
	f.Add("AAAABBCCddd")
	f.Add("ÄAABBCC")
	f.Add("AAAABBCC\x00\x00\x00")

	f.Fuzz(func(t *testing.T, input string) {
		code, err := bic.Parse(input)
		if err != nil {
			if !code.IsZero() {
				t.Fatalf("Parse(%q) returned %#v with error %v", input, code, err)
			}
			if _, ok := bic.SegmentOf(err); !ok {
				t.Fatalf("Parse(%q) error %v is not a ParseError", input, err)
			}
			if len(input) != 8 && len(input) != 11 && !errors.Is(err, bic.ErrInvalidLength) {
				t.Fatalf("Parse(%q) of length %d: error %v, want ErrInvalidLength", input, len(input), err)
			}
			return
		}

		if code.Original() != input {
			t.Fatalf("Original() = %q, want %q", code.Original(), input)
		}
		canonical := code.Canonical()
		if len(canonical) != 8 && len(canonical) != 11 {
			t.Fatalf("Canonical() = %q has length %d", canonical, len(canonical))
		}
		if (len(canonical) == 8) != (len(input) == 8 || input[8:] == bic.PrimaryBranch) {
			t.Fatalf("Canonical() = %q for input %q", canonical, input)
		}
		if full := code.Full(); len(full) != 11 || full[:8] != code.ID() {
			t.Fatalf("Full() = %q, ID() = %q", full, code.ID())
		}
		if code.Prefix()+code.Country()+code.Suffix() != code.ID() {
			t.Fatalf("segments %q+%q+%q do not form ID %q", code.Prefix(), code.Country(), code.Suffix(), code.ID())
		}
		if code.IsTest() != (canonical[7] == '0') {
			t.Fatalf("IsTest() = %v for %q", code.IsTest(), canonical)
		}

		for _, form := range []string{canonical, code.Full()} {
			reparsed, err := bic.Parse(form)
			if err != nil {
				t.Fatalf("Parse(%q) of a derived form: %v", form, err)
			}
			if !reparsed.Equal(code) || reparsed.Hash() != code.Hash() {
				t.Fatalf("Parse(%q) is not equal to %#v", form, code)
			}
		}

		data, err := codec.Marshal(code)
		if err != nil {
			t.Fatalf("CBOR Marshal: %v", err)
		}
		var decoded bic.BIC
		if err := codec.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("CBOR Unmarshal: %v", err)
		}
		if decoded != code {
			t.Fatalf("CBOR roundtrip = %#v, want %#v", decoded, code)
		}
	})
}
