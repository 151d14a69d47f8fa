// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLineEntries(t *testing.T) {
	entries, err := parseLineEntries([]byte("DEUTDEFF\r\n\n# skipped\n  ntsbdeb1\t\nlast"))
	if err != nil {
		t.Fatalf("parseLineEntries: %v", err)
	}

	want := []entry{
		{Location: "line 1", Text: "DEUTDEFF"},
		{Location: "line 4", Text: "ntsbdeb1"},
		{Location: "line 5", Text: "last"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseArrayEntries(t *testing.T) {
	entries, err := parseArrayEntries([]byte(`[
		// comment
		"DEUTDEFF",
		"not a code", // kept for the caller to report
	]`))
	if err != nil {
		t.Fatalf("parseArrayEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[1] != (entry{Location: "item 2", Text: "not a code"}) {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestParseArrayEntriesRejectsNonStrings(t *testing.T) {
	for _, input := range []string{`{"code": "DEUTDEFF"}`, `[1, 2]`, `[`} {
		if _, err := parseArrayEntries([]byte(input)); err == nil {
			t.Errorf("parseArrayEntries(%s) succeeded, want error", input)
		}
	}
}

func TestReadEntriesStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		entries, err := readEntries(path, strings.NewReader("DEUTDEFF\n"))
		if err != nil {
			t.Fatalf("readEntries(%q): %v", path, err)
		}
		if len(entries) != 1 || entries[0].Text != "DEUTDEFF" {
			t.Errorf("readEntries(%q) = %+v", path, entries)
		}
	}
}

func TestReadEntriesMissingFile(t *testing.T) {
	_, err := readEntries(t.TempDir()+"/absent.txt", strings.NewReader(""))
	if err == nil || !strings.Contains(err.Error(), "absent.txt") {
		t.Errorf("readEntries error = %v, want it to name the file", err)
	}
}

func TestDecodeHexArgument(t *testing.T) {
	want := []byte{0x68, 0x44, 0x45, 0x55, 0x54, 0x44, 0x45, 0x46, 0x46}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "contiguous", input: "684445555444454646"},
		{name: "split pair", input: "68444555544445464 6"},
		{name: "spaces", input: "68 44 45 55 54 44 45 46 46"},
		{name: "mixed whitespace", input: "68\t4445\n5554 444546\n46"},
		{name: "invalid", input: "6g", wantErr: true},
		{name: "odd length", input: "684", wantErr: true},
		{name: "empty", input: " \n\t ", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := decodeHexArgument(test.input)
			if test.wantErr {
				if err == nil {
					t.Errorf("decodeHexArgument(%q) = %x, want error", test.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeHexArgument(%q): %v", test.input, err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("decodeHexArgument(%q) = %x, want %x", test.input, got, want)
			}
		})
	}
}
