// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tidwall/jsonc"
)

// entry is one code read from a batch input, with its position for
// error messages.
type entry struct {
	// Location is "line N" for line-oriented input or "item N" for a
	// JSON array, both 1-based.
	Location string
	Text     string
}

// readEntries reads codes from the file at path, or from stdin when
// path is "" or "-". Files ending in .json or .jsonc hold a JSON array
// of strings and may contain comments and trailing commas; anything
// else holds one code per line.
func readEntries(path string, stdin io.Reader) ([]entry, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		entries, err := parseArrayEntries(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return entries, nil
	default:
		return parseLineEntries(data)
	}
}

// parseLineEntries splits data into one entry per non-blank line.
// Surrounding whitespace is trimmed; lines starting with # are comments.
func parseLineEntries(data []byte) ([]entry, error) {
	var entries []entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, entry{
			Location: fmt.Sprintf("line %d", lineNumber),
			Text:     text,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return entries, nil
}

// parseArrayEntries decodes a JSONC array of strings. Elements are
// returned unvalidated so that callers can report each invalid code.
func parseArrayEntries(data []byte) ([]entry, error) {
	var codes []string
	if err := json.Unmarshal(jsonc.ToJSON(data), &codes); err != nil {
		return nil, fmt.Errorf("expected a JSON array of strings: %w", err)
	}
	entries := make([]entry, len(codes))
	for i, code := range codes {
		entries[i] = entry{Location: fmt.Sprintf("item %d", i+1), Text: code}
	}
	return entries, nil
}

// decodeHexArgument strips whitespace from hex-encoded input and
// decodes it. Whitespace between digit pairs is allowed.
func decodeHexArgument(text string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if cleaned == "" {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}
	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}
