// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bic/lib/codec"
)

// errZeroValue is returned when marshaling an uninitialized BIC.
var errZeroValue = errors.New("bic: cannot marshal zero-value BIC")

// Every encoding below writes Original and every decoding calls Parse
// on what it reads back; Canonical is never trusted from storage.

// MarshalText implements encoding.TextMarshaler. The text form is the
// original input. encoding/json uses this method, so a BIC is a JSON
// string.
func (b BIC) MarshalText() ([]byte, error) {
	if b.IsZero() {
		return nil, errZeroValue
	}
	return []byte(b.original), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The data is
// validated exactly like Parse input; validation errors are returned
// unwrapped.
func (b *BIC) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. A BIC is a plain YAML scalar.
func (b BIC) MarshalYAML() (any, error) {
	if b.IsZero() {
		return nil, errZeroValue
	}
	return b.original, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are
// accepted.
func (b *BIC) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("bic: YAML line %d: expected a scalar, got %s", value.Line, yamlKindName(value.Kind))
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("YAML line %d: %w", value.Line, err)
	}
	*b = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler. A BIC is a CBOR text string
// (major type 3) holding the original input.
func (b BIC) MarshalCBOR() ([]byte, error) {
	if b.IsZero() {
		return nil, errZeroValue
	}
	return codec.Marshal(b.original)
}

// UnmarshalCBOR implements cbor.Unmarshaler. Data that is not a CBOR
// text string fails with a decoding error; a text string that is not
// a valid BIC fails with the same error Parse would return, including
// text strings whose bytes are not valid UTF-8.
func (b *BIC) UnmarshalCBOR(data []byte) error {
	var raw string
	if err := codec.UnmarshalLenient(data, &raw); err != nil {
		return fmt.Errorf("bic: invalid CBOR: %w", err)
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value implements driver.Valuer. A BIC is stored as a string column
// holding the original input.
func (b BIC) Value() (driver.Value, error) {
	if b.IsZero() {
		return nil, errZeroValue
	}
	return b.original, nil
}

// Scan implements sql.Scanner for string and []byte columns. NULL is
// rejected; use sql.Null[BIC] for nullable columns.
func (b *BIC) Scan(src any) error {
	var raw string
	switch value := src.(type) {
	case string:
		raw = value
	case []byte:
		raw = string(value)
	case nil:
		return errors.New("bic: cannot scan NULL into BIC")
	default:
		return fmt.Errorf("bic: cannot scan %T into BIC", src)
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
