// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bic/lib/codec"
	"github.com/bureau-foundation/bic/lib/config"
)

// OutputFormat is an embeddable struct that adds --json, --yaml and
// --cbor flags to a command's parameter struct. Embedding it provides
// the flags (via [BindFlags]) and the [OutputFormat.Emit] method.
//
//	type parseParams struct {
//	    cli.OutputFormat
//	}
//
//	// In Run:
//	if done, err := params.Emit(stdout, cfg.Output, results); done {
//	    return err
//	}
//	// ... text formatting ...
type OutputFormat struct {
	OutputJSON bool `flag:"json" desc:"output as JSON"`
	OutputYAML bool `flag:"yaml" desc:"output as YAML"`
	OutputCBOR bool `flag:"cbor" desc:"output as hex-encoded deterministic CBOR"`
}

// Format returns the format selected by the flags, or fallback when no
// format flag is set. Setting more than one format flag is an error.
func (o *OutputFormat) Format(fallback config.Output) (config.Output, error) {
	var selected []config.Output
	if o.OutputJSON {
		selected = append(selected, config.OutputJSON)
	}
	if o.OutputYAML {
		selected = append(selected, config.OutputYAML)
	}
	if o.OutputCBOR {
		selected = append(selected, config.OutputCBOR)
	}
	switch len(selected) {
	case 0:
		return fallback, nil
	case 1:
		return selected[0], nil
	default:
		return "", errors.New("--json, --yaml and --cbor are mutually exclusive")
	}
}

// Emit writes result to w in the selected structured format. Returns
// (true, nil) on success, (true, err) on failure, or (false, nil) when
// the selected format is text and the caller should proceed with text
// formatting.
//
// Nil slices are normalized to empty slices, so JSON output is [] and
// never null.
func (o *OutputFormat) Emit(w io.Writer, fallback config.Output, result any) (bool, error) {
	format, err := o.Format(fallback)
	if err != nil {
		return true, err
	}
	switch format {
	case config.OutputJSON:
		return true, WriteJSON(w, normalizeNilSlice(result))
	case config.OutputYAML:
		return true, WriteYAML(w, normalizeNilSlice(result))
	case config.OutputCBOR:
		return true, WriteCBOR(w, normalizeNilSlice(result))
	default:
		return false, nil
	}
}

// WriteJSON marshals value as indented JSON and writes it to w.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// WriteYAML marshals value as a YAML document and writes it to w.
func WriteYAML(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	return errors.Join(encoder.Encode(value), encoder.Close())
}

// WriteCBOR writes the hex of the deterministic CBOR encoding of value
// to w, followed by a newline.
func WriteCBOR(w io.Writer, value any) error {
	if err := codec.NewEncoder(hex.NewEncoder(w)).Encode(value); err != nil {
		return fmt.Errorf("encoding CBOR: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice. Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
