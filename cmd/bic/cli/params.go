// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a [pflag.FlagSet] with flags bound to the tagged
// fields of params. params must be a pointer to a struct. Panics on
// invalid input (programming error, not runtime data).
//
//	var params composeParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        return cli.FlagsFromParams("compose", &params)
//	    },
//	    Run: func(args []string) error {
//	        // params fields are populated after flag parsing
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers pflag entries for each tagged field in params.
// params must be a pointer to a struct.
//
// Three tags control flag binding:
//
//   - flag:"name" or flag:"name,n" -- the long flag name and optional
//     single-character shorthand. Fields without a flag tag are skipped.
//   - desc:"help text" -- the flag's help description.
//   - default:"value" -- the default value, parsed according to the
//     field's Go type. If omitted, the type's zero value is used.
//
// Supported field types are string and bool. Embedded structs are bound
// recursively, which is how [OutputFormat] contributes its flags.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStructFields(value.Elem(), flagSet)
}

func bindStructFields(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStructFields(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		flagTag := field.Tag.Get("flag")
		if flagTag == "" {
			continue
		}
		if !fieldValue.CanSet() {
			return fmt.Errorf("field %s: not settable (unexported, or inside an unexported embedded struct)", field.Name)
		}

		name, shorthand, _ := strings.Cut(flagTag, ",")
		description := field.Tag.Get("desc")
		defaultString := field.Tag.Get("default")

		if err := bindField(fieldValue, flagSet, name, shorthand, description, defaultString); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

func bindField(fieldValue reflect.Value, flagSet *pflag.FlagSet, name, shorthand, description, defaultString string) error {
	switch target := fieldValue.Addr().Interface().(type) {
	case *string:
		flagSet.StringVarP(target, name, shorthand, defaultString, description)

	case *bool:
		defaultValue := false
		if defaultString != "" {
			parsed, err := strconv.ParseBool(defaultString)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", name, err)
			}
			defaultValue = parsed
		}
		flagSet.BoolVarP(target, name, shorthand, defaultValue, description)

	default:
		return fmt.Errorf("unsupported type %s for flag --%s", fieldValue.Type(), name)
	}
	return nil
}
