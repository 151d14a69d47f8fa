// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable read by Load.
const EnvVar = "BIC_CONFIG"

// Output is the default output format of the bic command.
type Output string

const (
	// OutputText prints aligned, human-readable tables.
	OutputText Output = "text"
	// OutputJSON prints indented JSON.
	OutputJSON Output = "json"
	// OutputYAML prints YAML documents.
	OutputYAML Output = "yaml"
	// OutputCBOR prints the hex of the deterministic CBOR encoding.
	OutputCBOR Output = "cbor"
)

// LogLevel is the minimum level of diagnostic log records.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config is the configuration of the bic command.
type Config struct {
	// Output is the format used when neither --json nor --yaml is given.
	// Default: text
	Output Output `yaml:"output"`

	// LogLevel controls diagnostic logging on stderr.
	// Default: info
	LogLevel LogLevel `yaml:"log_level"`

	// Sort configures "bic sort".
	Sort SortConfig `yaml:"sort"`

	// Check configures "bic check".
	Check CheckConfig `yaml:"check"`
}

// SortConfig configures "bic sort".
type SortConfig struct {
	// Unique drops codes equal to an earlier one.
	// Default: false
	Unique bool `yaml:"unique"`
}

// CheckConfig configures "bic check".
type CheckConfig struct {
	// FailFast stops at the first invalid code.
	// Default: false
	FailFast bool `yaml:"fail_fast"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:   OutputText,
		LogLevel: LogLevelInfo,
	}
}

// Load loads the file named by BIC_CONFIG. It fails if the variable is
// not set; callers that treat configuration as optional use Resolve.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your bic.yaml config file, or use --config flag", EnvVar)
	}
	return LoadFile(configPath)
}

// LoadFile loads and validates the configuration file at path. Keys
// absent from the file keep their Default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the configuration for a command invocation: the file
// at flagPath if set, else the file named by BIC_CONFIG if set, else
// Default.
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvVar) != "" {
		return Load()
	}
	return Default(), nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML, OutputCBOR:
	default:
		errs = append(errs, fmt.Errorf("invalid output %q (want text, json, yaml or cbor)", c.Output))
	}

	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		errs = append(errs, fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel))
	}

	return errors.Join(errs...)
}

// SlogLevel converts LogLevel for use in slog.HandlerOptions. Unknown
// values map to slog.LevelInfo.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
