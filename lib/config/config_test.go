// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "bic.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != OutputText {
		t.Errorf("expected output=text, got %s", cfg.Output)
	}
	if cfg.LogLevel != LogLevelInfo {
		t.Errorf("expected log_level=info, got %s", cfg.LogLevel)
	}
	if cfg.Sort.Unique {
		t.Error("expected sort.unique=false")
	}
	if cfg.Check.FailFast {
		t.Error("expected check.fail_fast=false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail when BIC_CONFIG is not set")
	}
	if !strings.Contains(err.Error(), "BIC_CONFIG environment variable not set") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadWithEnvVar(t *testing.T) {
	configPath := writeConfig(t, `
output: json
log_level: debug
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("expected output=json, got %s", cfg.Output)
	}
	if cfg.LogLevel != LogLevelDebug {
		t.Errorf("expected log_level=debug, got %s", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
output: yaml
log_level: warn

sort:
  unique: true

check:
  fail_fast: true
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Output != OutputYAML {
		t.Errorf("expected output=yaml, got %s", cfg.Output)
	}
	if cfg.LogLevel != LogLevelWarn {
		t.Errorf("expected log_level=warn, got %s", cfg.LogLevel)
	}
	if !cfg.Sort.Unique {
		t.Error("expected sort.unique=true")
	}
	if !cfg.Check.FailFast {
		t.Error("expected check.fail_fast=true")
	}
}

func TestLoadFileKeepsDefaultsForMissingKeys(t *testing.T) {
	configPath := writeConfig(t, "sort:\n  unique: true\n")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Output != OutputText {
		t.Errorf("expected default output=text, got %s", cfg.Output)
	}
	if cfg.LogLevel != LogLevelInfo {
		t.Errorf("expected default log_level=info, got %s", cfg.LogLevel)
	}
	if !cfg.Sort.Unique {
		t.Error("expected sort.unique=true")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile on an empty file failed: %v", err)
	}
	if cfg.Output != OutputText {
		t.Errorf("expected default output=text, got %s", cfg.Output)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	configPath := writeConfig(t, "sort:\n  uniq: true\n")

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("LoadFile should reject a misspelled key")
	}
	if !strings.Contains(err.Error(), "uniq") {
		t.Errorf("error should name the unknown key: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadFile should fail for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoadFileInvalidValues(t *testing.T) {
	configPath := writeConfig(t, "output: xml\nlog_level: loud\n")

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("LoadFile should reject invalid values")
	}
	for _, want := range []string{`invalid output "xml"`, `invalid log_level "loud"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should contain %q", err, want)
		}
	}
}

func TestResolve(t *testing.T) {
	flagPath := writeConfig(t, "output: cbor\n")
	envPath := writeConfig(t, "output: json\n")

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvVar, envPath)
		cfg, err := Resolve(flagPath)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if cfg.Output != OutputCBOR {
			t.Errorf("expected output=cbor, got %s", cfg.Output)
		}
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv(EnvVar, envPath)
		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if cfg.Output != OutputJSON {
			t.Errorf("expected output=json, got %s", cfg.Output)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if cfg.Output != OutputText {
			t.Errorf("expected output=text, got %s", cfg.Output)
		}
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  slog.Level
	}{
		{LogLevelDebug, slog.LevelDebug},
		{LogLevelInfo, slog.LevelInfo},
		{LogLevelWarn, slog.LevelWarn},
		{LogLevelError, slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, test := range tests {
		if got := test.level.SlogLevel(); got != test.want {
			t.Errorf("LogLevel(%q).SlogLevel() = %v, want %v", test.level, got, test.want)
		}
	}
}
