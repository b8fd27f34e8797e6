// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, defaults, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial configuration tests
// - 2026-10-19 v0.2.0: Typed sections and MLOX_CONFIG discovery

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mlxerror "github.com/msto63/mLox/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scanner.ErrorPolicy != PolicyAbort {
		t.Errorf("ErrorPolicy = %q, want %q", cfg.Scanner.ErrorPolicy, PolicyAbort)
	}
	if cfg.Parser.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.Parser.MaxDepth, DefaultMaxDepth)
	}
	if !cfg.Parser.RequireEOF {
		t.Error("RequireEOF should default to true")
	}
	if cfg.Output.Format != OutputSExpr {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, OutputSExpr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mlox.toml", `
[general]
log_level = "DEBUG"

[scanner]
error_policy = "collect"
max_errors = 10

[parser]
require_eof = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}
	if cfg.Scanner.ErrorPolicy != PolicyCollect || cfg.Scanner.MaxErrors != 10 {
		t.Errorf("Scanner = %+v", cfg.Scanner)
	}
	if cfg.Parser.RequireEOF {
		t.Error("RequireEOF should be false")
	}
	if cfg.Parser.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default %d", cfg.Parser.MaxDepth, DefaultMaxDepth)
	}
	if cfg.General.Name != "mlox" {
		t.Errorf("Name = %q, want mlox", cfg.General.Name)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mlox.yml", `
parser:
  max_depth: 64
output:
  format: json
  show_tokens: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Parser.MaxDepth != 64 {
		t.Errorf("MaxDepth = %d, want 64", cfg.Parser.MaxDepth)
	}
	if cfg.Output.Format != OutputJSON || !cfg.Output.ShowTokens {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Output.Color {
		t.Error("Color should keep its default")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantCode mlxerror.Code
	}{
		{"empty path", "", mlxerror.CodeInvalidInput},
		{"missing file", filepath.Join(dir, "missing.toml"), mlxerror.CodeNotFound},
		{"broken toml", writeFile(t, dir, "broken.toml", "[general\nname ="), mlxerror.CodeInvalidConfig},
		{"broken yaml", writeFile(t, dir, "broken.yaml", "general: [unclosed"), mlxerror.CodeInvalidConfig},
		{"invalid values", writeFile(t, dir, "bad.toml", "[scanner]\nerror_policy = \"retry\"\n"), mlxerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !mlxerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Scanner.ErrorPolicy = "retry"
	cfg.Scanner.MaxErrors = -1
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	for _, key := range []string{"scanner.error_policy", "scanner.max_errors", "output.format"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() error %q does not mention %s", err.Error(), key)
		}
	}

	if got := mlxerror.GetCode(err); got != mlxerror.CodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", got, mlxerror.CodeInvalidConfig)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[parser]\nmax_depth = 7\n")

	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Parser.MaxDepth != 7 {
		t.Errorf("MaxDepth = %d, want 7", cfg.Parser.MaxDepth)
	}

	explicit, err := LoadOrDefault(path)
	if err != nil || explicit.Parser.MaxDepth != 7 {
		t.Errorf("LoadOrDefault() = %+v, %v", explicit, err)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	second := writeFile(t, dir, "second.yaml", "general:\n  name: x\n")

	got := FindConfigFile([]string{filepath.Join(dir, "first.toml"), dir, second})
	if got != second {
		t.Errorf("FindConfigFile() = %q, want %q", got, second)
	}

	if got := FindConfigFile([]string{filepath.Join(dir, "none")}); got != "" {
		t.Errorf("FindConfigFile() = %q, want empty", got)
	}
}
