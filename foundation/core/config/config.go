// File: config.go
// Title: Core Configuration Implementation
// Description: Implements the typed mLox configuration and loading it from
//              TOML and YAML files. Values missing from a file keep their
//              defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed sections for scanner, parser and output

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mlxerror "github.com/msto63/mLox/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Scanner error policies
const (
	PolicyAbort   = "abort"
	PolicyCollect = "collect"
)

// Output formats for rendered syntax trees
const (
	OutputSExpr = "sexpr"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
	OutputTOML  = "toml"
)

// DefaultMaxDepth bounds grouping and unary nesting in the parser
const DefaultMaxDepth = 512

// Config holds the complete mLox configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Scanner ScannerConfig `toml:"scanner" yaml:"scanner"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ScannerConfig controls lexical error handling
type ScannerConfig struct {
	ErrorPolicy string `toml:"error_policy" yaml:"error_policy"`
	MaxErrors   int    `toml:"max_errors" yaml:"max_errors"`
}

// ParserConfig controls the expression parser
type ParserConfig struct {
	MaxDepth   int  `toml:"max_depth" yaml:"max_depth"`
	RequireEOF bool `toml:"require_eof" yaml:"require_eof"`
}

// OutputConfig controls how results are rendered by the CLI
type OutputConfig struct {
	Format     string `toml:"format" yaml:"format"`
	Color      bool   `toml:"color" yaml:"color"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "mlox",
			LogLevel:  "warn",
			LogFormat: "console",
		},
		Scanner: ScannerConfig{
			ErrorPolicy: PolicyAbort,
		},
		Parser: ParserConfig{
			MaxDepth:   DefaultMaxDepth,
			RequireEOF: true,
		},
		Output: OutputConfig{
			Format: OutputSExpr,
			Color:  true,
		},
	}
}

// Load loads configuration from a file, detecting the format from its extension
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mlxerror.New("config file path cannot be empty").
			WithCode(mlxerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mlxerror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(mlxerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("filePath", filePath)
		}
		return nil, mlxerror.Wrap(err, "failed to read config file").
			WithCode(mlxerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := Parse(content, format)
	if err != nil {
		return nil, mlxerror.Wrap(err, "failed to load config file").
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	return cfg, nil
}

// Parse decodes configuration content over the defaults and validates the result
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML, FormatAuto:
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg); err != nil {
			return nil, mlxerror.Wrap(err, "TOML parse error").
				WithCode(mlxerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, mlxerror.Wrap(err, "YAML parse error").
				WithCode(mlxerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	default:
		return nil, mlxerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mlxerror.CodeInvalidInput).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.General.Name = os.ExpandEnv(c.General.Name)
	if c.General.Name == "" {
		c.General.Name = "mlox"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.Scanner.ErrorPolicy == "" {
		c.Scanner.ErrorPolicy = PolicyAbort
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = DefaultMaxDepth
	}
	if c.Output.Format == "" {
		c.Output.Format = OutputSExpr
	}

	c.General.LogLevel = strings.ToLower(c.General.LogLevel)
	c.General.LogFormat = strings.ToLower(c.General.LogFormat)
	c.Scanner.ErrorPolicy = strings.ToLower(c.Scanner.ErrorPolicy)
	c.Output.Format = strings.ToLower(c.Output.Format)
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
