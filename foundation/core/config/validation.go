// File: validation.go
// Title: Configuration Validation
// Description: Validates configuration values and reports all violations
//              as a single structured error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial rule based validation
// - 2026-10-19 v0.2.0: Fixed rules for the typed configuration sections

package config

import (
	"fmt"
	"strings"

	mlxerror "github.com/msto63/mLox/foundation/core/error"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text", "console"}
	validPolicies   = []string{PolicyAbort, PolicyCollect}
	validOutputs    = []string{OutputSExpr, OutputYAML, OutputJSON, OutputTOML}
)

// ValidationError describes a single invalid configuration value
type ValidationError struct {
	Key     string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Key, e.Message, e.Value)
}

// Validate checks all configuration values. It returns nil or an
// INVALID_CONFIG error listing every violation.
func (c *Config) Validate() error {
	var violations []ValidationError

	check := func(ok bool, key string, value interface{}, message string) {
		if !ok {
			violations = append(violations, ValidationError{Key: key, Value: value, Message: message})
		}
	}

	check(contains(validLogLevels, c.General.LogLevel), "general.log_level", c.General.LogLevel,
		"must be one of "+strings.Join(validLogLevels, ", "))
	check(contains(validLogFormats, c.General.LogFormat), "general.log_format", c.General.LogFormat,
		"must be one of "+strings.Join(validLogFormats, ", "))
	check(contains(validPolicies, c.Scanner.ErrorPolicy), "scanner.error_policy", c.Scanner.ErrorPolicy,
		"must be one of "+strings.Join(validPolicies, ", "))
	check(c.Scanner.MaxErrors >= 0, "scanner.max_errors", c.Scanner.MaxErrors, "must not be negative")
	check(c.Parser.MaxDepth >= 0, "parser.max_depth", c.Parser.MaxDepth, "must not be negative")
	check(contains(validOutputs, c.Output.Format), "output.format", c.Output.Format,
		"must be one of "+strings.Join(validOutputs, ", "))

	if len(violations) == 0 {
		return nil
	}

	messages := make([]string, len(violations))
	keys := make([]string, len(violations))
	for i, v := range violations {
		messages[i] = v.Error()
		keys[i] = v.Key
	}

	return mlxerror.New("invalid configuration: "+strings.Join(messages, "; ")).
		WithCode(mlxerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("keys", keys)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
