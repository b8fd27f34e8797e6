// File: codes.go
// Title: Error Codes
// Description: Structured error codes for categorizing failures raised by the
//              expression toolchain and its configuration layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error code catalogue
// - 2026-10-19 v0.2.0: Lexical and syntax codes for the Lox front end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexical analysis
	CodeInvalidCharacter   Code = "LOX_INVALID_CHARACTER"
	CodeUnterminatedString Code = "LOX_UNTERMINATED_STRING"

	// Syntax analysis
	CodeUnexpectedToken  Code = "LOX_UNEXPECTED_TOKEN"
	CodeExpectExpression Code = "LOX_EXPECT_EXPRESSION"
	CodeParse            Code = "LOX_PARSE"
	CodeNestingTooDeep   Code = "LOX_NESTING_TOO_DEEP"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidCharacter, CodeUnterminatedString,
		CodeUnexpectedToken, CodeExpectExpression, CodeParse, CodeNestingTooDeep,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidCharacter, CodeUnterminatedString:
		return "lexical"
	case CodeUnexpectedToken, CodeExpectExpression, CodeParse, CodeNestingTooDeep:
		return "syntax"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
