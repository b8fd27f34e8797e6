// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick log levels for errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2026-10-19 v0.2.0: Severity mapping for lexical and syntax codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in user input, such as a malformed expression
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, such as an unusable configuration
	SeverityHigh

	// SeverityCritical indicates an internal failure of the toolchain
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh
	case CodeInvalidCharacter, CodeUnterminatedString,
		CodeUnexpectedToken, CodeExpectExpression, CodeParse,
		CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
