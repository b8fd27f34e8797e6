// File: diag.go
// Title: Lox Diagnostics
// Description: Defines the typed scan and parse errors shared by scanner
//              and parser, the line-tagged diagnostic format and the mapping
//              to structured foundation errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package diag formats and reports scanner and parser diagnostics.
package diag

import (
	"fmt"
	"strings"

	mlxerror "github.com/msto63/mLox/foundation/core/error"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Kind classifies a diagnostic
type Kind int

const (
	// KindInvalidCharacter reports a character that starts no token
	KindInvalidCharacter Kind = iota

	// KindUnterminatedString reports a string literal still open at end of source
	KindUnterminatedString

	// KindUnexpectedToken reports a token of the wrong kind where a specific kind was required
	KindUnexpectedToken

	// KindPrimaryExpression reports a token that cannot start an expression
	KindPrimaryExpression

	// KindParse reports any other parser failure at a token
	KindParse
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid character"
	case KindUnterminatedString:
		return "unterminated string"
	case KindUnexpectedToken:
		return "unexpected token"
	case KindPrimaryExpression:
		return "primary expression"
	case KindParse:
		return "parse error"
	default:
		return "unknown"
	}
}

// IsLexical reports whether k is produced by the scanner
func (k Kind) IsLexical() bool {
	return k == KindInvalidCharacter || k == KindUnterminatedString
}

// Error is a single scan or parse diagnostic. Only the fields relevant to
// its Kind are set: Char for invalid characters, Token for parser errors
// and Expected for unexpected tokens.
type Error struct {
	Kind     Kind
	Line     int
	Message  string
	Char     string
	Token    token.Token
	Expected token.Kind

	code mlxerror.Code
}

// InvalidCharacter creates the scan error for an unexpected character
func InvalidCharacter(line int, char string) *Error {
	return &Error{
		Kind:    KindInvalidCharacter,
		Line:    line,
		Message: fmt.Sprintf("Unexpected character '%s'.", char),
		Char:    char,
		code:    mlxerror.CodeInvalidCharacter,
	}
}

// UnterminatedString creates the scan error for a string opened on line
// and never closed
func UnterminatedString(line int) *Error {
	return &Error{
		Kind:    KindUnterminatedString,
		Line:    line,
		Message: "Unterminated string.",
		code:    mlxerror.CodeUnterminatedString,
	}
}

// UnexpectedToken creates the parse error raised when tok is not of the expected kind
func UnexpectedToken(tok token.Token, expected token.Kind, message string) *Error {
	return &Error{
		Kind:     KindUnexpectedToken,
		Line:     tok.Line,
		Message:  message,
		Token:    tok,
		Expected: expected,
		code:     mlxerror.CodeUnexpectedToken,
	}
}

// PrimaryExpression creates the parse error for a token that starts no expression
func PrimaryExpression(tok token.Token, message string) *Error {
	return &Error{
		Kind:    KindPrimaryExpression,
		Line:    tok.Line,
		Message: message,
		Token:   tok,
		code:    mlxerror.CodeExpectExpression,
	}
}

// Parse creates a generic parse error at tok
func Parse(tok token.Token, message string) *Error {
	return &Error{
		Kind:    KindParse,
		Line:    tok.Line,
		Message: message,
		Token:   tok,
		code:    mlxerror.CodeParse,
	}
}

// NestingTooDeep creates the parse error for input nested beyond the parser limit
func NestingTooDeep(tok token.Token, message string) *Error {
	err := Parse(tok, message)
	err.code = mlxerror.CodeNestingTooDeep
	return err
}

// Where returns the location suffix of the diagnostic line
func (e *Error) Where() string {
	if e.Kind.IsLexical() {
		return ""
	}
	return Where(e.Token)
}

// Error implements the error interface with the diagnostic line
func (e *Error) Error() string {
	return Format(e.Line, e.Where(), e.Message)
}

// Code returns the foundation error code of the diagnostic
func (e *Error) Code() mlxerror.Code {
	return e.code
}

// AsError converts the diagnostic into a structured foundation error
func (e *Error) AsError() *mlxerror.Error {
	err := mlxerror.New(e.Error()).
		WithCode(e.code).
		WithDetail("line", e.Line).
		WithDetail("kind", e.Kind.String())

	if e.Kind.IsLexical() {
		err = err.WithOperation("scan")
		if e.Char != "" {
			err = err.WithDetail("char", e.Char)
		}
	} else {
		err = err.WithOperation("parse").
			WithDetail("lexeme", e.Token.Lexeme).
			WithDetail("token", e.Token.Kind.String())
	}

	if e.Kind == KindUnexpectedToken {
		err = err.WithDetail("expected", e.Expected.String())
	}

	return err
}

// Format renders "[line N] Error<where>: message"
func Format(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// Where returns " at end" for the EOF token and " at 'lexeme'" otherwise
func Where(tok token.Token) string {
	if tok.Kind == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

// ErrorList collects diagnostics in the order they were found
type ErrorList []*Error

// Add appends a diagnostic
func (l *ErrorList) Add(err *Error) {
	*l = append(*l, err)
}

// Len returns the number of diagnostics
func (l ErrorList) Len() int {
	return len(l)
}

// Error joins all diagnostic lines
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	lines := make([]string, len(l))
	for i, err := range l {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, err := range l {
		errs[i] = err
	}
	return errs
}

// Err returns nil for an empty list and the list itself otherwise
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
