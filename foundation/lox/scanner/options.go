// File: options.go
// Title: Scanner Options
// Description: Configures keyword table, error policy, reporting and
//              logging of a scanner run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package scanner

import (
	"fmt"
	"strings"

	mlxlog "github.com/msto63/mLox/foundation/core/log"
	"github.com/msto63/mLox/foundation/lox/diag"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Policy selects what the scanner does after a lexical error
type Policy int

const (
	// PolicyAbort stops at the first error
	PolicyAbort Policy = iota

	// PolicyCollect skips the offending input and keeps scanning, returning
	// all errors together at the end
	PolicyCollect
)

// String returns the policy name used in configuration files
func (p Policy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicyCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "abort" or "collect"
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return PolicyAbort, nil
	case "collect":
		return PolicyCollect, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown scanner error policy %q", s)
	}
}

// Options configures a Scanner. The zero value is usable.
type Options struct {
	// Keywords resolves identifiers to reserved words; nil means the Lox table
	Keywords token.Keywords

	// Policy selects abort or collect behaviour on errors
	Policy Policy

	// MaxErrors stops a collecting scan after this many errors; 0 means no limit
	MaxErrors int

	// Reporter receives every error as it is found; nil means discard
	Reporter diag.Reporter

	// Logger receives debug and trace output; nil means discard
	Logger *mlxlog.Logger
}

// DefaultOptions returns the options of the original single-error scanner
func DefaultOptions() Options {
	return Options{
		Keywords: token.DefaultKeywords(),
		Policy:   PolicyAbort,
	}
}

func (o Options) withDefaults() Options {
	if o.Keywords == nil {
		o.Keywords = token.DefaultKeywords()
	}
	if o.Reporter == nil {
		o.Reporter = diag.Discard
	}
	if o.Logger == nil {
		o.Logger = mlxlog.Discard()
	}
	o.Logger = o.Logger.WithName("lox-scanner")
	return o
}
