// File: options.go
// Title: Parser Options
// Description: Configures nesting limits, trailing token handling,
//              reporting and logging of the expression parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	mlxlog "github.com/msto63/mLox/foundation/core/log"
	"github.com/msto63/mLox/foundation/lox/diag"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is 0
const DefaultMaxDepth = 512

// Options configures a Parser. The zero value is usable.
type Options struct {
	// MaxDepth bounds nested groupings and unary operators. 0 selects
	// DefaultMaxDepth, a negative value disables the limit.
	MaxDepth int

	// AllowTrailing accepts tokens after the expression instead of
	// requiring EOF
	AllowTrailing bool

	// Reporter receives the diagnostic of a failed parse; nil means discard
	Reporter diag.Reporter

	// Logger receives debug output; nil means discard
	Logger *mlxlog.Logger
}

// DefaultOptions returns the default parser options
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Reporter == nil {
		o.Reporter = diag.Discard
	}
	if o.Logger == nil {
		o.Logger = mlxlog.Discard()
	}
	o.Logger = o.Logger.WithName("lox-parser")
	return o
}
