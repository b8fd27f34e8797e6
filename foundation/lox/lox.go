// File: lox.go
// Title: Lox Engine
// Description: Provides the high-level API running the scanner and parser
//              as one pipeline with configuration, logging and run
//              correlation IDs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package lox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	mlxconfig "github.com/msto63/mLox/foundation/core/config"
	mlxerror "github.com/msto63/mLox/foundation/core/error"
	mlxlog "github.com/msto63/mLox/foundation/core/log"
	"github.com/msto63/mLox/foundation/lox/ast"
	"github.com/msto63/mLox/foundation/lox/diag"
	"github.com/msto63/mLox/foundation/lox/parser"
	"github.com/msto63/mLox/foundation/lox/scanner"
	"github.com/msto63/mLox/foundation/lox/token"
)

// DefaultMaxSourceLength limits the input size of a run
const DefaultMaxSourceLength = 1 << 20

// Engine coordinates scanning and parsing. It keeps no per-run state and
// is safe for concurrent use.
type Engine struct {
	logger  *mlxlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine, scanner and parser output (defaults to the default logger)
	Logger *mlxlog.Logger

	// Reporter receives every diagnostic (defaults to discard)
	Reporter diag.Reporter

	// Keywords overrides the reserved word table
	Keywords token.Keywords

	// ScanPolicy selects abort or collect on lexical errors
	ScanPolicy scanner.Policy

	// MaxErrors bounds a collecting scan (0: unlimited)
	MaxErrors int

	// MaxDepth bounds expression nesting (0: parser default, negative: unlimited)
	MaxDepth int

	// AllowTrailing accepts tokens after the expression
	AllowTrailing bool

	// MaxSourceLength rejects larger inputs (0: DefaultMaxSourceLength)
	MaxSourceLength int
}

// Result is the outcome of a successful run
type Result struct {
	// ID correlates log entries of this run
	ID string

	// Source is the input text
	Source string

	// Tokens is the scanned sequence ending in EOF
	Tokens []token.Token

	// Expr is the parsed tree; nil for scan-only runs
	Expr ast.Expr

	// Duration is the wall time of the run
	Duration time.Duration
}

// String renders the parsed tree in bracketed form
func (r *Result) String() string {
	if r.Expr == nil {
		return ""
	}
	return ast.Print(r.Expr)
}

// NewEngine creates an engine with the given options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:          mlxlog.GetDefault(),
		Reporter:        diag.Discard,
		MaxSourceLength: DefaultMaxSourceLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Reporter != nil {
			options.Reporter = provided.Reporter
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		if provided.MaxErrors < 0 {
			return nil, mlxerror.New("max errors must not be negative").
				WithCode(mlxerror.CodeInvalidInput).
				WithOperation("lox.NewEngine").
				WithDetail("maxErrors", provided.MaxErrors)
		}
		options.Keywords = provided.Keywords
		options.ScanPolicy = provided.ScanPolicy
		options.MaxErrors = provided.MaxErrors
		options.MaxDepth = provided.MaxDepth
		options.AllowTrailing = provided.AllowTrailing
	}

	logger := options.Logger.WithName("lox-engine")

	logger.Debug("Lox engine initialized", mlxlog.Fields{
		"scanPolicy":      options.ScanPolicy.String(),
		"maxErrors":       options.MaxErrors,
		"maxDepth":        options.MaxDepth,
		"allowTrailing":   options.AllowTrailing,
		"maxSourceLength": options.MaxSourceLength,
	})

	return &Engine{
		logger:  logger,
		options: options,
	}, nil
}

// OptionsFromConfig maps the scanner and parser sections of cfg to engine options
func OptionsFromConfig(cfg *mlxconfig.Config) (Options, error) {
	if cfg == nil {
		cfg = mlxconfig.Default()
	}

	policy, err := scanner.ParsePolicy(cfg.Scanner.ErrorPolicy)
	if err != nil {
		return Options{}, mlxerror.Wrap(err, "invalid scanner configuration").
			WithCode(mlxerror.CodeInvalidConfig).
			WithOperation("lox.OptionsFromConfig")
	}

	return Options{
		ScanPolicy:    policy,
		MaxErrors:     cfg.Scanner.MaxErrors,
		MaxDepth:      cfg.Parser.MaxDepth,
		AllowTrailing: !cfg.Parser.RequireEOF,
	}, nil
}

// Run scans and parses source
func (e *Engine) Run(ctx context.Context, source string) (*Result, error) {
	return e.run(ctx, source, true)
}

// Tokens only scans source; the result has no expression
func (e *Engine) Tokens(ctx context.Context, source string) (*Result, error) {
	return e.run(ctx, source, false)
}

func (e *Engine) run(ctx context.Context, source string, parse bool) (*Result, error) {
	start := time.Now()
	result := &Result{
		ID:     uuid.NewString(),
		Source: source,
	}
	logger := e.logger.WithCorrelationID(result.ID)

	if err := e.validateInput(source); err != nil {
		logger.LogError(err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens, err := scanner.Scan(source, scanner.Options{
		Keywords:  e.options.Keywords,
		Policy:    e.options.ScanPolicy,
		MaxErrors: e.options.MaxErrors,
		Reporter:  e.options.Reporter,
		Logger:    logger,
	})
	if err != nil {
		e.logFailure(logger, "scan", err)
		return nil, err
	}
	result.Tokens = tokens

	if parse {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		expr, err := parser.New(tokens, parser.Options{
			MaxDepth:      e.options.MaxDepth,
			AllowTrailing: e.options.AllowTrailing,
			Reporter:      e.options.Reporter,
			Logger:        logger,
		}).Parse()
		if err != nil {
			e.logFailure(logger, "parse", err)
			return nil, err
		}
		result.Expr = expr
	}

	result.Duration = time.Since(start)
	logger.Debug("Run completed", mlxlog.Fields{
		"tokens":      len(result.Tokens),
		"parsed":      parse,
		"duration_ms": result.Duration.Milliseconds(),
	})

	return result, nil
}

func (e *Engine) validateInput(source string) error {
	if len(source) > e.options.MaxSourceLength {
		return mlxerror.New(fmt.Sprintf("source exceeds maximum length of %d bytes", e.options.MaxSourceLength)).
			WithCode(mlxerror.CodeInvalidInput).
			WithOperation("lox.Run").
			WithDetail("length", len(source))
	}
	return nil
}

func (e *Engine) logFailure(logger *mlxlog.Logger, phase string, err error) {
	var list diag.ErrorList
	if errors.As(err, &list) {
		for _, d := range list {
			logger.LogError(d.AsError())
		}
		return
	}

	var d *diag.Error
	if errors.As(err, &d) {
		logger.LogError(d.AsError())
		return
	}

	logger.ErrorWithErr(phase+" failed", err)
}
