// File: doc.go
// Title: Lox Package Documentation
// Description: Package lox runs the Lox expression front end: scanning
//              source text into tokens and parsing tokens into a tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package lox provides the Lox expression front end.

The pipeline has two stages. The scanner (package scanner) turns source
text into tokens ending in EOF; the parser (package parser) turns tokens
into an expression tree (package ast). Failures are typed diagnostics
(package diag) formatted as

	[line 1] Error at ')': Expect expression.

# Basic Usage

	engine, err := lox.NewEngine()
	if err != nil {
		return err
	}

	result, err := engine.Run(ctx, "-123 * (45.67)")
	if err != nil {
		return err
	}
	fmt.Println(result) // (* (- 123) (group 45.67))

# Configuration

OptionsFromConfig maps a loaded mLox configuration to engine options:

	cfg, _ := mlxconfig.LoadFromEnv()
	opts, err := lox.OptionsFromConfig(cfg)
	opts.Logger = logger
	engine, err := lox.NewEngine(opts)

# Packages

  - literal: Boolean, Null, Number and String constants
  - token: token kinds, tokens and the keyword table
  - diag: diagnostics, error lists and reporters
  - scanner: source text to tokens
  - ast: expression nodes, visitor, printer and tree export
  - parser: tokens to expression tree
*/
package lox
