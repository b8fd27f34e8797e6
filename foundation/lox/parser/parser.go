// File: parser.go
// Title: Lox Expression Parser
// Description: Recursive descent parser turning a token sequence into one
//              expression tree. Binary layers are built iteratively and lean
//              left; unary operators nest to the right.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Grammar, lowest precedence first:
//
//	expression → equality
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"

// Package parser builds Lox expression trees from scanned tokens.
package parser

import (
	"github.com/msto63/mLox/foundation/lox/ast"
	"github.com/msto63/mLox/foundation/lox/diag"
	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/scanner"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Parser owns a token sequence and a forward-only cursor into it
type Parser struct {
	tokens  []token.Token
	current int
	depth   int
	opts    Options
}

// New creates a parser over tokens. A sequence without a trailing EOF
// token gets one appended.
func New(tokens []token.Token, opts Options) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, "", literal.Null(), line))
	}

	return &Parser{
		tokens: tokens,
		opts:   opts.withDefaults(),
	}
}

// Parse parses one expression. On failure it returns a nil expression and
// a *diag.Error that has already been sent to the reporter.
func (p *Parser) Parse() (ast.Expr, error) {
	timer := p.opts.Logger.StartTimer("parse").WithField("tokens", len(p.tokens))

	expr, err := p.expression()
	if err == nil && !p.opts.AllowTrailing && !p.isAtEnd() {
		err = diag.UnexpectedToken(p.peek(), token.EOF, "Expect end of expression.")
	}

	if err != nil {
		p.opts.Reporter.Report(err)
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("nodes", ast.Count(expr)).WithField("depth", ast.Depth(expr)).Stop()
	return expr, nil
}

// ParseSource scans and parses source in one call
func ParseSource(source string, scanOpts scanner.Options, parseOpts Options) (ast.Expr, error) {
	tokens, err := scanner.Scan(source, scanOpts)
	if err != nil {
		return nil, err
	}
	return New(tokens, parseOpts).Parse()
}

func (p *Parser) expression() (ast.Expr, *diag.Error) {
	return p.equality()
}

func (p *Parser) equality() (ast.Expr, *diag.Error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, *diag.Error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expr, *diag.Error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expr, *diag.Error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary parses one left-associative precedence layer
func (p *Parser) binary(operand func() (ast.Expr, *diag.Error), operators ...token.Kind) (ast.Expr, *diag.Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}

	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *diag.Error) {
	if !p.match(token.Bang, token.Minus) {
		return p.primary()
	}

	operator := p.previous()
	if err := p.enter(operator); err != nil {
		return nil, err
	}
	defer p.leave()

	right, err := p.unary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(operator, right), nil
}

func (p *Parser) primary() (ast.Expr, *diag.Error) {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(literal.Bool(false)), nil
	case p.match(token.True):
		return ast.NewLiteral(literal.Bool(true)), nil
	case p.match(token.Nil):
		return ast.NewLiteral(literal.Null()), nil
	case p.match(token.Number, token.String):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(token.LeftParen):
		return p.grouping()
	}

	return nil, diag.PrimaryExpression(p.peek(), "Expect expression.")
}

func (p *Parser) grouping() (ast.Expr, *diag.Error) {
	if err := p.enter(p.previous()); err != nil {
		return nil, err
	}
	defer p.leave()

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return ast.NewGrouping(expr), nil
}

func (p *Parser) enter(at token.Token) *diag.Error {
	if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
		return diag.NestingTooDeep(at, "Expression nested too deeply.")
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Synchronize discards tokens until a statement boundary: just after a
// semicolon, or before a keyword that starts a statement, or at EOF.
func (p *Parser) Synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}

// Peek returns the current token without consuming it
func (p *Parser) Peek() token.Token {
	return p.peek()
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, *diag.Error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, diag.UnexpectedToken(p.peek(), kind, message)
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if p.isAtEnd() {
		return p.peek()
	}
	p.current++
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}
