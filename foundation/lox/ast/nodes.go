// File: nodes.go
// Title: Lox AST Node Definitions
// Description: Defines the expression node types produced by the parser.
//              Every node owns its children; trees are never shared.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node definitions

// Package ast defines the Lox expression tree and its traversal contract.
package ast

import (
	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Expr is implemented by all expression nodes. The set is closed: only
// this package can add variants.
type Expr interface {
	exprNode()
}

// Binary represents "left operator right"
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Grouping represents a parenthesized expression
type Grouping struct {
	Expression Expr
}

// Literal represents a constant
type Literal struct {
	Value literal.Value
}

// Unary represents a prefix operator applied to its operand
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}

// NewBinary creates a binary node
func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: operator, Right: right}
}

// NewGrouping creates a grouping node
func NewGrouping(expression Expr) *Grouping {
	return &Grouping{Expression: expression}
}

// NewLiteral creates a literal node
func NewLiteral(value literal.Value) *Literal {
	return &Literal{Value: value}
}

// NewUnary creates a unary node
func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{Operator: operator, Right: right}
}
