// File: visitor.go
// Title: Lox AST Visitor
// Description: Implements the visitor pattern for expression trees. A
//              visitor receives the parts of each node and returns a result
//              of its own choosing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor implementation

package ast

import (
	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Visitor has one method per expression shape. Implementations recurse
// into children through Accept.
type Visitor[R any] interface {
	VisitBinary(left Expr, operator token.Token, right Expr) R
	VisitGrouping(expression Expr) R
	VisitLiteral(value literal.Value) R
	VisitUnary(operator token.Token, right Expr) R
}

// Accept dispatches expr to the matching visitor method. A nil expression
// yields the zero value of R.
func Accept[R any](expr Expr, v Visitor[R]) R {
	switch e := expr.(type) {
	case *Binary:
		return v.VisitBinary(e.Left, e.Operator, e.Right)
	case *Grouping:
		return v.VisitGrouping(e.Expression)
	case *Literal:
		return v.VisitLiteral(e.Value)
	case *Unary:
		return v.VisitUnary(e.Operator, e.Right)
	}

	var zero R
	return zero
}
