package ast

import (
	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

// depthVisitor measures the deepest chain of nested groupings
type depthVisitor struct{}

func (d depthVisitor) VisitBinary(left Expr, _ token.Token, right Expr) int {
	return max(Accept[int](left, d), Accept[int](right, d))
}

func (d depthVisitor) VisitGrouping(expression Expr) int {
	return 1 + Accept[int](expression, d)
}

func (d depthVisitor) VisitLiteral(literal.Value) int {
	return 0
}

func (d depthVisitor) VisitUnary(_ token.Token, right Expr) int {
	return Accept[int](right, d)
}

// Depth returns the maximum grouping nesting depth of expr
func Depth(expr Expr) int {
	return Accept[int](expr, depthVisitor{})
}

// countVisitor counts nodes
type countVisitor struct{}

func (c countVisitor) VisitBinary(left Expr, _ token.Token, right Expr) int {
	return 1 + Accept[int](left, c) + Accept[int](right, c)
}

func (c countVisitor) VisitGrouping(expression Expr) int {
	return 1 + Accept[int](expression, c)
}

func (c countVisitor) VisitLiteral(literal.Value) int {
	return 1
}

func (c countVisitor) VisitUnary(_ token.Token, right Expr) int {
	return 1 + Accept[int](right, c)
}

// Count returns the number of nodes in expr
func Count(expr Expr) int {
	return Accept[int](expr, countVisitor{})
}
