package ast

import (
	"strings"

	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Printer renders expressions in bracketed prefix form, for example
// (* (- 123) (group 45.67)).
type Printer struct{}

// Print renders expr
func (p Printer) Print(expr Expr) string {
	return Accept[string](expr, p)
}

// VisitBinary renders "(op left right)"
func (p Printer) VisitBinary(left Expr, operator token.Token, right Expr) string {
	return p.parenthesize(operator.Lexeme, left, right)
}

// VisitGrouping renders "(group inner)"
func (p Printer) VisitGrouping(expression Expr) string {
	return p.parenthesize("group", expression)
}

// VisitLiteral renders the literal value
func (p Printer) VisitLiteral(value literal.Value) string {
	return value.String()
}

// VisitUnary renders "(op right)"
func (p Printer) VisitUnary(operator token.Token, right Expr) string {
	return p.parenthesize(operator.Lexeme, right)
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(Accept[string](expr, p))
	}
	b.WriteString(")")
	return b.String()
}

// Print renders expr with the default printer
func Print(expr Expr) string {
	return Printer{}.Print(expr)
}
