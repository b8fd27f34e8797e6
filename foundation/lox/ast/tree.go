package ast

import (
	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Node is a plain map form of an expression, ready for YAML, JSON or TOML
// encoding. Null literals have no "value" key.
type Node = map[string]interface{}

type treeVisitor struct{}

func (t treeVisitor) VisitBinary(left Expr, operator token.Token, right Expr) Node {
	return Node{
		"type":     "binary",
		"operator": operator.Lexeme,
		"line":     operator.Line,
		"left":     Accept[Node](left, t),
		"right":    Accept[Node](right, t),
	}
}

func (t treeVisitor) VisitGrouping(expression Expr) Node {
	return Node{
		"type":       "grouping",
		"expression": Accept[Node](expression, t),
	}
}

func (t treeVisitor) VisitLiteral(value literal.Value) Node {
	node := Node{
		"type": "literal",
		"kind": value.Type().String(),
	}
	if !value.IsNull() {
		node["value"] = value.Interface()
	}
	return node
}

func (t treeVisitor) VisitUnary(operator token.Token, right Expr) Node {
	return Node{
		"type":     "unary",
		"operator": operator.Lexeme,
		"line":     operator.Line,
		"right":    Accept[Node](right, t),
	}
}

// Tree converts expr into nested Nodes
func Tree(expr Expr) Node {
	return Accept[Node](expr, treeVisitor{})
}
