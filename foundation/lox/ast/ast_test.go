package ast

import (
	"testing"

	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

func op(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme, literal.Null(), 1)
}

func num(n float64) Expr {
	return NewLiteral(literal.Number(n))
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "grouped operand",
			expr: NewBinary(
				NewUnary(op(token.Minus, "-"), num(123)),
				op(token.Star, "*"),
				NewGrouping(num(45.67)),
			),
			want: "(* (- 123) (group 45.67))",
		},
		{
			name: "plain operand",
			expr: NewBinary(
				NewUnary(op(token.Minus, "-"), num(123)),
				op(token.Star, "*"),
				num(45.67),
			),
			want: "(* (- 123) 45.67)",
		},
		{
			name: "literals",
			expr: NewBinary(
				NewLiteral(literal.String("a b")),
				op(token.EqualEqual, "=="),
				NewUnary(op(token.Bang, "!"), NewLiteral(literal.Null())),
			),
			want: "(== a b (! null))",
		},
		{
			name: "booleans",
			expr: NewGrouping(NewLiteral(literal.Bool(false))),
			want: "(group false)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.expr); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDepthAndCount(t *testing.T) {
	nested := NewGrouping(NewGrouping(NewGrouping(num(1))))
	mixed := NewBinary(NewGrouping(num(1)), op(token.Plus, "+"), NewUnary(op(token.Minus, "-"), nested))

	tests := []struct {
		name      string
		expr      Expr
		wantDepth int
		wantCount int
	}{
		{"literal", num(1), 0, 1},
		{"triple grouping", nested, 3, 4},
		{"deepest branch wins", mixed, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.expr); got != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", got, tt.wantDepth)
			}
			if got := Count(tt.expr); got != tt.wantCount {
				t.Errorf("Count() = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestAcceptNil(t *testing.T) {
	if got := Accept[string](nil, Printer{}); got != "" {
		t.Errorf("Accept(nil) = %q, want empty", got)
	}
	if got := Depth(nil); got != 0 {
		t.Errorf("Depth(nil) = %d, want 0", got)
	}
}

func TestTree(t *testing.T) {
	expr := NewBinary(
		NewUnary(op(token.Minus, "-"), num(2)),
		op(token.Plus, "+"),
		NewGrouping(NewLiteral(literal.Null())),
	)

	tree := Tree(expr)
	if tree["type"] != "binary" || tree["operator"] != "+" || tree["line"] != 1 {
		t.Errorf("root = %v", tree)
	}

	left, ok := tree["left"].(Node)
	if !ok || left["type"] != "unary" {
		t.Fatalf("left = %v", tree["left"])
	}
	operand := left["right"].(Node)
	if operand["kind"] != "number" || operand["value"] != 2.0 {
		t.Errorf("operand = %v", operand)
	}

	group := tree["right"].(Node)
	inner := group["expression"].(Node)
	if _, has := inner["value"]; has || inner["kind"] != "null" {
		t.Errorf("null literal = %v", inner)
	}
}

type kindCollector struct{ kinds []string }

func (k *kindCollector) VisitBinary(left Expr, _ token.Token, right Expr) struct{} {
	k.kinds = append(k.kinds, "binary")
	Accept[struct{}](left, k)
	Accept[struct{}](right, k)
	return struct{}{}
}

func (k *kindCollector) VisitGrouping(expression Expr) struct{} {
	k.kinds = append(k.kinds, "grouping")
	return Accept[struct{}](expression, k)
}

func (k *kindCollector) VisitLiteral(literal.Value) struct{} {
	k.kinds = append(k.kinds, "literal")
	return struct{}{}
}

func (k *kindCollector) VisitUnary(_ token.Token, right Expr) struct{} {
	k.kinds = append(k.kinds, "unary")
	return Accept[struct{}](right, k)
}

func TestCustomVisitor(t *testing.T) {
	expr := NewBinary(NewGrouping(num(1)), op(token.Slash, "/"), NewUnary(op(token.Minus, "-"), num(2)))

	collector := &kindCollector{}
	Accept[struct{}](expr, collector)

	want := []string{"binary", "grouping", "literal", "unary", "literal"}
	if len(collector.kinds) != len(want) {
		t.Fatalf("visited %v, want %v", collector.kinds, want)
	}
	for i := range want {
		if collector.kinds[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, collector.kinds[i], want[i])
		}
	}
}
