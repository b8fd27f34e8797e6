package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mlxconfig "github.com/msto63/mLox/foundation/core/config"
	"github.com/msto63/mLox/foundation/lox/ast"
	"github.com/msto63/mLox/foundation/lox/token"
)

// renderExpr renders expr as a bracketed line or as a structured document
func renderExpr(expr ast.Expr, format string) (string, error) {
	if format == mlxconfig.OutputSExpr || format == "" {
		return ast.Print(expr) + "\n", nil
	}
	return encode(map[string]interface{}{"expression": ast.Tree(expr)}, format)
}

// renderTokens renders one token per line or a structured token list
func renderTokens(tokens []token.Token, format string) (string, error) {
	if format == mlxconfig.OutputSExpr || format == "" {
		var b strings.Builder
		for _, tok := range tokens {
			fmt.Fprintf(&b, "%4d  %s\n", tok.Line, tok)
		}
		return b.String(), nil
	}

	list := make([]map[string]interface{}, len(tokens))
	for i, tok := range tokens {
		entry := map[string]interface{}{
			"kind":   tok.Kind.String(),
			"lexeme": tok.Lexeme,
			"line":   tok.Line,
		}
		if !tok.Literal.IsNull() {
			entry["literal"] = tok.Literal.Interface()
		}
		list[i] = entry
	}
	return encode(map[string]interface{}{"tokens": list}, format)
}

func encode(doc map[string]interface{}, format string) (string, error) {
	switch format {
	case mlxconfig.OutputJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case mlxconfig.OutputYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case mlxconfig.OutputTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}
