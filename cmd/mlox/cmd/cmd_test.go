package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plainConfig = `
[general]
log_level = "error"
log_format = "text"

[output]
color = false
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, sourcePath = "", false, ""
	parseFormat, parseTokens, tokensFormat = "", false, ""

	cfg := writeTemp(t, "mlox.toml", plainConfig)

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		args   []string
		wantIn []string
	}{
		{"sexpr grouped", "-123 * (45.67)", []string{"parse"}, []string{"(* (- 123) (group 45.67))\n"}},
		{"sexpr plain", "-123 * 45.67", []string{"parse", "-"}, []string{"(* (- 123) 45.67)\n"}},
		{"yaml", "1 - 2", []string{"parse", "--format", "yaml"}, []string{"expression:", "type: binary", "kind: number"}},
		{"toml", "!true", []string{"parse", "-f", "toml"}, []string{"[expression]", `type = "unary"`, `operator = "!"`}},
		{"with tokens", "1 + 2", []string{"parse", "--tokens"}, []string{"NUMBER 1 1", "PLUS + null", "(+ 1 2)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, stderr = %s", err, errOut)
			}
			for _, want := range tt.wantIn {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	out, errOut, err := execute(t, "(1)", "parse", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v, stderr = %s", err, errOut)
	}

	var doc struct {
		Expression struct {
			Type       string `json:"type"`
			Expression struct {
				Type  string  `json:"type"`
				Value float64 `json:"value"`
			} `json:"expression"`
		} `json:"expression"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if doc.Expression.Type != "grouping" || doc.Expression.Expression.Value != 1 {
		t.Errorf("decoded = %+v", doc)
	}
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{"lone paren", ")", "[line 1] Error at ')': Expect expression."},
		{"unterminated string", "\n\"abc", "[line 2] Error: Unterminated string."},
		{"missing paren", "(1", "[line 1] Error at end: Expect ')' after expression."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, "parse")
			if !errors.Is(err, errReported) {
				t.Fatalf("Execute() error = %v, want errReported", err)
			}
			if out != "" {
				t.Errorf("stdout = %q, want empty", out)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want %q", errOut, tt.want)
			}
		})
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeTemp(t, "expr.lox", "// comment\n-123 * 45.67\n")

	out, errOut, err := execute(t, "", "tokens", path)
	if err != nil {
		t.Fatalf("Execute() error = %v, stderr = %s", err, errOut)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	for i, want := range []string{"MINUS -", "NUMBER 123 123", "STAR *", "NUMBER 45.67 45.67", "EOF"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[4]), "3") {
		t.Errorf("EOF line = %q, want line 3", lines[4])
	}
}

func TestTokensCommandMissingFile(t *testing.T) {
	_, errOut, err := execute(t, "", "tokens", filepath.Join(t.TempDir(), "missing.lox"))
	if err == nil {
		t.Fatal("Execute() should fail")
	}
	if !strings.Contains(errOut, "source file not found") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRootPathFlag(t *testing.T) {
	path := writeTemp(t, "expr.lox", "1 - 2 - 3")

	out, errOut, err := execute(t, "", "-p", path)
	if err != nil {
		t.Fatalf("Execute() error = %v, stderr = %s", err, errOut)
	}
	if !strings.Contains(out, "MINUS - null") {
		t.Errorf("output missing tokens:\n%s", out)
	}
	if !strings.HasSuffix(out, "(- (- 1 2) 3)\n") {
		t.Errorf("output should end with the tree:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"mLox v", "scanner:", "Go Version:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeTemp(t, "bad.toml", "[scanner]\nerror_policy = \"retry\"\n")

	cfgFile, verbose, sourcePath = "", false, ""
	var out, errOut bytes.Buffer
	rootCmd.SetArgs([]string{"--config", cfg, "parse"})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader("1"))

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() should fail")
	}
	if !strings.Contains(errOut.String(), "scanner.error_policy") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
