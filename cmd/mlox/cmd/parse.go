package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseTokens bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an expression and print its syntax tree",
	Long: `Parses a Lox expression from a file, or from stdin when no file
or "-" is given, and prints the syntax tree.

Output formats:
  sexpr  - bracketed form, e.g. (* (- 123) (group 45.67))
  yaml   - YAML document
  json   - JSON document
  toml   - TOML document`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: sexpr, yaml, json, toml (default from config)")
	parseCmd.Flags().BoolVarP(&parseTokens, "tokens", "t", false, "print the token stream before the tree")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format := parseFormat
	if format == "" {
		format = app.cfg.Output.Format
	}

	source, err := readSource(args, cmd.InOrStdin())
	if err != nil {
		printError(app.errOut, "failed to read source", err)
		return err
	}

	engine, err := app.engine()
	if err != nil {
		printError(app.errOut, "failed to create engine", err)
		return err
	}

	result, err := engine.Run(cmd.Context(), source)
	if err != nil {
		return app.fail(err)
	}

	if parseTokens || app.cfg.Output.ShowTokens {
		out, err := renderTokens(result.Tokens, format)
		if err != nil {
			printError(app.errOut, "failed to render tokens", err)
			return err
		}
		fmt.Fprint(app.out, out)
	}

	out, err := renderExpr(result.Expr, format)
	if err != nil {
		printError(app.errOut, "failed to render tree", err)
		return err
	}
	fmt.Fprint(app.out, out)
	return nil
}
