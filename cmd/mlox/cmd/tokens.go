package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source file",
	Long: `Scans a file, or stdin when no file or "-" is given, and prints
one token per line as LINE KIND LEXEME LITERAL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "", "output format: sexpr, yaml, json, toml (default from config)")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	format := tokensFormat
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

	result, err := engine.Tokens(cmd.Context(), source)
	if err != nil {
		return app.fail(err)
	}

	out, err := renderTokens(result.Tokens, format)
	if err != nil {
		printError(app.errOut, "failed to render tokens", err)
		return err
	}
	fmt.Fprint(app.out, out)
	return nil
}
