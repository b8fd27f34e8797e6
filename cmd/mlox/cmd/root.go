package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	sourcePath string
)

// app is prepared for every command by PersistentPreRunE
var app *application

var rootCmd = &cobra.Command{
	Use:   "mlox",
	Short: "mLox - Lox expression scanner and parser",
	Long: `mLox scans and parses expressions of the Lox language and prints
the resulting syntax tree.

Commands:
  parse    - Parse a file or stdin and print the syntax tree
  tokens   - Print the token stream of a file or stdin
  repl     - Interactive expression session
  version  - Show version information

Without a command, -p <path> prints the tokens and then the tree of a file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareApplication,
	RunE:              runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MLOX_CONFIG or ./mlox.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&sourcePath, "path", "p", "", "source file to scan and parse")
}

func prepareApplication(cmd *cobra.Command, args []string) error {
	a, err := newApplication(cfgFile, verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		printError(cmd.ErrOrStderr(), "failed to load configuration", err)
		return err
	}
	app = a
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if sourcePath == "" {
		return cmd.Help()
	}

	source, err := readSource([]string{sourcePath}, cmd.InOrStdin())
	if err != nil {
		printError(cmd.ErrOrStderr(), "failed to read source", err)
		return err
	}

	engine, err := app.engine()
	if err != nil {
		printError(cmd.ErrOrStderr(), "failed to create engine", err)
		return err
	}

	result, err := engine.Run(cmd.Context(), source)
	if err != nil {
		return app.fail(err)
	}

	tokens, err := renderTokens(result.Tokens, "sexpr")
	if err != nil {
		return err
	}
	fmt.Fprint(app.out, tokens)
	fmt.Fprintln(app.out, app.styles.result.Render(result.String()))
	return nil
}

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("input contains errors")

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
