package cmd

import (
	"errors"
	"io"
	"os"

	mlxconfig "github.com/msto63/mLox/foundation/core/config"
	mlxerror "github.com/msto63/mLox/foundation/core/error"
	mlxlog "github.com/msto63/mLox/foundation/core/log"
	"github.com/msto63/mLox/foundation/lox"
	"github.com/msto63/mLox/foundation/lox/diag"
)

// application bundles configuration, logging and output of one CLI run
type application struct {
	cfg    *mlxconfig.Config
	logger *mlxlog.Logger
	styles styles
	out    io.Writer
	errOut io.Writer
}

func newApplication(cfgPath string, verbose bool, out, errOut io.Writer) (*application, error) {
	cfg, err := mlxconfig.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	level, err := mlxlog.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = mlxlog.LevelDebug
	}

	format, err := mlxlog.ParseFormat(cfg.General.LogFormat)
	if err != nil {
		return nil, err
	}

	logger := mlxlog.NewWithConfig(mlxlog.Config{
		Level:  level,
		Format: format,
		Output: errOut,
		Name:   cfg.General.Name,
	})

	return &application{
		cfg:    cfg,
		logger: logger,
		styles: newStyles(cfg.Output.Color),
		out:    out,
		errOut: errOut,
	}, nil
}

// engine creates a Lox engine printing diagnostics to the error output
func (a *application) engine() (*lox.Engine, error) {
	opts, err := lox.OptionsFromConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	opts.Logger = a.logger
	opts.Reporter = diag.ReporterFunc(func(d *diag.Error) {
		io.WriteString(a.errOut, a.styles.diagnostic.Render(d.Error())+"\n")
	})
	return lox.NewEngine(opts)
}

// fail turns a run error into the command error. Diagnostics were already
// printed by the reporter.
func (a *application) fail(err error) error {
	var d *diag.Error
	if errors.As(err, &d) {
		return errReported
	}
	printError(a.errOut, "run failed", err)
	return err
}

// readSource reads the file named by args[0], or stdin without arguments or for "-"
func readSource(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", mlxerror.Wrap(err, "failed to read stdin").
				WithCode(mlxerror.CodeInvalidInput)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return "", mlxerror.New("source file not found: "+args[0]).
				WithCode(mlxerror.CodeNotFound).
				WithDetail("path", args[0])
		}
		return "", mlxerror.Wrap(err, "failed to read source file").
			WithCode(mlxerror.CodeInvalidInput).
			WithDetail("path", args[0])
	}
	return string(data), nil
}
