package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/voxgrid/internal/app"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("voxgrid", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
voxgrid - compiles voice-app spreadsheets into platform artifacts.

Usage:
  voxgrid [options] [BUILD_PATH]

Arguments:
  BUILD_PATH
    Path to a single .hcl build file or a directory containing .hcl files.

Options:
`)
		fmt.Fprint(output, flagSet.FlagUsages())
	}

	configFlag := flagSet.StringP("config", "c", "", "Path to the build file or directory.")
	rootFlag := flagSet.String("root", "", "Project root. Overrides root_path from the build file.")
	credentialsFlag := flagSet.String("credentials", "", "Service-account JSON for Google Sheets. Overrides credentials from the build file.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print artifacts instead of writing them.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *configFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Build path determined.", "path", path)

	if path == "" {
		slog.Debug("No build path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		BuildPath:       path,
		RootPath:        *rootFlag,
		CredentialsPath: *credentialsFlag,
		DryRun:          *dryRunFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
