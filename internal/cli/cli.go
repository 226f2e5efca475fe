package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Maszz/simple-tree-db/internal/app"
	"github.com/Maszz/simple-tree-db/internal/config"
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

// Parse processes command-line arguments. It returns the flag-layer
// configuration, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("treedb", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
TreeDB - a hierarchical key-value store addressed by key=value paths.

Usage:
  treedb [options]

Configuration is layered, later sources winning: built-in defaults,
the -settings file, the TREEDB_PATH and TREEDB_ROOT_NODE environment
variables, then flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	settingsFlag := flagSet.String("settings", "", "Path to an optional HCL settings file.")
	dbFlag := flagSet.String("db", "", "Path of the snapshot file the tree persists to.")
	rootNodeFlag := flagSet.String("root-node", "", "Root identifier used to create a fresh tree when the snapshot is absent.")
	listenFlag := flagSet.String("listen", "", "HTTP listen address. Default ':8000'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json' (default).")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info' (default), 'warn', 'error'.")
	seedFlag := flagSet.String("seed", "", "Path to an HCL seed file or a directory containing them.")
	printTreeFlag := flagSet.Bool("print-tree", false, "Render the tree outline with full identifiers and exit.")
	printTreeCompactFlag := flagSet.Bool("print-tree-compact", false, "Render the tree outline with only the added segments and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}

	// Only non-empty values are validated here; empty means the value is
	// deferred to the other configuration layers.
	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := &app.Config{
		SettingsPath: *settingsFlag,
		Overrides: config.Settings{
			DBPath:     *dbFlag,
			RootNode:   *rootNodeFlag,
			ListenAddr: *listenFlag,
			LogLevel:   logLevel,
			LogFormat:  logFormat,
			SeedPath:   *seedFlag,
		},
		PrintTree:        *printTreeFlag,
		PrintTreeCompact: *printTreeCompactFlag,
	}

	slog.Debug("CLI parser finished successfully.")
	return cfg, false, nil
}
