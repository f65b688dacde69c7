package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/deploygo/internal/app"
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
	flagSet := flag.NewFlagSet("deploygo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
DeployGo - Turns a declarative package map into ordered build output.

Usage:
  deploygo [options] COMMAND CONFIG_PATH

Commands:
  shell    Shell script rebuilding every package in dependency order.
  gitlab   GitLab CI pipeline with one job per built package.
  graph    DOT description of the dependency graph.
  deps     Indented dependency tree with build stages.

Arguments:
  CONFIG_PATH
    Path to a .yaml or .hcl deployment file.

Options:
`)
		flagSet.PrintDefaults()
	}

	verboseFlag := flagSet.Bool("verbose", false, "Enable debug logging.")
	vFlag := flagSet.Bool("v", false, "Enable debug logging (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	colorFlag := flagSet.String("color", "auto", "Colorize shell output. Options: 'auto', 'always' or 'never'.")
	wildcardPeersFlag := flagSet.Bool("induce-wildcard-peers", false, "Treat built wildcard packages as providers for wildcard dependencies of the same name.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() < 2 {
		return nil, false, &ExitError{Code: 2, Message: "missing CONFIG_PATH argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := "info"
	if *verboseFlag || *vFlag {
		logLevel = "debug"
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:             flagSet.Arg(0),
		ConfigPath:          flagSet.Arg(1),
		LogFormat:           logFormat,
		LogLevel:            logLevel,
		ColorMode:           strings.ToLower(*colorFlag),
		InduceWildcardPeers: *wildcardPeersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", config.Command, "config_path", config.ConfigPath)
	return config, false, nil
}
