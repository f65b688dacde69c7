package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/deploygo/internal/app"
	"github.com/vk/deploygo/internal/cli"
	"github.com/vk/deploygo/internal/config"
)

// main is the entrypoint for the deploygo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: 2 for invocation and
// config parse errors, 1 for everything else.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		return 2
	}
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	deployApp := app.NewApp(outW, os.Stderr, appConfig)
	return deployApp.Run(context.Background())
}
