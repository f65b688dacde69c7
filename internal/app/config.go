package app

import (
	"errors"
	"fmt"
)

// Commands supported on the command line, each mapping to one view.
const (
	CommandShell  = "shell"
	CommandGitlab = "gitlab"
	CommandGraph  = "graph"
	CommandDeps   = "deps"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command    string // which rendering to produce
	ConfigPath string // yaml or hcl deployment file

	LogFormat string
	LogLevel  string
	ColorMode string // always, never or auto

	InduceWildcardPeers bool
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandShell, CommandGitlab, CommandGraph, CommandDeps:
	default:
		return nil, fmt.Errorf("unknown command %q: must be one of 'shell', 'gitlab', 'graph' or 'deps'", cfg.Command)
	}

	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	switch cfg.ColorMode {
	case "", "auto":
		cfg.ColorMode = "auto"
	case "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", cfg.ColorMode)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
