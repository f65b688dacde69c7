package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/vk/deploygo/internal/config"
	"github.com/vk/deploygo/internal/ctxlog"
	"github.com/vk/deploygo/internal/dag"
	"github.com/vk/deploygo/internal/hclcfg"
	"github.com/vk/deploygo/internal/model"
	"github.com/vk/deploygo/internal/views"
	"github.com/vk/deploygo/internal/yamlcfg"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	out    io.Writer // rendered output
	errOut io.Writer // logs
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger; the rendered text
// goes to out while logs stay on errOut.
func NewApp(out, errOut io.Writer, cfg *Config) *App {
	logger := newLogger(cfg, errOut)
	logger.Debug("Logger configured successfully.")
	return &App{out: out, errOut: errOut, logger: logger, config: cfg}
}

// Run executes the full pipeline: load config, build the graph, annotate
// stages (which also rejects cyclic deployments before anything is written),
// render the selected view.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	loader := loaderFor(a.config.ConfigPath)
	cfgModel, err := loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Configuration loaded.", "path", a.config.ConfigPath, "builds", len(cfgModel.Entries))

	deployment, err := buildDeployment(cfgModel)
	if err != nil {
		return err
	}

	graph := dag.Build(ctx, deployment, dag.Options{
		InduceWildcardPeers: a.config.InduceWildcardPeers,
	})
	if err := graph.AnnotateStages(); err != nil {
		return err
	}

	view, err := a.viewFor(a.config.Command)
	if err != nil {
		return err
	}
	text, err := view.Render(graph)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.out, text)
	return err
}

// loaderFor picks the config loader by file extension; YAML is the default.
func loaderFor(path string) config.Loader {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return hclcfg.NewLoader()
	}
	return yamlcfg.NewLoader()
}

// buildDeployment parses the neutral config model into domain builds,
// preserving document order.
func buildDeployment(m *config.Model) (*model.Deployment, error) {
	deployment := model.NewDeployment()
	for _, entry := range m.Entries {
		build, err := model.ParseBuild(entry.Package, entry.Dependencies)
		if err != nil {
			return nil, err
		}
		deployment.Append(build)
	}
	return deployment, nil
}

func (a *App) viewFor(command string) (views.View, error) {
	switch command {
	case CommandShell:
		return views.NewShellCommandsView(a.colorEnabled()), nil
	case CommandGitlab:
		renderer, err := views.NewTemplateRenderer()
		if err != nil {
			return nil, err
		}
		return views.NewGitlabView(renderer), nil
	case CommandGraph:
		return views.NewDotView(), nil
	case CommandDeps:
		return views.NewLineGraphView(), nil
	}
	return nil, fmt.Errorf("unknown command %q", command)
}

// colorEnabled resolves the configured color mode. Auto defers to the
// terminal detection done at process start; the decision is made once here
// and threaded into the renderer explicitly.
func (a *App) colorEnabled() bool {
	switch a.config.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	return !color.NoColor
}
