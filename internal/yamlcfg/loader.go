// Package yamlcfg is the YAML implementation of the config.Loader
// interface. It reads the document through the yaml.v3 node API so that
// declaration order is preserved and duplicate package keys can be
// rejected instead of silently last-winning.
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/deploygo/internal/config"
	"github.com/vk/deploygo/internal/ctxlog"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a YAML mapping of package strings to dependency lists.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		logger.Debug("YAML config is empty.", "path", path)
		return &config.Model{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &config.ParseError{Path: path, Err: fmt.Errorf("top level must be a mapping of package to dependencies")}
	}

	model := &config.Model{}
	firstLine := make(map[string]int)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value

		if line, dup := firstLine[key]; dup {
			return nil, &config.ParseError{
				Path: path,
				Err:  fmt.Errorf("duplicate key %q at line %d (first defined at line %d)", key, keyNode.Line, line),
			}
		}
		firstLine[key] = keyNode.Line

		deps, err := dependencyList(valueNode)
		if err != nil {
			return nil, &config.ParseError{Path: path, Err: fmt.Errorf("package %q: %w", key, err)}
		}
		model.Entries = append(model.Entries, config.Entry{Package: key, Dependencies: deps})
	}

	logger.Debug("YAML config loaded.", "path", path, "entries", len(model.Entries))
	return model, nil
}

// dependencyList decodes the value of a package key: a sequence of package
// strings, or null/empty for a build with no dependencies.
func dependencyList(node *yaml.Node) ([]string, error) {
	if node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("dependencies must be a sequence, got %s at line %d", node.Tag, node.Line)
	}
	deps := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("dependency entries must be strings, got %s at line %d", item.Tag, item.Line)
		}
		deps = append(deps, item.Value)
	}
	return deps, nil
}
