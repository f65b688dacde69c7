// Package hclcfg is the HCL implementation of the config.Loader interface.
// A document is a sequence of labelled build blocks:
//
//	build "gcc/10.2.0" {
//	  dependencies = ["zlib/1.2.11", "mpfr"]
//	}
//
// Block order is the declaration order; duplicate labels are a hard error.
package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/deploygo/internal/config"
	"github.com/vk/deploygo/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// buildBlock decodes one `build "<package>" { … }` block. Dependencies stay
// an expression so the error can point at the exact spot when it is not a
// list of strings.
type buildBlock struct {
	Package      string         `hcl:"package,label"`
	Dependencies hcl.Expression `hcl:"dependencies,optional"`
}

// fileRoot is the top-level schema of a config file.
type fileRoot struct {
	Builds []*buildBlock `hcl:"build,block"`
}

// Load reads an HCL document of build blocks.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &config.ParseError{Path: path, Err: diags}
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, &config.ParseError{Path: path, Err: diags}
	}

	model := &config.Model{}
	seen := make(map[string]struct{})
	for _, block := range root.Builds {
		if _, dup := seen[block.Package]; dup {
			return nil, &config.ParseError{Path: path, Err: fmt.Errorf("duplicate build block %q", block.Package)}
		}
		seen[block.Package] = struct{}{}

		deps, err := dependencyList(block.Dependencies)
		if err != nil {
			return nil, &config.ParseError{Path: path, Err: fmt.Errorf("build %q: %w", block.Package, err)}
		}
		model.Entries = append(model.Entries, config.Entry{Package: block.Package, Dependencies: deps})
	}

	logger.Debug("HCL config loaded.", "path", path, "entries", len(model.Entries))
	return model, nil
}

// dependencyList evaluates the dependencies attribute to a list of package
// strings. A missing or null attribute means no dependencies.
func dependencyList(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if value.IsNull() {
		return nil, nil
	}

	value, err := convert.Convert(value, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("dependencies must be a list of strings: %w", err)
	}

	var deps []string
	for it := value.ElementIterator(); it.Next(); {
		_, element := it.Element()
		deps = append(deps, element.AsString())
	}
	return deps, nil
}
