package config

import (
	"context"
	"fmt"
)

// Entry is one package mapping from the configuration document: the package
// to build and the packages it depends on, both as combined
// "name[/version[/variant]]" strings.
type Entry struct {
	Package      string
	Dependencies []string
}

// Model is the loader-neutral configuration. Entries keep the document's
// declaration order; that order is what makes the derived build sequence
// deterministic across runs.
type Model struct {
	Entries []Entry
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration document at path and translates it into
	// the format-agnostic model. Duplicate package keys in the document are
	// a hard error, reported as a *ParseError.
	Load(ctx context.Context, path string) (*Model, error)
}

// ParseError reports a malformed configuration document, including
// duplicate package keys. It maps to exit code 2 at the CLI boundary.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
