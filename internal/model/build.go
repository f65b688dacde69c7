package model

import (
	"fmt"
	"strings"
)

// Build is a single build in a deployment: the package to produce plus the
// ordered list of packages it depends on. Dependencies are Packages, not
// Builds; a dependency may have no corresponding Build anywhere in the
// deployment (system-provided packages are allowed).
type Build struct {
	pkg  Package
	deps []Package
}

// NewBuild creates a Build from already-parsed packages.
func NewBuild(pkg Package, deps ...Package) Build {
	return Build{pkg: pkg, deps: deps}
}

// ParseBuild creates a Build from combined package strings.
func ParseBuild(pkg string, deps []string) (Build, error) {
	p, err := Parse(pkg)
	if err != nil {
		return Build{}, err
	}
	parsed := make([]Package, 0, len(deps))
	for _, dep := range deps {
		d, err := Parse(dep)
		if err != nil {
			return Build{}, err
		}
		parsed = append(parsed, d)
	}
	return Build{pkg: p, deps: parsed}, nil
}

// Package returns the main package this build produces.
func (b Build) Package() Package { return b.pkg }

// Dependencies returns the packages this build depends on, in declaration
// order. The returned slice is shared; callers must not modify it.
func (b Build) Dependencies() []Package { return b.deps }

func (b Build) String() string {
	deps := make([]string, len(b.deps))
	for i, d := range b.deps {
		deps[i] = d.String()
	}
	return fmt.Sprintf("%s(%s)", b.pkg, strings.Join(deps, "; "))
}
