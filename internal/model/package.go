package model

import (
	"fmt"
	"strings"
)

// DefaultVariant is the variant assigned to packages that do not name one.
const DefaultVariant = "default"

// Ordering is the tagged result of comparing two same-named packages.
// Wildcard (version-absent) packages are deliberately unorderable against
// concrete ones; that relationship is expressed through graph induction,
// not through the comparator.
type Ordering int

const (
	OrderEqual Ordering = iota
	OrderLess
	OrderGreater
	OrderIncomparable
)

func (o Ordering) String() string {
	switch o {
	case OrderEqual:
		return "equal"
	case OrderLess:
		return "less"
	case OrderGreater:
		return "greater"
	case OrderIncomparable:
		return "incomparable"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Package identifies a single software package by name, optional version
// and variant. The zero version means "unconstrained" (a wildcard).
type Package struct {
	name       string
	version    Version
	hasVersion bool
	variant    string
}

// New creates a Package from explicit values. The name may itself be a
// combined "name[/version[/variant]]" string, in which case version must be
// empty: supplying a version both ways is a MalformedPackageError.
func New(name, version, variant string) (Package, error) {
	if variant == "" {
		variant = DefaultVariant
	}
	p := Package{name: name, variant: variant}

	if strings.Contains(name, "/") {
		if version != "" {
			return Package{}, &MalformedPackageError{
				Raw:    name,
				Reason: "version supplied in both the package string and the version argument",
			}
		}
		// At most three segments are meaningful; a fourth is ignored.
		parts := strings.SplitN(name, "/", 4)
		p.name = parts[0]
		if len(parts) > 1 {
			version = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			p.variant = parts[2]
		}
	}

	if p.name == "" {
		return Package{}, &MalformedPackageError{Raw: name, Reason: "empty package name"}
	}
	// "*" is the serialized spelling of an absent version, so it must parse
	// back to a wildcard.
	if version != "" && version != "*" {
		p.version = ParseVersion(version)
		p.hasVersion = true
	}
	return p, nil
}

// Parse creates a Package from its combined "name[/version[/variant]]" form.
func Parse(combined string) (Package, error) {
	return New(combined, "", "")
}

// Name returns the plain package name, without version or variant.
func (p Package) Name() string { return p.name }

// Version returns the package version and whether one is present.
func (p Package) Version() (Version, bool) { return p.version, p.hasVersion }

// Variant returns the build variant, "default" unless one was named.
func (p Package) Variant() string { return p.variant }

// IsWildcard reports whether the package has no specific version and is
// therefore satisfiable by any concrete build of the same name.
func (p Package) IsWildcard() bool { return !p.hasVersion }

// Equal reports strict identity: all of name, version and variant match.
// A wildcard package equals only another wildcard of the same name/variant;
// it does not match concrete versions.
func (p Package) Equal(other Package) bool {
	return p.name == other.name &&
		p.hasVersion == other.hasVersion &&
		p.version.raw == other.version.raw &&
		p.variant == other.variant
}

// Compare orders p against another package of the same name. Different
// names are an IncomparablePackagesError. A wildcard on either side, or
// equal versions with differing variants, yield OrderIncomparable.
func (p Package) Compare(other Package) (Ordering, error) {
	if p.name != other.name {
		return OrderIncomparable, &IncomparablePackagesError{A: p, B: other}
	}
	if !p.hasVersion || !other.hasVersion {
		return OrderIncomparable, nil
	}
	switch c := p.version.Compare(other.version); {
	case c < 0:
		return OrderLess, nil
	case c > 0:
		return OrderGreater, nil
	}
	if p.variant == other.variant {
		return OrderEqual, nil
	}
	return OrderIncomparable, nil
}

// String serializes the package as "name/version-or-*/variant".
func (p Package) String() string {
	version := "*"
	if p.hasVersion {
		version = p.version.raw
	}
	return fmt.Sprintf("%s/%s/%s", p.name, version, p.variant)
}

// LoadDirective returns the shell directive that preloads this package
// before a dependant build. Wildcards load by bare name; the variant is
// only spelled out when it is not the default.
func (p Package) LoadDirective() string {
	if !p.hasVersion {
		return fmt.Sprintf("module load %s", p.name)
	}
	if p.variant != DefaultVariant {
		return fmt.Sprintf("module load %s/%s/%s", p.name, p.version.raw, p.variant)
	}
	return fmt.Sprintf("module load %s/%s", p.name, p.version.raw)
}

// BuildDirective returns the shell directive that builds this package,
// not including any module loads.
func (p Package) BuildDirective() string {
	if !p.hasVersion {
		return fmt.Sprintf("build %s", p.name)
	}
	if p.variant != DefaultVariant {
		return fmt.Sprintf("build %s %s %s", p.name, p.version.raw, p.variant)
	}
	return fmt.Sprintf("build %s %s", p.name, p.version.raw)
}
