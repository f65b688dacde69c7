package model

import "fmt"

// MalformedPackageError reports a package string that could not be parsed,
// or a version that was supplied both inside a combined string and as a
// separate argument.
type MalformedPackageError struct {
	Raw    string
	Reason string
}

func (e *MalformedPackageError) Error() string {
	return fmt.Sprintf("malformed package %q: %s", e.Raw, e.Reason)
}

// IncomparablePackagesError reports an ordering attempt between packages of
// different names. It signals an internal invariant violation: call sites
// are expected to only order same-named packages.
type IncomparablePackagesError struct {
	A, B Package
}

func (e *IncomparablePackagesError) Error() string {
	return fmt.Sprintf("no version order between different packages: %s and %s", e.A, e.B)
}
