// Package model holds the core data objects of a deployment: Package,
// Build and Deployment, plus the Version ordering wrapper they rely on.
//
// A Package is an identity triple (name, optional version, variant). A
// Build pairs the package to produce with the ordered list of packages it
// depends on, and a Deployment is the insertion-ordered collection of all
// Builds read from one configuration document. All three are immutable
// after construction; the dependency graph is derived from them, never the
// other way around.
package model
