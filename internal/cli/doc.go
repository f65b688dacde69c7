// Package cli turns command-line arguments into an app.Config. It owns the
// usage text and the exit-code semantics of bad invocations.
package cli
