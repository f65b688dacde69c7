// Package app wires the pipeline together: it loads the deployment config,
// builds and sequences the dependency graph, and writes the selected
// rendering to the output stream.
package app
