// Package views renders a dependency graph into its textual output formats:
// a shell build script, a GitLab CI pipeline, a DOT graph description and an
// indented dependency tree. Views are read-only consumers; they never mutate
// the graph they are given.
package views
