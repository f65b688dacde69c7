// Package dag owns the directed dependency graph derived from a
// Deployment: construction (including synthetic induced edges between
// concrete and wildcard packages of the same name), deterministic
// topological sequencing with explicit cycle detection, stage annotation,
// and the traversal helpers the views render from.
//
// Nodes carry stable integer ids in first-encounter order; all adjacency
// lists keep insertion order, which is what makes every traversal and the
// build sequence reproducible for the same input document.
package dag
