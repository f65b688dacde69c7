package dag

import (
	"fmt"

	"github.com/vk/deploygo/internal/model"
)

// NodeKind distinguishes packages this run builds from packages that are
// only referenced as dependencies and assumed externally provided.
type NodeKind int

const (
	KindBuilt NodeKind = iota
	KindDependency
)

func (k NodeKind) String() string {
	switch k {
	case KindBuilt:
		return "built"
	case KindDependency:
		return "dependency"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// EdgeKind distinguishes declared dependency edges from the synthetic
// induced edges that connect concrete-version providers to wildcard nodes
// of the same name.
type EdgeKind int

const (
	EdgeDeclared EdgeKind = iota
	EdgeInduced
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeDeclared:
		return "declared"
	case EdgeInduced:
		return "induced"
	}
	return fmt.Sprintf("EdgeKind(%d)", int(k))
}

// Node is a single package in the dependency graph.
type Node struct {
	id    int
	pkg   model.Package
	kind  NodeKind
	build *model.Build // set when kind == KindBuilt
	stage int          // depth in the DAG, -1 until annotated
}

// ID returns the node's stable integer id (first-encounter order).
func (n *Node) ID() int { return n.id }

// Package returns the package this node stands for.
func (n *Node) Package() model.Package { return n.pkg }

// Kind reports whether the node is built in this run or dependency-only.
func (n *Node) Kind() NodeKind { return n.kind }

// Build returns the build payload for built nodes, nil otherwise.
func (n *Node) Build() *model.Build { return n.build }

// Stage returns the node's depth in the DAG, or -1 before AnnotateStages.
func (n *Node) Stage() int { return n.stage }

// Label returns the canonical package string used by the renderers.
func (n *Node) Label() string { return n.pkg.String() }

// DotID returns the node's identifier in DOT output.
func (n *Node) DotID() string { return fmt.Sprintf("node%d", n.id) }

// Edge is a directed connection in the presented orientation: declared
// edges run dependency → dependant, induced edges run concrete provider →
// wildcard node. Either way the source must be sequenced before the target.
type Edge struct {
	From, To int
	Kind     EdgeKind
}

// Graph is the directed dependency graph of one deployment. It is built
// once per invocation and not mutated afterwards, except for the one-shot
// stage annotation.
type Graph struct {
	nodes []*Node
	index map[string]int // canonical package string -> node id
	outs  [][]Edge       // adjacency in insertion order
	ins   [][]Edge       // reverse adjacency, same edges
}

func newGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// ensureNode returns the id of the node for pkg, creating it if needed.
// Re-adding an existing package as built upgrades the node and replaces its
// payload (duplicate builds are last-wins); re-adding it as a dependency
// never downgrades a built node.
func (g *Graph) ensureNode(pkg model.Package, kind NodeKind, build *model.Build) int {
	key := pkg.String()
	if id, ok := g.index[key]; ok {
		if kind == KindBuilt {
			g.nodes[id].kind = KindBuilt
			g.nodes[id].build = build
		}
		return id
	}
	id := len(g.nodes)
	g.index[key] = id
	g.nodes = append(g.nodes, &Node{id: id, pkg: pkg, kind: kind, build: build, stage: -1})
	g.outs = append(g.outs, nil)
	g.ins = append(g.ins, nil)
	return id
}

// addEdge records a directed edge. Only one edge is kept per (from, to)
// pair; adding an induced edge over an existing declared one upgrades its
// kind, mirroring how the views want "satisfies a wildcard" to win.
func (g *Graph) addEdge(from, to int, kind EdgeKind) {
	for i := range g.outs[from] {
		if g.outs[from][i].To == to {
			if kind == EdgeInduced {
				g.outs[from][i].Kind = EdgeInduced
				for j := range g.ins[to] {
					if g.ins[to][j].From == from {
						g.ins[to][j].Kind = EdgeInduced
					}
				}
			}
			return
		}
	}
	edge := Edge{From: from, To: to, Kind: kind}
	g.outs[from] = append(g.outs[from], edge)
	g.ins[to] = append(g.ins[to], edge)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given id.
func (g *Graph) Node(id int) *Node { return g.nodes[id] }

// Nodes returns all nodes in id (first-encounter) order. The returned
// slice is shared; callers must not modify it.
func (g *Graph) Nodes() []*Node { return g.nodes }

// OutEdges returns the edges leaving the given node, in insertion order.
func (g *Graph) OutEdges(id int) []Edge { return g.outs[id] }

// InEdges returns the edges entering the given node, in insertion order.
func (g *Graph) InEdges(id int) []Edge { return g.ins[id] }

// Roots returns all in-degree-zero nodes in id order. These are the
// starting points for the outward tree renderings.
func (g *Graph) Roots() []*Node {
	var roots []*Node
	for _, n := range g.nodes {
		if len(g.ins[n.id]) == 0 {
			roots = append(roots, n)
		}
	}
	return roots
}
