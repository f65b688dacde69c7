package views

import (
	"fmt"
	"strings"

	"github.com/vk/deploygo/internal/dag"
)

// DotView renders the graph in DOT syntax. Dependency-only nodes are drawn
// dashed; edges are emitted as the depth-first trees hanging off each root,
// with a comment marking where each tree starts.
type DotView struct{}

func NewDotView() *DotView {
	return &DotView{}
}

func (v *DotView) Render(g *dag.Graph) (string, error) {
	var b strings.Builder
	b.WriteString("digraph package_dependencies {\n")
	b.WriteString("    name=\"deps\";\n")
	b.WriteString("    title=\"Build Dependencies\";\n")

	b.WriteString("    node [];\n")
	for _, n := range g.Nodes() {
		if n.Kind() == dag.KindDependency {
			fmt.Fprintf(&b, "    %s [label=%q, style=\"dashed\"];\n", n.DotID(), n.Label())
		} else {
			fmt.Fprintf(&b, "    %s [label=%q];\n", n.DotID(), n.Label())
		}
	}

	b.WriteString("    edge [];\n")
	for _, root := range g.Roots() {
		fmt.Fprintf(&b, "    // from %s\n", root.Label())
		for _, e := range g.DFSTree(root) {
			fmt.Fprintf(&b, "    %s -> %s;\n", g.Node(e.From).DotID(), g.Node(e.To).DotID())
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}
