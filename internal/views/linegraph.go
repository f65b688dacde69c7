package views

import (
	"fmt"
	"strings"

	"github.com/vk/deploygo/internal/dag"
)

// connector glyphs, one set per edge kind. Induced edges get an arrowed
// dotted connector so "satisfies a wildcard" reads differently from "is a
// declared dependency".
type glyphSet struct {
	branch string // node with siblings below it
	last   string // final node of its group
	middle string // continuation under a branch node
	blank  string // continuation under a last node
}

var (
	declaredGlyphs = glyphSet{branch: " ├─╴", last: " ╰─╴", middle: " │  ", blank: "    "}
	inducedGlyphs  = glyphSet{branch: "▶├┄ ", last: "▶╰┄ ", middle: " │  ", blank: "    "}
)

// LineGraphView renders the graph as an indented outline, one subtree per
// root. Every distinct root-to-node path is expanded, so shared nodes appear
// once per path; on a DAG the recursion always terminates.
type LineGraphView struct{}

func NewLineGraphView() *LineGraphView {
	return &LineGraphView{}
}

func (v *LineGraphView) Render(g *dag.Graph) (string, error) {
	var b strings.Builder
	roots := g.Roots()
	for i, root := range roots {
		v.renderNode(&b, g, root, "", i == len(roots)-1, dag.EdgeDeclared)
	}
	return b.String(), nil
}

func (v *LineGraphView) renderNode(b *strings.Builder, g *dag.Graph, n *dag.Node, prefix string, last bool, kind dag.EdgeKind) {
	glyphs := declaredGlyphs
	if kind == dag.EdgeInduced {
		glyphs = inducedGlyphs
	}
	connector, continuation := glyphs.branch, glyphs.middle
	if last {
		connector, continuation = glyphs.last, glyphs.blank
	}
	fmt.Fprintf(b, "%s%s%s %d\n", prefix, connector, n.Label(), n.Stage())

	edges := g.OutEdges(n.ID())
	for i, e := range edges {
		v.renderNode(b, g, g.Node(e.To), prefix+continuation, i == len(edges)-1, e.Kind)
	}
}
