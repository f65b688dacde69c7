package views

import "github.com/vk/deploygo/internal/dag"

// View renders one representation of a dependency graph. The graph is
// expected to be acyclic and stage-annotated by the time a view sees it.
type View interface {
	Render(g *dag.Graph) (string, error)
}
