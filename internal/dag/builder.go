package dag

import (
	"context"

	"github.com/vk/deploygo/internal/ctxlog"
	"github.com/vk/deploygo/internal/model"
)

// Options control graph construction rules.
type Options struct {
	// InduceWildcardPeers also treats built wildcard packages as providers
	// of dependency-only wildcard nodes with the same name. The standard
	// rule inducts concrete versions only.
	InduceWildcardPeers bool
}

// Build converts a deployment into its dependency graph.
//
// Nodes: one built node per build (duplicates are last-wins), plus one
// dependency node for every referenced package not built here. Edges are
// stored in the presented orientation: declared edges run dependency →
// dependant, and induced edges run concrete provider → wildcard node, so a
// forward traversal from any root walks outward toward dependants and the
// sequence places providers first.
//
// A self-dependency is not rejected here; it becomes a one-node cycle and
// is caught at sequencing.
func Build(ctx context.Context, deployment *model.Deployment, opts Options) *Graph {
	logger := ctxlog.FromContext(ctx)
	g := newGraph()
	builds := deployment.Builds()

	// First pass: one node per build, in deployment order.
	for i := range builds {
		g.ensureNode(builds[i].Package(), KindBuilt, &builds[i])
	}

	// Second pass: dependency nodes and declared edges.
	for i := range builds {
		dependant := g.index[builds[i].Package().String()]
		for _, dep := range builds[i].Dependencies() {
			depID := g.ensureNode(dep, KindDependency, nil)
			g.addEdge(depID, dependant, EdgeDeclared)
		}
	}

	// Induction: concrete versions of a name fan in to each wildcard node
	// of that name, expressing "this build also satisfies the wildcard".
	for _, wild := range g.nodes {
		if !wild.pkg.IsWildcard() {
			continue
		}
		for _, provider := range g.nodes {
			if provider.id == wild.id || provider.pkg.Name() != wild.pkg.Name() {
				continue
			}
			if provider.pkg.IsWildcard() {
				if !opts.InduceWildcardPeers || provider.kind != KindBuilt || wild.kind != KindDependency {
					continue
				}
			}
			g.addEdge(provider.id, wild.id, EdgeInduced)
		}
	}

	edges := 0
	for id := range g.outs {
		edges += len(g.outs[id])
	}
	logger.Debug("Graph construction complete.", "nodes", len(g.nodes), "edges", edges)
	return g
}
