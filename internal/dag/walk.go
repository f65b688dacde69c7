package dag

// DFSTree returns the depth-first tree edges reachable from root. Each node
// is entered through at most one edge per call; children expand in edge
// insertion order. Induced edges are walked like any other edge.
func (g *Graph) DFSTree(root *Node) []Edge {
	visited := make([]bool, len(g.nodes))
	visited[root.id] = true

	var edges []Edge
	var visit func(id int)
	visit = func(id int) {
		for _, e := range g.outs[id] {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			edges = append(edges, e)
			visit(e.To)
		}
	}
	visit(root.id)
	return edges
}
