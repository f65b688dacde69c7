package dag

// AnnotateStages assigns every node its depth in the DAG: roots are stage
// zero, every other node sits one past its deepest predecessor. Stages
// group builds that could run in parallel; the CI view renders them as
// pipeline stages.
//
// Annotation requires a full topological pass, so running it up front also
// performs the eager cycle detection every subcommand needs before any
// output is written.
func (g *Graph) AnnotateStages() error {
	order, err := g.Sequence()
	if err != nil {
		return err
	}
	for _, n := range order {
		stage := 0
		for _, e := range g.ins[n.id] {
			if s := g.nodes[e.From].stage + 1; s > stage {
				stage = s
			}
		}
		n.stage = stage
	}
	return nil
}
