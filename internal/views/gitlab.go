package views

import (
	"fmt"
	"sort"

	"github.com/vk/deploygo/internal/dag"
)

// pipelineJob is the plain record handed to the pipeline template, one per
// built package.
type pipelineJob struct {
	Name         string
	Stage        string
	Loads        []string
	BuildCommand string
	Needs        []string
}

type pipelineData struct {
	Stages []string
	Jobs   []pipelineJob
}

// GitlabView renders the build sequence as a GitLab CI pipeline. Jobs land
// in stages matching their graph depth and declare needs on the jobs that
// produce their dependencies, so independent packages build in parallel.
// The YAML syntax itself lives with the Renderer; this view only assembles
// plain records.
type GitlabView struct {
	renderer Renderer
}

func NewGitlabView(renderer Renderer) *GitlabView {
	return &GitlabView{renderer: renderer}
}

func (v *GitlabView) Render(g *dag.Graph) (string, error) {
	built, err := g.SequenceBuilt()
	if err != nil {
		return "", err
	}

	stages := make(map[int]bool)
	var data pipelineData
	var done []*dag.Node
	for _, n := range built {
		stages[n.Stage()] = true

		job := pipelineJob{
			Name:         n.Label(),
			Stage:        stageName(n.Stage()),
			BuildCommand: n.Package().BuildDirective(),
		}
		for _, dep := range n.Build().Dependencies() {
			job.Loads = append(job.Loads, dep.LoadDirective())
			for _, earlier := range done {
				exact := earlier.Package().Equal(dep)
				satisfies := dep.IsWildcard() && earlier.Package().Name() == dep.Name()
				if (exact || satisfies) && !contains(job.Needs, earlier.Label()) {
					job.Needs = append(job.Needs, earlier.Label())
				}
			}
		}
		data.Jobs = append(data.Jobs, job)
		done = append(done, n)
	}

	depths := make([]int, 0, len(stages))
	for s := range stages {
		depths = append(depths, s)
	}
	sort.Ints(depths)
	for _, s := range depths {
		data.Stages = append(data.Stages, stageName(s))
	}

	return v.renderer.Render("pipeline", data)
}

func stageName(depth int) string {
	return fmt.Sprintf("stage-%d", depth)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
