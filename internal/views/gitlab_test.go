package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRenderer struct {
	name string
	data any
}

func (r *captureRenderer) Render(name string, data any) (string, error) {
	r.name = name
	r.data = data
	return "rendered", nil
}

func TestGitlabViewAssemblesJobs(t *testing.T) {
	g := buildGraph(t,
		mkBuild(t, "gcc/10.2.0", "mpfr"),
		mkBuild(t, "tool", "gcc", "gcc/10.2.0"),
	)

	renderer := &captureRenderer{}
	out, err := NewGitlabView(renderer).Render(g)
	require.NoError(t, err)
	assert.Equal(t, "rendered", out)
	assert.Equal(t, "pipeline", renderer.name)

	data, ok := renderer.data.(pipelineData)
	require.True(t, ok)

	// Built nodes sit at depths 1 and 3; the intermediate depths belong to
	// dependency-only nodes and produce no stage.
	assert.Equal(t, []string{"stage-1", "stage-3"}, data.Stages)

	require.Len(t, data.Jobs, 2)

	gcc := data.Jobs[0]
	assert.Equal(t, "gcc/10.2.0/default", gcc.Name)
	assert.Equal(t, "stage-1", gcc.Stage)
	assert.Equal(t, []string{"module load mpfr"}, gcc.Loads)
	assert.Equal(t, "build gcc 10.2.0", gcc.BuildCommand)
	assert.Empty(t, gcc.Needs)

	tool := data.Jobs[1]
	assert.Equal(t, "tool/*/default", tool.Name)
	assert.Equal(t, "stage-3", tool.Stage)
	assert.Equal(t, []string{"module load gcc", "module load gcc/10.2.0"}, tool.Loads)
	assert.Equal(t, "build tool", tool.BuildCommand)
	// The wildcard and the exact dependency resolve to the same job.
	assert.Equal(t, []string{"gcc/10.2.0/default"}, tool.Needs)
}

func TestGitlabViewRendersPipeline(t *testing.T) {
	g := buildGraph(t,
		mkBuild(t, "gcc/10.2.0", "mpfr"),
		mkBuild(t, "tool", "gcc", "gcc/10.2.0"),
	)

	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)
	out, err := NewGitlabView(renderer).Render(g)
	require.NoError(t, err)

	want := strings.Join([]string{
		"stages:",
		"  - stage-1",
		"  - stage-3",
		"",
		`"gcc/10.2.0/default":`,
		"  stage: stage-1",
		"  script:",
		"    - module purge",
		"    - module load mpfr",
		"    - build gcc 10.2.0",
		"",
		`"tool/*/default":`,
		"  stage: stage-3",
		"  needs:",
		`    - "gcc/10.2.0/default"`,
		"  script:",
		"    - module purge",
		"    - module load gcc",
		"    - module load gcc/10.2.0",
		"    - build tool",
		"",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestTemplateRendererUnknownTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, err = renderer.Render("no-such-template", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-template")
}
