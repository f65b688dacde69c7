package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineGraphView(t *testing.T) {
	g := buildGraph(t,
		mkBuild(t, "gcc/10.2.0", "mpfr"),
		mkBuild(t, "tool", "gcc", "gcc/10.2.0"),
	)

	out, err := NewLineGraphView().Render(g)
	require.NoError(t, err)

	want := strings.Join([]string{
		" ╰─╴mpfr/*/default 0",
		"     ╰─╴gcc/10.2.0/default 1",
		"         ├─╴tool/*/default 3",
		"        ▶╰┄ gcc/*/default 2",
		"             ╰─╴tool/*/default 3",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestLineGraphViewMultipleRoots(t *testing.T) {
	g := buildGraph(t,
		mkBuild(t, "a"),
		mkBuild(t, "b"),
	)

	out, err := NewLineGraphView().Render(g)
	require.NoError(t, err)
	assert.Equal(t, " ├─╴a/*/default 0\n ╰─╴b/*/default 0\n", out)
}

func TestLineGraphViewExpandsSharedNodesPerPath(t *testing.T) {
	// Diamond: d is reachable through b and through c, so it renders twice.
	g := buildGraph(t,
		mkBuild(t, "a"),
		mkBuild(t, "b", "a"),
		mkBuild(t, "c", "a"),
		mkBuild(t, "d", "b", "c"),
	)

	out, err := NewLineGraphView().Render(g)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "d/*/default"))
	assert.Equal(t, 1, strings.Count(out, "a/*/default"))
}
