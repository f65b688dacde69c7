package views

import (
	"fmt"
	"strings"

	"github.com/vk/deploygo/internal/dag"
	"github.com/vk/deploygo/internal/model"
)

const loadColumnWidth = 40

// ShellCommandsView renders the sequence of shell commands that rebuilds
// every package in dependency order. Each dependency load is annotated with
// its provenance relative to this run: already rebuilt, possibly rebuilt
// under another version, or assumed system provided.
type ShellCommandsView struct {
	palette *Palette
}

func NewShellCommandsView(colorEnabled bool) *ShellCommandsView {
	return &ShellCommandsView{palette: NewPalette(colorEnabled)}
}

func (v *ShellCommandsView) Render(g *dag.Graph) (string, error) {
	built, err := g.SequenceBuilt()
	if err != nil {
		return "", err
	}

	var done []model.Package
	var lines []string
	for _, n := range built {
		lines = append(lines, "")
		lines = append(lines, v.palette.Comment.Sprintf("# Building %s", n.Label()))
		lines = append(lines, v.palette.Muted.Sprint("module purge"))
		for _, dep := range n.Build().Dependencies() {
			lines = append(lines, v.loadLine(dep, done))
		}
		lines = append(lines, v.palette.Strong.Sprint(n.Package().BuildDirective()))
		done = append(done, n.Package())
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func (v *ShellCommandsView) loadLine(dep model.Package, done []model.Package) string {
	tag := v.palette.Muted.Sprint("system provided")
	for _, p := range done {
		if p.Equal(dep) {
			tag = v.palette.Fresh.Sprint("just rebuilt")
			break
		}
		if p.Name() == dep.Name() {
			tag = v.palette.Stale.Sprint("maybe rebuilt")
		}
	}
	return fmt.Sprintf("%-*s%s%s", loadColumnWidth, dep.LoadDirective(), v.palette.Comment.Sprint("# "), tag)
}
