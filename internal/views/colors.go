package views

import "github.com/fatih/color"

// Palette holds the output colors used by the shell view. Color capability
// is decided once at construction and threaded in explicitly; the palette
// never consults the process environment.
type Palette struct {
	Comment *color.Color // section headers and annotations
	Muted   *color.Color // environment resets, system-provided loads
	Fresh   *color.Color // dependencies built earlier in the same run
	Stale   *color.Color // same-name dependencies that may have been rebuilt
	Strong  *color.Color // build directives
}

// NewPalette returns a palette with escape sequences forced on or off.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		Comment: color.New(color.FgBlue),
		Muted:   color.New(color.FgHiBlack),
		Fresh:   color.New(color.FgGreen),
		Stale:   color.New(color.FgYellow),
		Strong:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.Comment, p.Muted, p.Fresh, p.Stale, p.Strong} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
