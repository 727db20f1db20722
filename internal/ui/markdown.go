package ui

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer wrapping at width. Without a
// terminal the plain "notty" style is used.
func NewGlamourRenderer(width int, terminal bool) (*GlamourRenderer, error) {
	style := glamour.WithStandardStyle("notty")
	if terminal {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

func (g *GlamourRenderer) Render(content string) (string, error) {
	return g.renderer.Render(content)
}
