package ui

import (
	"github.com/Cyclone1070/larastack/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds one style per message phase plus the prompt style.
type Styles struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles builds styles bound to r, so color output follows r's terminal.
func NewStyles(r *lipgloss.Renderer, colors config.UIConfig) Styles {
	return Styles{
		Info:    r.NewStyle().Foreground(lipgloss.Color(colors.ColorInfo)),
		Success: r.NewStyle().Foreground(lipgloss.Color(colors.ColorSuccess)),
		Error:   r.NewStyle().Foreground(lipgloss.Color(colors.ColorError)),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color(colors.ColorPrompt)),
	}
}

// For returns the style of phase; unknown phases render as info.
func (s Styles) For(phase Phase) lipgloss.Style {
	switch phase {
	case PhaseSuccess:
		return s.Success
	case PhaseError:
		return s.Error
	default:
		return s.Info
	}
}
