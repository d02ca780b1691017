package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the colors and pre-computed styles used across the viewer.
// Styles are created once at startup instead of per-frame.
type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor

	// Pre-computed styles
	TitleText     lipgloss.Style
	SecondaryText lipgloss.Style
	MutedText     lipgloss.Style
	AccentText    lipgloss.Style
	ErrorText     lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	FooterBar     lipgloss.Style
	ModalBox      lipgloss.Style
}

// DefaultTheme returns the standard dark-leaning adaptive theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#8BE9FD"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#6272A4", Dark: "#9A9AB0"},
		Muted:     lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555566"},
		Border:    lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#3A3A4C"},
		Accent:    lipgloss.AdaptiveColor{Light: "#FF79C6", Dark: "#FF79C6"},
		Error:     lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5555"},
	}
	t.computeStyles()
	return t
}

// LightTheme returns a light-optimized variant.
func LightTheme(r *lipgloss.Renderer) Theme {
	t := DefaultTheme(r)
	t.Primary = lipgloss.AdaptiveColor{Light: "#5A33CC", Dark: "#5A33CC"}
	t.Subtext = lipgloss.AdaptiveColor{Light: "#444466", Dark: "#444466"}
	t.computeStyles()
	return t
}

// ThemeByName resolves a config theme name, defaulting to the dark theme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	if name == "light" {
		return LightTheme(r)
	}
	return DefaultTheme(r)
}

func (t *Theme) computeStyles() {
	r := t.Renderer

	t.TitleText = r.NewStyle().Bold(true).Foreground(t.Primary)
	t.SecondaryText = r.NewStyle().Foreground(t.Secondary)
	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.AccentText = r.NewStyle().Foreground(t.Accent)
	t.ErrorText = r.NewStyle().Foreground(t.Error)

	t.TabActive = r.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(t.Primary)
	t.TabInactive = r.NewStyle().
		Foreground(t.Subtext).
		Padding(0, 2)

	t.FooterBar = r.NewStyle().Foreground(t.Subtext)

	t.ModalBox = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)
}
