package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style of the picker.
type Theme struct {
	Title    lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Prefix   lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultTheme is the default picker theme.
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E0A458")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1a1a1a")).
		Background(lipgloss.Color("#E0A458")),
	Prefix: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ECDC4")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}
