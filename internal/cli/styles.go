// Package cli implements the console lookup session: prompts, candidate
// lists, and record output styled with lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#E0A458")
	// SuccessColor indicates a resolved selection.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for box titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// IndexStyle formats the number in front of a candidate.
	IndexStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// LabelStyle formats column names in a record box.
	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
)

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatPrompt renders a prompt label followed by a single space.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt) + " "
}

// FormatCandidate renders one numbered candidate line.
func FormatCandidate(index int, key string) string {
	return IndexStyle.Render(fmt.Sprintf("%d.", index)) + " " + key
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(title),
		content,
	))
}

// RenderFields pairs column labels with record fields, one per line.
// Extra fields without a label are shown under their position.
func RenderFields(columns, fields []string) string {
	width := 0
	for _, c := range columns {
		width = max(width, lipgloss.Width(c))
	}

	lines := make([]string, 0, len(fields))
	for i, f := range fields {
		label := fmt.Sprintf("#%d", i)
		if i < len(columns) {
			label = columns[i]
		}
		pad := strings.Repeat(" ", max(0, width-lipgloss.Width(label)))
		lines = append(lines, LabelStyle.Render(label)+pad+"  "+f)
	}
	return strings.Join(lines, "\n")
}
