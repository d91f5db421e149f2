// Package tui provides a full-screen picker that re-resolves candidates as
// the query is typed.
package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/getitem/internal/cli"
	"github.com/Veraticus/getitem/internal/match"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the picker state.
type Model struct {
	resolver   cli.CandidateResolver
	theme      Theme
	keymap     KeyMap
	help       help.Model
	input      textinput.Model
	selection  cli.Selection
	resolution match.Resolution
	cursor     int
	width      int
	height     int
	picked     bool
	quitting   bool
}

// NewModel creates a picker seeded with query.
func NewModel(resolver cli.CandidateResolver, query string) Model {
	ti := textinput.New()
	ti.Prompt = "Query: "
	ti.Placeholder = "item name"
	ti.SetValue(query)
	ti.Focus()

	m := Model{
		resolver: resolver,
		theme:    DefaultTheme,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
	}
	m.resolve()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keymap.Down):
			if m.cursor < len(m.resolution.Candidates)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keymap.Select):
			if len(m.resolution.Candidates) == 0 {
				return m, nil
			}
			m.selection = cli.Selection{
				Index: m.cursor + 1,
				Key:   m.resolution.Candidates[m.cursor],
			}
			m.picked = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.resolve()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.picked {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("getitem"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf("%d matches", len(m.resolution.Candidates))))
	b.WriteString("\n")

	prefix := make(map[string]bool, len(m.resolution.Prefix))
	for _, k := range m.resolution.Prefix {
		prefix[k] = true
	}

	for i, candidate := range m.visibleCandidates() {
		line := fmt.Sprintf("%2d. %s", i+1, candidate)
		switch {
		case i == m.cursor:
			line = m.theme.Selected.Render(line)
		case prefix[candidate]:
			line = m.theme.Prefix.Render(line)
		default:
			line = m.theme.Normal.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

// Selected returns the picked candidate, if any.
func (m Model) Selected() (cli.Selection, bool) {
	return m.selection, m.picked
}

// Candidates returns the current candidate list.
func (m Model) Candidates() []string {
	return m.resolution.Candidates
}

// Cursor returns the highlighted row, zero-based.
func (m Model) Cursor() int {
	return m.cursor
}

// visibleCandidates trims the list to the window height, leaving room for
// the title, query, count and help lines.
func (m Model) visibleCandidates() []string {
	candidates := m.resolution.Candidates
	if m.height <= 0 {
		return candidates
	}
	room := max(1, m.height-8)
	if m.cursor >= room {
		room = m.cursor + 1
	}
	return candidates[:min(room, len(candidates))]
}

func (m *Model) resolve() {
	m.resolution = m.resolver.Resolve(m.input.Value())
	m.cursor = 0
}
