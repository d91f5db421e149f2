package tui

import (
	"testing"

	"github.com/Veraticus/getitem/internal/match"
	"github.com/Veraticus/getitem/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *match.Resolver {
	catalog := model.NewCatalog([]model.Record{
		{Fields: []string{"1", "apple"}},
		{Fields: []string{"2", "apricot"}},
		{Fields: []string{"3", "banana"}},
	}, model.DefaultKeyField)
	return match.NewResolver(catalog)
}

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	return updated.(Model), cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel_ResolvesInitialQuery(t *testing.T) {
	m := NewModel(testResolver(), "ban")

	require.NotEmpty(t, m.Candidates())
	assert.Equal(t, "banana", m.Candidates()[0])
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_TypingReResolves(t *testing.T) {
	m := NewModel(testResolver(), "")

	m = typeText(m, "apr")

	assert.Equal(t, "apricot", m.Candidates()[0])
}

func TestModel_Navigation(t *testing.T) {
	m := NewModel(testResolver(), "ap")
	require.Len(t, m.Candidates(), 3)

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, 0, m.Cursor(), "cursor stays at top")

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, 2, m.Cursor(), "cursor stops at last candidate")

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, 1, m.Cursor())

	m = typeText(m, "r")
	assert.Equal(t, 0, m.Cursor(), "new query resets cursor")
}

func TestModel_Select(t *testing.T) {
	m := NewModel(testResolver(), "ap")

	m, _ = press(m, tea.KeyDown)
	m, cmd := press(m, tea.KeyEnter)

	assert.True(t, isQuit(t, cmd))
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, sel.Index)
	assert.Equal(t, "apricot", sel.Key)
	assert.Empty(t, m.View())
}

func TestModel_SelectWithoutCandidates(t *testing.T) {
	empty := match.NewResolver(model.NewCatalog(nil, model.DefaultKeyField))
	m := NewModel(empty, "x")

	m, cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewModel(testResolver(), "ap")

		m, cmd := press(m, k)

		assert.True(t, isQuit(t, cmd))
		_, ok := m.Selected()
		assert.False(t, ok)
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(testResolver(), "ap")

	view := m.View()

	assert.Contains(t, view, "3 matches")
	assert.Contains(t, view, " 1. apple")
	assert.Contains(t, view, " 3. banana")
}

func TestModel_ViewRespectsHeight(t *testing.T) {
	m := NewModel(testResolver(), "ap")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 9})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, " 1. apple")
	assert.NotContains(t, view, " 2. apricot")
}
