package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/getitem/internal/cli"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the picker until the user picks a candidate or quits. The bool
// result is false when the user quit without picking.
func Run(ctx context.Context, resolver cli.CandidateResolver, query string, opts ...tea.ProgramOption) (cli.Selection, bool, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)

	final, err := tea.NewProgram(NewModel(resolver, query), options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return cli.Selection{}, false, cli.ErrInputCancelled
		}
		return cli.Selection{}, false, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return cli.Selection{}, false, fmt.Errorf("picker returned unexpected model %T", final)
	}

	sel, picked := m.Selected()
	return sel, picked, nil
}
