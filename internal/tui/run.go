package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/gastx/internal/report"
)

// Run shows the review screen until the user quits and returns the entries
// with any manual choices applied.
func Run(ctx context.Context, entries []report.Entry, suggester Suggester, opts ...Option) ([]report.Entry, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	p := tea.NewProgram(
		New(entries, suggester, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("review screen failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Reviewed(), nil
}
