package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/gastx/internal/cli"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor).
			Padding(0, 1)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(cli.PrimaryColor).
		Bold(false)
	return s
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		headerStyle.Render(fmt.Sprintf("%s %s (%d)", cli.WalletIcon, m.config.Title, len(m.entries))),
		m.table.View(),
	}

	if panel := m.renderSuggestions(); panel != "" {
		sections = append(sections, panel)
	}
	if m.status != "" {
		sections = append(sections, cli.SubtleStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSuggestions() string {
	if m.suggestRow < 0 || len(m.suggestions) == 0 {
		return ""
	}

	var b strings.Builder
	for i, s := range m.suggestions {
		fmt.Fprintf(&b, "%d. %-16s %.2f\n", i+1, s.Category, s.Score)
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
