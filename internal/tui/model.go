// Package tui implements an interactive review screen for classified
// statement lines.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/report"
)

// Suggester ranks candidate categories for a description.
type Suggester interface {
	Suggest(text string) []model.CategorySuggestion
}

// chromeHeight is the number of lines used around the table.
const chromeHeight = 10

// Model holds the review screen state.
type Model struct {
	suggester   Suggester
	overrides   map[int]model.Category
	keymap      KeyMap
	help        help.Model
	status      string
	entries     []report.Entry
	suggestions []model.CategorySuggestion
	table       table.Model
	config      Config
	suggestRow  int
	quitting    bool
}

// New creates a review model over entries.
func New(entries []report.Entry, suggester Suggester, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		suggester:  suggester,
		overrides:  make(map[int]model.Category),
		keymap:     DefaultKeyMap(),
		help:       h,
		entries:    entries,
		config:     cfg,
		suggestRow: -1,
	}

	m.table = table.New(
		table.WithColumns(columns(cfg.Width)),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(tableHeight(cfg.Height)),
	)
	m.table.SetStyles(tableStyles())

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.Width = msg.Width
		m.config.Height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.table.SetHeight(tableHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.Suggest):
			m.suggest()
			return m, nil
		case key.Matches(msg, m.keymap.Pick):
			m.pick(int(msg.Runes[0] - '1'))
			return m, nil
		case key.Matches(msg, m.keymap.Reset):
			m.reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != before {
		m.suggestions = nil
		m.suggestRow = -1
		m.status = ""
	}
	return m, cmd
}

func (m *Model) suggest() {
	row := m.table.Cursor()
	if row < 0 || row >= len(m.entries) || m.suggester == nil {
		return
	}

	m.suggestions = m.suggester.Suggest(m.entries[row].Title)
	m.suggestRow = row
	if len(m.suggestions) == 0 {
		m.status = "no suggestions for this description"
	} else {
		m.status = ""
	}
}

func (m *Model) pick(n int) {
	if m.suggestRow != m.table.Cursor() || n < 0 || n >= len(m.suggestions) {
		m.status = "press enter to load suggestions first"
		return
	}

	category := m.suggestions[n].Category
	if category == m.entries[m.suggestRow].Category {
		delete(m.overrides, m.suggestRow)
	} else {
		m.overrides[m.suggestRow] = category
	}
	m.status = fmt.Sprintf("row %d set to %s", m.suggestRow+1, category)
	m.table.SetRows(m.rows())
}

func (m *Model) reset() {
	row := m.table.Cursor()
	if _, ok := m.overrides[row]; !ok {
		return
	}
	delete(m.overrides, row)
	m.status = fmt.Sprintf("row %d restored", row+1)
	m.table.SetRows(m.rows())
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		category := string(e.Category)
		confidence := string(e.Confidence)
		if override, ok := m.overrides[i]; ok {
			category = string(override) + " *"
			confidence = "manual"
		}
		rows[i] = table.Row{
			e.Date,
			e.Title,
			category,
			confidence,
			fmt.Sprintf("%.2f", e.Amount),
		}
	}
	return rows
}

// Overrides returns the manual category choices keyed by row index.
func (m Model) Overrides() map[int]model.Category {
	out := make(map[int]model.Category, len(m.overrides))
	for k, v := range m.overrides {
		out[k] = v
	}
	return out
}

// Reviewed returns the entries with manual choices applied.
func (m Model) Reviewed() []report.Entry {
	out := make([]report.Entry, len(m.entries))
	copy(out, m.entries)
	for i, category := range m.overrides {
		out[i].Category = category
		out[i].Confidence = model.ConfidenceNone
		out[i].MatchedPattern = ""
	}
	return out
}

func tableHeight(height int) int {
	return max(height-chromeHeight, 3)
}

func columns(width int) []table.Column {
	title := max(width-12-16-8-12-12, 20)
	return []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Descrição", Width: title},
		{Title: "Categoria", Width: 16},
		{Title: "Conf.", Width: 8},
		{Title: "Valor", Width: 12},
	}
}
