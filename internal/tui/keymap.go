package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the review screen shortcuts. Row navigation is handled by
// the table's own key map.
type KeyMap struct {
	Suggest key.Binding
	Pick    key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Suggest: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "suggest"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "pick suggestion"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset row"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Suggest, k.Pick, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Suggest, k.Pick, k.Reset},
		{k.Help, k.Quit},
	}
}
