package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	VotePositive key.Binding
	VoteNegative key.Binding
	Reset        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		VotePositive: key.NewBinding(
			key.WithKeys("p", "+", "up"),
			key.WithHelp("p/+", "vote positive"),
		),
		VoteNegative: key.NewBinding(
			key.WithKeys("n", "-", "down"),
			key.WithHelp("n/-", "vote negative"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset votes"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.VotePositive, k.VoteNegative, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.VotePositive, k.VoteNegative},
		{k.Reset},
		{k.Help, k.Quit},
	}
}
