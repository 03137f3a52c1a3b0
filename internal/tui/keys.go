package tui

import "github.com/charmbracelet/bubbles/key"

// BarKeys are the bindings of the terminal bar.
type BarKeys struct {
	Toggle key.Binding
	Quit   key.Binding
}

var barKeys = BarKeys{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "toggle"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
