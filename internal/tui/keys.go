package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/msto63/currencyedit/internal/tui/currencyinput"
)

// KeyMap holds the demo bindings and those of the focused input
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Help  key.Binding
	Quit  key.Binding
	Input currencyinput.KeyMap
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Input: currencyinput.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Next, k.Help, k.Quit}, k.Input.ShortHelp()...)
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Next, k.Prev, k.Help, k.Quit}}, k.Input.FullHelp()...)
}
