package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the gallery
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default vim-style keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "n", " "),
			key.WithHelp("l/→", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the minimal help bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp returns all help bindings organized in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.First, k.Last},
		{k.Help, k.Quit},
	}
}
