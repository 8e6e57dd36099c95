package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the inspector UI.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Capture key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings. captureKey is the configured
// in-app capture chord; empty falls back to ctrl+h.
func DefaultKeyMap(captureKey string) KeyMap {
	if captureKey == "" {
		captureKey = "ctrl+h"
	}
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev entry")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next entry")),
		Capture: key.NewBinding(key.WithKeys(captureKey, "c"), key.WithHelp("c", "capture now")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete entry")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear history")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Capture, k.Delete, k.Clear, k.Quit}
}
