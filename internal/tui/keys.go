package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the wizard key bindings.
type KeyMap struct {
	Next  key.Binding
	Back  key.Binding
	Close key.Binding
	Quit  key.Binding
	Help  key.Binding
	Jump  key.Binding
}

// DefaultKeyMap returns the standard bindings: enter advances, backspace goes
// back, esc closes and digits jump to a step. Only single digits are bound,
// so steps after the ninth are reached by clicking them or with enter.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:  key.NewBinding(key.WithKeys("enter"), key.WithHelp(KeyEnter, "next")),
		Back:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp(KeyBackspace, "back")),
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp(KeyEsc, "close")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp(KeyHelp, "help")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp(KeyDigits, "jump"),
		),
	}
}
