package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Leave     key.Binding

	Submit       key.Binding
	QuantityPrev key.Binding
	QuantityNext key.Binding

	Toggle   key.Binding
	Delete   key.Binding
	ClearAll key.Binding

	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextFocus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Leave:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		QuantityPrev: key.NewBinding(key.WithKeys("left", "h", "down", "j"), key.WithHelp("←", "fewer")),
		QuantityNext: key.NewBinding(key.WithKeys("right", "l", "up", "k"), key.WithHelp("→", "more")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "packed")),
		Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		ClearAll:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
