package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Remove   key.Binding
	HeatUp   key.Binding
	HeatDown key.Binding
	Cycle    key.Binding
	Search   key.Binding
	Chart    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add food")),
	Remove:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
	HeatUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "heat up")),
	HeatDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "heat down")),
	Cycle:    key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "cycle filter")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Chart:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
