package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/loomworks/lace/internal/config"
)

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	top      key.Binding
	bottom   key.Binding
	star     key.Binding
	toggle   key.Binding
	jump     key.Binding
	accept   key.Binding
	cancel   key.Binding
	quit     key.Binding
	help     key.Binding
}

func newKeyMap(k config.KeysConfig) keyMap {
	return keyMap{
		up:       config.Binding(k.Up, "up"),
		down:     config.Binding(k.Down, "down"),
		pageUp:   config.Binding(k.PageUp, "page up"),
		pageDown: config.Binding(k.PageDown, "page down"),
		top:      config.Binding(k.Top, "first"),
		bottom:   config.Binding(k.Bottom, "last"),
		star:     config.Binding(k.Star, "star"),
		toggle:   config.Binding(k.ToggleSeparators, "separators"),
		jump:     config.Binding(k.Jump, "jump"),
		accept:   config.Binding(k.Accept, "accept"),
		cancel:   config.Binding(k.Cancel, "cancel"),
		quit:     config.Binding(k.Quit, "quit"),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.star, k.toggle, k.jump, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown},
		{k.top, k.bottom, k.star, k.toggle},
		{k.jump, k.accept, k.cancel, k.quit},
	}
}
