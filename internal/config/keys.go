package config

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding builds a key binding from configured keys, with the joined key
// list as its help hint.
func Binding(keys []string, help string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(JoinKeys(keys), help))
}

// JoinKeys renders a configured key list for help text, substituting
// glyphs for the arrow keys and space.
func JoinKeys(keys []string) string {
	var joined []string
	for _, k := range keys {
		switch k {
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		case "left":
			k = "←"
		case "right":
			k = "→"
		case " ":
			k = "space"
		}
		joined = append(joined, k)
	}
	return strings.Join(joined, "/")
}
