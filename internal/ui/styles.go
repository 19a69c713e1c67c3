package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loomworks/lace/internal/config"
)

// styles collects the lipgloss styles used across the interface,
// resolved once from the configured color map.
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	accent   lipgloss.Style
	entry    lipgloss.Style
	selected lipgloss.Style
	starred  lipgloss.Style
	footer   lipgloss.Style
	rule     lipgloss.Style
}

func newStyles(cfg config.Config) styles {
	ui := cfg.UI
	return styles{
		title:    ui.Color("title").Style(),
		subtle:   ui.Color("subtle").Style(),
		accent:   ui.Color("accent").Style(),
		entry:    lipgloss.NewStyle(),
		selected: ui.Color("selected").Style(),
		starred:  ui.Color("starred").Style(),
		footer:   ui.Color("footer").Style(),
		rule:     ui.Color("subtle").Style(),
	}
}
