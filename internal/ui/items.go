package ui

import (
	"fmt"
	"io"

	"github.com/loomworks/lace"
)

var _ lace.Element = entryElement{}

// entryElement renders one release as two lines: the version and title,
// then a dimmed date and note. The star marker reflects retained state
// kept by the host, not by the element.
type entryElement struct {
	entry    entry
	starred  bool
	selected bool
	styles   styles
}

func (e entryElement) Height() int { return 2 }

func (e entryElement) Render(w io.Writer, width int) {
	marker := "  "
	markerStyle := e.styles.subtle
	if e.starred {
		marker = "★ "
		markerStyle = e.styles.starred
	}
	titleStyle := e.styles.entry
	if e.selected {
		titleStyle = e.styles.selected
	}
	title := fmt.Sprintf("%s  %s", e.entry.version, e.entry.title)
	io.WriteString(w, markerStyle.Render(marker))
	io.WriteString(w, titleStyle.MaxWidth(max(0, width-2)).Render(title))
	io.WriteString(w, "\n")
	detail := fmt.Sprintf("  %s  %s", e.entry.date, e.entry.note)
	io.WriteString(w, e.styles.subtle.MaxWidth(width).Render(detail))
	io.WriteString(w, "\n")
}
