package lace

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var _ Element = (*Label)(nil)

// Label is a static text element. It renders each line of Text through
// Style, terminated with a newline, and makes no attempt to fit the given
// width; hosts that need truncation wrap it or use a styled element of
// their own.
type Label struct {
	Text  string
	Style lipgloss.Style
}

func (l Label) Render(w io.Writer, _ int) {
	for _, line := range strings.Split(l.Text, "\n") {
		io.WriteString(w, l.Style.Render(line))
		io.WriteString(w, "\n")
	}
}

func (l Label) Height() int {
	return strings.Count(l.Text, "\n") + 1
}
