// Package rule provides separator elements for list content: horizontal
// rules with optional inset labels and color gradients, and blank gaps.
package rule

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/loomworks/lace"
)

var _ lace.Element = Rule{}
var _ lace.Element = Gap(0)

// Rule is a one-line horizontal separator. The line repeats the Line
// pattern across the full width; when Label is set it is inset into the
// line with a space on each side and placed according to Align.
//
// When GradientFrom and GradientTo hold valid hex colors the line is
// colored cell by cell, blending between the two endpoints across the
// width; otherwise the line is rendered through Style. The label always
// uses LabelStyle.
type Rule struct {
	Line       string
	Label      string
	Style      lipgloss.Style
	LabelStyle lipgloss.Style

	// Align places the label along the rule. The zero value is flush
	// left; lipgloss.Center and lipgloss.Right are the usual choices.
	Align lipgloss.Position

	GradientFrom string
	GradientTo   string
}

func (r Rule) Height() int { return 1 }

func (r Rule) Render(w io.Writer, width int) {
	if width <= 0 {
		io.WriteString(w, "\n")
		return
	}

	pattern := r.Line
	if uniseg.StringWidth(pattern) == 0 {
		pattern = "─"
	}

	label := r.Label
	if label != "" {
		label = " " + label + " "
		if uniseg.StringWidth(label) > width {
			label = truncate(label, width)
		}
	}
	remaining := width - uniseg.StringWidth(label)
	lead := int(float64(remaining) * float64(r.Align))
	trail := remaining - lead

	var out strings.Builder
	out.WriteString(r.paint(run(pattern, lead), 0, width))
	if label != "" {
		out.WriteString(r.LabelStyle.Render(label))
	}
	out.WriteString(r.paint(run(pattern, trail), width-trail, width))
	io.WriteString(w, out.String())
	io.WriteString(w, "\n")
}

// paint styles a stretch of line cells. With valid gradient endpoints
// each grapheme is colored by its absolute position across the rule;
// offset is the position of the stretch's first cell.
func (r Rule) paint(cells string, offset, width int) string {
	if cells == "" {
		return ""
	}
	from, err := colorful.Hex(r.GradientFrom)
	if err != nil {
		return r.Style.Render(cells)
	}
	to, err := colorful.Hex(r.GradientTo)
	if err != nil {
		return r.Style.Render(cells)
	}

	var out strings.Builder
	pos := offset
	gr := uniseg.NewGraphemes(cells)
	for gr.Next() {
		blend := 0.0
		if width > 1 {
			blend = float64(pos) / float64(width-1)
		}
		color := from.BlendLuv(to, blend)
		out.WriteString(r.Style.Foreground(lipgloss.Color(color.Hex())).Render(gr.Str()))
		pos += gr.Width()
	}
	return out.String()
}

// run repeats the pattern until it fills count cells. A final cluster too
// wide for the space left is replaced with spaces so the run never
// overshoots.
func run(pattern string, count int) string {
	if count <= 0 {
		return ""
	}
	var out strings.Builder
	filled := 0
	for filled < count {
		gr := uniseg.NewGraphemes(pattern)
		for gr.Next() && filled < count {
			w := gr.Width()
			if w == 0 {
				continue
			}
			if filled+w > count {
				out.WriteString(strings.Repeat(" ", count-filled))
				filled = count
				break
			}
			out.WriteString(gr.Str())
			filled += w
		}
	}
	return out.String()
}

// truncate cuts s at a grapheme boundary so it occupies at most the given
// number of cells.
func truncate(s string, cells int) string {
	if cells <= 0 {
		return ""
	}
	var out strings.Builder
	filled := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if filled+w > cells {
			break
		}
		out.WriteString(gr.Str())
		filled += w
	}
	return out.String()
}

// Gap is a blank element occupying the given number of lines.
type Gap int

func (g Gap) Render(w io.Writer, _ int) {
	for i := 0; i < int(g); i++ {
		io.WriteString(w, "\n")
	}
}

func (g Gap) Height() int {
	if g < 0 {
		return 0
	}
	return int(g)
}
