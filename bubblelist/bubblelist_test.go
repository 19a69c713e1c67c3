package bubblelist

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/lace"
)

func sampleDelegate() *lace.Separated {
	titles := []string{"alpha", "beta", "gamma"}
	return lace.NewSeparated(len(titles),
		func(_ lace.Context, index int) lace.Element {
			return lace.Label{Text: titles[index]}
		},
		func(_ lace.Context, index int) lace.Element {
			return lace.Label{Text: "···"}
		})
}

func TestItems(t *testing.T) {
	items := Items(sampleDelegate(), 40)
	require.Len(t, items, 5)

	first, ok := items[0].(Item)
	require.True(t, ok)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 0, first.Semantic)
	assert.Equal(t, "alpha", first.FilterValue())

	separator, ok := items[1].(Item)
	require.True(t, ok)
	assert.Equal(t, 1, separator.Index)
	assert.Equal(t, -1, separator.Semantic)
	assert.Equal(t, "", separator.FilterValue(), "decoration never matches a filter")

	last, ok := items[4].(Item)
	require.True(t, ok)
	assert.Equal(t, 2, last.Semantic)
	assert.Equal(t, "gamma", last.FilterValue())
}

func TestItems_PlainDelegate(t *testing.T) {
	d := lace.NewBuilder(2, func(_ lace.Context, index int) lace.Element {
		return lace.Label{Text: strings.Repeat("x", index+1)}
	})
	items := Items(d, 40)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[1].(Item).Semantic)
	assert.Equal(t, "xx", items[1].(Item).FilterValue())
}

func TestNew(t *testing.T) {
	l := New(sampleDelegate(), 40, 10)
	assert.Len(t, l.Items(), 5)

	selected, ok := l.SelectedItem().(Item)
	require.True(t, ok)
	assert.Equal(t, 0, selected.Index)
}

func TestDelegate_Render(t *testing.T) {
	source := sampleDelegate()
	l := New(source, 40, 10)
	d := NewDelegate(source)

	var buf bytes.Buffer
	d.Render(&buf, l, 0, l.Items()[0])
	assert.Contains(t, buf.String(), "alpha")

	buf.Reset()
	d.Render(&buf, l, 1, l.Items()[1])
	assert.Contains(t, buf.String(), "···")
}

func TestDelegate_UpdateNudgesOffSeparators(t *testing.T) {
	source := sampleDelegate()
	l := New(source, 40, 10)
	d := NewDelegate(source)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	up := tea.KeyMsg{Type: tea.KeyUp}

	l.Select(1)
	d.Update(down, &l)
	assert.Equal(t, 2, l.Index(), "moving down lands on the next item")

	l.Select(3)
	d.Update(up, &l)
	assert.Equal(t, 2, l.Index(), "moving up lands on the previous item")

	l.Select(2)
	d.Update(down, &l)
	assert.Equal(t, 2, l.Index(), "items are left alone")
}

func TestDelegate_UpdateReversesAtTheEdge(t *testing.T) {
	// A leading banner row with no semantic index: moving up onto it has
	// no item above, so the nudge reverses and settles below.
	source := lace.NewBuilder(3, func(_ lace.Context, index int) lace.Element {
		return lace.Label{Text: "row"}
	})
	source.SemanticIndexFunc = func(index int) (int, bool) {
		if index == 0 {
			return 0, false
		}
		return index - 1, true
	}
	source.SemanticCountFunc = func() int { return 2 }

	l := New(source, 40, 10)
	d := NewDelegate(source)

	l.Select(0)
	up := tea.KeyMsg{Type: tea.KeyUp}
	d.Update(up, &l)
	assert.Equal(t, 1, l.Index())
}
