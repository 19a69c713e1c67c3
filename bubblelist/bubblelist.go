// Package bubblelist bridges lace delegates to the bubbles list
// component. The bubbles list wants its items up front and renders each
// row at a fixed height, so the bridge materializes the delegate's
// children into list items and supplies an item delegate that renders
// each row back through the source delegate, one line per child.
package bubblelist

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/loomworks/lace"
)

var _ list.Item = Item{}
var _ list.ItemDelegate = (*Delegate)(nil)

// Item is one materialized child. Index is the child's index in the
// source delegate; Semantic is its semantic index, -1 for decoration
// such as separators. Decoration has an empty filter value, so filtering
// hides it together with any unmatched items.
type Item struct {
	Index    int
	Semantic int
	filter   string
}

func (i Item) FilterValue() string { return i.filter }

// Items materializes the delegate's children as bubbles list items. Each
// semantic child renders once at the given width to derive its filter
// text; decoration is carried through with an empty filter value.
// Re-materialize after swapping or reconfiguring the delegate.
func Items(source lace.Delegate, width int) []list.Item {
	indexer, hasIndexer := source.(lace.SemanticIndexer)
	items := make([]list.Item, source.Len())
	for i := range items {
		semantic, ok := i, true
		if hasIndexer {
			semantic, ok = indexer.SemanticIndex(i)
		}
		if !ok {
			items[i] = Item{Index: i, Semantic: -1}
			continue
		}
		var buf bytes.Buffer
		source.ElementAt(lace.Context{Cursor: -1}, i).Render(&buf, width)
		line, _, _ := strings.Cut(buf.String(), "\n")
		items[i] = Item{
			Index:    i,
			Semantic: semantic,
			filter:   strings.TrimSpace(ansi.Strip(line)),
		}
	}
	return items
}

// Delegate renders materialized children inside a bubbles list. Rows are
// one line high; a child taller than that is cut to its first line.
// Update keeps the selection on semantic children, nudging it over
// decoration in the direction of travel.
type Delegate struct {
	Source lace.Delegate
	Styles list.DefaultItemStyles
}

// NewDelegate returns a bridge delegate over source with the default
// bubbles item styles.
func NewDelegate(source lace.Delegate) *Delegate {
	return &Delegate{
		Source: source,
		Styles: list.NewDefaultItemStyles(),
	}
}

func (d *Delegate) Height() int { return 1 }

func (d *Delegate) Spacing() int { return 0 }

func (d *Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}

	cursor := -1
	if selected, ok := m.SelectedItem().(Item); ok {
		cursor = selected.Index
	}
	var buf bytes.Buffer
	element := d.Source.ElementAt(lace.Context{Cursor: cursor, Focused: true}, it.Index)
	element.Render(&buf, m.Width())
	line, _, _ := strings.Cut(buf.String(), "\n")

	if it.Semantic < 0 {
		line = d.Styles.DimmedTitle.Render(line)
	} else if index == m.Index() {
		line = d.Styles.SelectedTitle.Render(line)
	} else {
		line = d.Styles.NormalTitle.Render(line)
	}
	fmt.Fprint(w, line)
}

func (d *Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	selected, ok := m.SelectedItem().(Item)
	if !ok || selected.Semantic >= 0 {
		return nil
	}

	direction := 1
	switch key.String() {
	case "up", "k", "pgup", "b", "u":
		direction = -1
	}
	if i, ok := nearestSemantic(m.VisibleItems(), m.Index(), direction); ok {
		m.Select(i)
	} else if i, ok := nearestSemantic(m.VisibleItems(), m.Index(), -direction); ok {
		m.Select(i)
	}
	return nil
}

func nearestSemantic(items []list.Item, from, direction int) (int, bool) {
	for i := from + direction; i >= 0 && i < len(items); i += direction {
		if it, ok := items[i].(Item); ok && it.Semantic >= 0 {
			return i, true
		}
	}
	return 0, false
}

// New assembles a bubbles list over the delegate: materialized items, the
// bridge delegate, no help or status chrome, filtering left on so typing
// / narrows to matching children.
func New(source lace.Delegate, width, height int) list.Model {
	l := list.New(Items(source, width), NewDelegate(source), width, height)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}
