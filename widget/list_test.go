package widget

import (
	"fmt"
	"io"
	"testing"

	"github.com/loomworks/lace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ lace.Element = (*row)(nil)

type row struct {
	index    int
	height   int
	onRender func(index int)
}

func (r row) Render(w io.Writer, _ int) {
	if r.onRender != nil {
		r.onRender(r.index)
	}
	for i := 0; i < r.height; i++ {
		fmt.Fprintf(w, "%d\n", r.index)
	}
}

func (r row) Height() int {
	return r.height
}

func rows(count int) *lace.Builder {
	return lace.NewBuilder(count, func(_ lace.Context, index int) lace.Element {
		return row{index: index, height: 1}
	})
}

func TestList_View(t *testing.T) {
	tests := []struct {
		name       string
		childCount int
		cursors    []int
		want       string
	}{
		{
			name:       "fills the window",
			childCount: 5,
			want:       "0\n1\n2\n3\n4",
		},
		{
			name:       "window limited by height",
			childCount: 10,
			want:       "0\n1\n2\n3\n4",
		},
		{
			name:       "cursor inside the window leaves it alone",
			childCount: 10,
			cursors:    []int{1, 2, 3},
			want:       "0\n1\n2\n3\n4",
		},
		{
			name:       "window follows the cursor down",
			childCount: 10,
			cursors:    []int{9},
			want:       "5\n6\n7\n8\n9",
		},
		{
			name:       "window follows the cursor back up",
			childCount: 10,
			cursors:    []int{9, 0},
			want:       "0\n1\n2\n3\n4",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := New(rows(test.childCount))
			l.SetSize(20, 5)
			var view string
			view = l.View()
			for _, cursor := range test.cursors {
				l.Select(cursor)
				view = l.View()
			}
			assert.Equal(t, test.want, view)
		})
	}
}

func TestList_VariableHeightCursorVisible(t *testing.T) {
	heights := []int{2, 3, 1}
	delegate := lace.NewBuilder(len(heights), func(_ lace.Context, index int) lace.Element {
		return row{index: index, height: heights[index]}
	})
	l := New(delegate)
	l.SetSize(20, 3)

	l.Select(1)
	assert.Equal(t, "1\n1\n1", l.View())

	l.Select(0)
	assert.Equal(t, "0\n0\n1", l.View())
}

func TestList_EmptyDelegate(t *testing.T) {
	l := New(rows(0))
	l.SetSize(20, 5)

	assert.Equal(t, "", l.View())
	_, _, ok := l.SemanticPosition()
	assert.False(t, ok)

	l.CursorDown()
	l.PageDown()
	l.GotoBottom()
	assert.Equal(t, 0, l.Cursor())
}

func separated(itemCount int) *lace.Separated {
	return lace.NewSeparated(itemCount,
		func(_ lace.Context, index int) lace.Element {
			return row{index: index, height: 1}
		},
		func(_ lace.Context, index int) lace.Element {
			return row{index: -1, height: 1}
		})
}

func TestList_CursorSkipsSeparators(t *testing.T) {
	l := New(separated(3))
	l.SetSize(20, 10)

	assert.Equal(t, 0, l.Cursor())

	l.CursorDown()
	assert.Equal(t, 2, l.Cursor())
	l.CursorDown()
	assert.Equal(t, 4, l.Cursor())
	l.CursorDown()
	assert.Equal(t, 4, l.Cursor(), "cursor stays on the last item")

	l.CursorUp()
	assert.Equal(t, 2, l.Cursor())

	l.GotoBottom()
	assert.Equal(t, 4, l.Cursor())
	l.GotoTop()
	assert.Equal(t, 0, l.Cursor())
}

func TestList_CursorLandsAnywhereWithoutSemanticIndexes(t *testing.T) {
	d := separated(3)
	d.AddSemanticIndexes = false
	l := New(d)
	l.SetSize(20, 10)

	l.CursorDown()
	assert.Equal(t, 1, l.Cursor(), "separator row is selectable")

	_, _, ok := l.SemanticPosition()
	assert.False(t, ok, "separator has no semantic position")
}

func TestList_SemanticPosition(t *testing.T) {
	l := New(separated(4))
	l.SetSize(20, 10)

	index, count, ok := l.SemanticPosition()
	require.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, 4, count)

	l.CursorDown()
	l.CursorDown()
	index, count, ok = l.SemanticPosition()
	require.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, 4, count)

	plain := New(rows(3))
	plain.Select(2)
	index, count, ok = plain.SemanticPosition()
	require.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, 3, count)
}

func TestList_SelectSnapsToSelectable(t *testing.T) {
	l := New(separated(3))
	l.SetSize(20, 10)

	l.Select(1)
	assert.Equal(t, 2, l.Cursor(), "snaps forward off a separator")

	l.Select(99)
	assert.Equal(t, 4, l.Cursor(), "clamps into range")

	l.Select(-5)
	assert.Equal(t, 0, l.Cursor())
}

func TestList_PageMovement(t *testing.T) {
	l := New(rows(20))
	l.SetSize(20, 5)

	l.PageDown()
	assert.Equal(t, 5, l.Cursor())
	l.PageDown()
	assert.Equal(t, 10, l.Cursor())

	l.PageUp()
	assert.Equal(t, 5, l.Cursor())

	l.GotoBottom()
	l.PageDown()
	assert.Equal(t, 19, l.Cursor(), "paging past the end stops at the last child")
}

func TestList_RepaintCache(t *testing.T) {
	renders := make(map[int]int)
	delegate := lace.NewBuilder(3, func(_ lace.Context, index int) lace.Element {
		return row{index: index, height: 1, onRender: func(i int) { renders[i]++ }}
	})
	l := New(delegate)
	l.SetSize(20, 10)

	l.View()
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, renders)

	l.View()
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, renders, "unchanged children render from cache")

	l.CursorDown()
	l.View()
	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 1}, renders, "only the children whose highlight changed re-render")

	l.Invalidate(2)
	l.View()
	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 2}, renders)

	l.SetSize(30, 10)
	l.View()
	assert.Equal(t, map[int]int{0: 3, 1: 3, 2: 3}, renders, "width change discards the cache")

	l.InvalidateAll()
	l.View()
	assert.Equal(t, map[int]int{0: 4, 1: 4, 2: 4}, renders)
}

func TestList_RepaintCacheDisabled(t *testing.T) {
	renders := make(map[int]int)
	delegate := lace.NewBuilder(2, func(_ lace.Context, index int) lace.Element {
		return row{index: index, height: 1, onRender: func(i int) { renders[i]++ }}
	})
	delegate.AddRepaintBoundaries = false
	l := New(delegate)
	l.SetSize(20, 10)

	l.View()
	l.View()
	assert.Equal(t, map[int]int{0: 2, 1: 2}, renders)
}

func TestList_KeepAlive(t *testing.T) {
	l := New(rows(10))
	l.SetSize(20, 3)
	l.SetState(0, "starred")
	l.SetState(9, "pinned")

	l.GotoBottom()
	l.View()
	l.View()

	assert.Equal(t, "starred", l.State(0), "state survives off-screen by default")
	assert.Equal(t, "pinned", l.State(9))
}

func TestList_KeepAliveDisabled(t *testing.T) {
	delegate := rows(10)
	delegate.AddAutomaticKeepAlives = false
	l := New(delegate)
	l.SetSize(20, 3)
	l.SetState(0, "starred")
	l.SetState(9, "pinned")

	l.GotoBottom()
	// The first render still paints every child on the way down; only the
	// second renders a settled window that excludes child 0.
	l.View()
	l.View()

	assert.Nil(t, l.State(0), "off-screen state is dropped")
	assert.Equal(t, "pinned", l.State(9))
}

func TestList_SetStateNilRemoves(t *testing.T) {
	l := New(rows(3))
	l.SetState(1, "x")
	l.SetState(1, nil)
	assert.Nil(t, l.State(1))
}

func TestList_SetDelegateMigratesThroughFinder(t *testing.T) {
	l := New(rows(3))
	l.SetSize(20, 10)
	l.Select(2)
	l.SetState(1, "x")
	l.SetState(2, "y")

	next := separated(3)
	next.FindChildIndexFunc = func(previous int) (int, bool) {
		if previous < 0 || previous >= 3 {
			return 0, false
		}
		return previous * 2, true // item j sits at combined index 2j
	}
	l.SetDelegate(next)

	assert.Equal(t, 4, l.Cursor(), "cursor follows its child to the new index")
	assert.Equal(t, "x", l.State(2))
	assert.Equal(t, "y", l.State(4))
	assert.Nil(t, l.State(1))
}

func TestList_SetDelegateSeparatedToPlain(t *testing.T) {
	l := New(separated(3))
	l.SetSize(20, 10)
	l.CursorDown() // combined index 2, the second item
	l.SetState(4, "starred")

	next := rows(3)
	next.FindChildIndexFunc = func(previous int) (int, bool) {
		if previous%2 != 0 {
			return 0, false // separators have no counterpart
		}
		return previous / 2, true
	}
	l.SetDelegate(next)

	assert.Equal(t, 1, l.Cursor())
	assert.Equal(t, "starred", l.State(2))
}

func TestList_SetDelegateDefaultKeepsIndices(t *testing.T) {
	l := New(rows(10))
	l.SetSize(20, 10)
	l.Select(7)
	l.SetState(1, "x")
	l.SetState(7, "z")

	l.SetDelegate(rows(3))

	assert.Equal(t, 2, l.Cursor(), "vanished cursor child clamps into range")
	assert.Equal(t, "x", l.State(1))
	assert.Nil(t, l.State(7), "state of children beyond the new range is dropped")
}

var _ lace.Delegate = (*bareDelegate)(nil)

type bareDelegate struct {
	count int
}

func (d bareDelegate) Len() int { return d.count }

func (d bareDelegate) ElementAt(_ lace.Context, index int) lace.Element {
	return row{index: index, height: 1}
}

func TestList_SetDelegateWithoutFinder(t *testing.T) {
	l := New(rows(10))
	l.SetSize(20, 10)
	l.Select(7)
	l.SetState(7, "z")

	l.SetDelegate(bareDelegate{count: 3})

	assert.Equal(t, 2, l.Cursor())
	assert.Equal(t, "z", l.State(7), "state stays keyed by index when the delegate cannot locate children")
}
