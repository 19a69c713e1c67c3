// Package widget provides a windowed terminal list view driven by a
// lace.Delegate. The view renders only the children overlapping the
// visible line range, keeps the cursor visible by sliding that range, and
// consults the delegate's optional capabilities for navigation, caching
// and state retention. It is a plain view component; programs embed it in
// their own update loop and feed it key events however they like.
package widget

import (
	"bytes"
	"io"
	"strings"

	"github.com/loomworks/lace"
)

// lineBuffer accumulates rendered child output and tracks line positions,
// counting lines skipped above the visible range without materializing
// them.
type lineBuffer struct {
	buf     bytes.Buffer
	lines   int
	skipped int
}

func (b *lineBuffer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.lines += bytes.Count(p, []byte("\n"))
	return b.buf.Write(p)
}

func (b *lineBuffer) reset() {
	b.buf.Reset()
	b.lines = 0
	b.skipped = 0
}

// total is the line position of the write head in list coordinates,
// including the skipped region.
func (b *lineBuffer) total() int {
	return b.lines + b.skipped
}

// slice returns the buffered lines between start and end in list
// coordinates, padded with empty lines when the buffer ends early.
func (b *lineBuffer) slice(start, end int) string {
	start -= b.skipped
	end -= b.skipped
	lines := strings.Split(b.buf.String(), "\n")
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	for end > len(lines) {
		lines = append(lines, "")
	}
	return strings.Join(lines[start:end], "\n")
}

// cacheEntry records one child's rendered output together with the
// conditions it was rendered under. An entry is reused only while those
// conditions hold; a child whose highlight, focus or width changed misses
// and re-renders.
type cacheEntry struct {
	width       int
	highlighted bool
	focused     bool
	content     string
	height      int
}

// List is a cursor-driven window over the children of a delegate.
//
// Movement lands only on children that carry a semantic index when the
// delegate opts into semantic indexing, so interleaved decoration such as
// separators is stepped over rather than selected. Rendered output is
// cached per child while the delegate allows repaint boundaries; the cache
// assumes a child's output depends on the context only through its own
// highlight state, so delegates whose children render differently for
// every cursor position should disable boundaries.
type List struct {
	delegate lace.Delegate

	width   int
	height  int
	cursor  int
	focused bool

	// visible line range, adjusted during View to keep the cursor inside
	start int
	end   int

	// child index range rendered by the last View
	firstVisible int
	lastVisible  int

	out    lineBuffer
	cache  map[int]cacheEntry
	states map[int]any
}

// New returns a list over the given delegate. The list has no size until
// SetSize is called; View renders nothing in the meantime.
func New(delegate lace.Delegate) *List {
	l := &List{
		delegate:     delegate,
		firstVisible: -1,
		lastVisible:  -1,
		cache:        make(map[int]cacheEntry),
		states:       make(map[int]any),
	}
	l.Select(0)
	return l
}

// SetSize sets the view dimensions in cells. Changing the width discards
// cached child output.
func (l *List) SetSize(width, height int) {
	if width != l.width {
		clear(l.cache)
	}
	l.width = width
	l.height = height
}

func (l *List) Width() int  { return l.width }
func (l *List) Height() int { return l.height }

// Delegate returns the delegate currently backing the list.
func (l *List) Delegate() lace.Delegate { return l.delegate }

// Len returns the number of children the delegate presents.
func (l *List) Len() int { return l.delegate.Len() }

// Cursor returns the index of the child under the cursor.
func (l *List) Cursor() int { return l.cursor }

// Focus marks the list focused; the flag reaches build functions through
// the context.
func (l *List) Focus() { l.focused = true }

// Blur removes focus.
func (l *List) Blur() { l.focused = false }

func (l *List) Focused() bool { return l.focused }

// SetDelegate replaces the delegate backing the list.
//
// When the new delegate can locate children of its predecessor, the
// cursor follows the child it was on and retained child state moves to
// each child's new index; state whose child the new delegate no longer
// presents is dropped. Without that capability state stays keyed by
// index and the cursor is clamped into the new range.
func (l *List) SetDelegate(delegate lace.Delegate) {
	previousCursor := l.cursor
	previousStates := l.states
	l.delegate = delegate
	clear(l.cache)
	l.firstVisible, l.lastVisible = -1, -1

	finder, ok := delegate.(lace.ChildFinder)
	if !ok {
		l.Select(previousCursor)
		return
	}

	l.states = make(map[int]any)
	for previous, state := range previousStates {
		if index, found := finder.FindChildIndex(previous); found {
			l.states[index] = state
		}
	}
	if index, found := finder.FindChildIndex(previousCursor); found {
		l.Select(index)
		return
	}
	l.Select(previousCursor)
}

// State returns the retained state for the child at index, or nil.
func (l *List) State(index int) any {
	return l.states[index]
}

// SetState retains state for the child at index. Passing nil removes the
// entry. How long off-screen state survives is up to the delegate's
// keep-alive policy; see View.
func (l *List) SetState(index int, state any) {
	if state == nil {
		delete(l.states, index)
		return
	}
	l.states[index] = state
}

// Invalidate discards the cached output of the child at index.
func (l *List) Invalidate(index int) {
	delete(l.cache, index)
}

// InvalidateAll discards all cached child output.
func (l *List) InvalidateAll() {
	clear(l.cache)
}

// Select moves the cursor to index, clamped into range. When the target
// is not selectable the cursor snaps to the nearest selectable child,
// scanning forward first.
func (l *List) Select(index int) {
	n := l.delegate.Len()
	if n == 0 {
		l.cursor = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	if l.selectable(index) {
		l.cursor = index
		return
	}
	for i := index + 1; i < n; i++ {
		if l.selectable(i) {
			l.cursor = i
			return
		}
	}
	for i := index - 1; i >= 0; i-- {
		if l.selectable(i) {
			l.cursor = i
			return
		}
	}
	l.cursor = index
}

// CursorUp moves the cursor to the previous selectable child.
func (l *List) CursorUp() { l.step(-1) }

// CursorDown moves the cursor to the next selectable child.
func (l *List) CursorDown() { l.step(1) }

// GotoTop moves the cursor to the first selectable child.
func (l *List) GotoTop() { l.Select(0) }

// GotoBottom moves the cursor to the last selectable child.
func (l *List) GotoBottom() { l.Select(l.delegate.Len() - 1) }

// PageUp moves the cursor up by one view height worth of children.
func (l *List) PageUp() { l.page(-1) }

// PageDown moves the cursor down by one view height worth of children.
func (l *List) PageDown() { l.page(1) }

func (l *List) step(direction int) {
	n := l.delegate.Len()
	for i := l.cursor + direction; i >= 0 && i < n; i += direction {
		if l.selectable(i) {
			l.cursor = i
			return
		}
	}
}

func (l *List) page(direction int) {
	n := l.delegate.Len()
	if n == 0 {
		return
	}
	budget := l.height
	target := l.cursor
	for i := l.cursor + direction; i >= 0 && i < n && budget > 0; i += direction {
		budget -= l.childHeight(i)
		if l.selectable(i) {
			target = i
		}
	}
	if target == l.cursor {
		// Nothing selectable within a page; take a single step so large
		// children cannot pin the cursor.
		l.step(direction)
		return
	}
	l.cursor = target
}

// SemanticPosition reports the cursor position in the delegate's semantic
// order: the cursor's semantic index and the semantic child count. ok is
// false when the list is empty or the cursor rests on a child with no
// semantic index. Delegates without a semantic order report the plain
// index and length.
func (l *List) SemanticPosition() (index, count int, ok bool) {
	indexer, isIndexer := l.delegate.(lace.SemanticIndexer)
	if !isIndexer {
		if l.delegate.Len() == 0 {
			return 0, 0, false
		}
		return l.cursor, l.delegate.Len(), true
	}
	count = indexer.SemanticChildCount()
	if l.delegate.Len() == 0 {
		return 0, count, false
	}
	index, ok = indexer.SemanticIndex(l.cursor)
	return index, count, ok
}

// View renders the visible window. The line range slides only as far as
// needed to keep the cursor's child fully visible, in the manner of a
// terminal pager. When the delegate disables automatic keep-alives,
// retained state of children outside the rendered window is dropped on
// the way out.
func (l *List) View() string {
	n := l.delegate.Len()
	if n == 0 || l.height <= 0 {
		l.firstVisible, l.lastVisible = -1, -1
		return ""
	}

	l.out.reset()
	if l.end-l.start != l.height {
		l.end = l.start + l.height
	}

	cursorLineStart := -1
	cursorLineEnd := -1
	first, last := -1, -1
	for i := 0; i < n; i++ {
		highlighted := i == l.cursor
		if highlighted {
			cursorLineStart = l.out.total()
			if cursorLineStart < l.start {
				l.start = cursorLineStart
			}
		} else if h := l.childHeight(i); h+l.out.total() < l.start {
			l.out.skipped += h
			continue
		}
		l.renderChild(i)
		if first == -1 {
			first = i
		}
		last = i
		if highlighted {
			cursorLineEnd = l.out.total()
		}
		if cursorLineEnd >= 0 && l.out.total() > l.end {
			break
		}
	}

	if cursorLineStart >= 0 && cursorLineStart <= l.start {
		l.start = cursorLineStart
		l.end = cursorLineStart + l.height
	} else if cursorLineEnd > l.end {
		l.end = cursorLineEnd
		l.start = cursorLineEnd - l.height
	}

	l.firstVisible, l.lastVisible = first, last
	if !l.automaticKeepAlives() {
		l.pruneStates(first, last)
	}
	return l.out.slice(l.start, l.end)
}

// VisibleRange returns the child index range rendered by the last View,
// (-1, -1) before the first render.
func (l *List) VisibleRange() (first, last int) {
	return l.firstVisible, l.lastVisible
}

func (l *List) renderChild(index int) {
	highlighted := index == l.cursor
	boundaries := l.repaintBoundaries()
	if boundaries {
		if e, ok := l.cache[index]; ok &&
			e.width == l.width && e.highlighted == highlighted && e.focused == l.focused {
			io.WriteString(&l.out, e.content)
			return
		}
	}
	element := l.delegate.ElementAt(l.context(), index)
	var rendered bytes.Buffer
	element.Render(&rendered, l.width)
	content := rendered.String()
	if boundaries {
		l.cache[index] = cacheEntry{
			width:       l.width,
			highlighted: highlighted,
			focused:     l.focused,
			content:     content,
			height:      element.Height(),
		}
	}
	io.WriteString(&l.out, content)
}

func (l *List) childHeight(index int) int {
	return l.delegate.ElementAt(l.context(), index).Height()
}

func (l *List) context() lace.Context {
	return lace.Context{Cursor: l.cursor, Focused: l.focused}
}

func (l *List) selectable(index int) bool {
	if p, ok := l.delegate.(lace.Policy); ok && !p.SemanticIndexes() {
		return true
	}
	indexer, ok := l.delegate.(lace.SemanticIndexer)
	if !ok {
		return true
	}
	_, ok = indexer.SemanticIndex(index)
	return ok
}

func (l *List) automaticKeepAlives() bool {
	if p, ok := l.delegate.(lace.Policy); ok {
		return p.AutomaticKeepAlives()
	}
	return true
}

func (l *List) repaintBoundaries() bool {
	if p, ok := l.delegate.(lace.Policy); ok {
		return p.RepaintBoundaries()
	}
	return true
}

func (l *List) pruneStates(first, last int) {
	for index := range l.states {
		if index < first || index > last {
			delete(l.states, index)
		}
	}
}
