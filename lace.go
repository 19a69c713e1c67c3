// Package lace builds terminal list content lazily. A delegate presents a
// sequence of renderable elements to a host view without materializing
// them: the host asks for a count and for the element at an index, and the
// delegate produces each element on demand from a build function.
//
// The package ships two delegates. Builder presents the children of a
// single build function. Separated interleaves separator elements between
// items, presenting items and separators as one combined sequence while
// keeping the two build functions in their own index spaces.
//
// Delegates are plain values with no state of their own; calling a method
// twice with the same arguments yields the same result. Anything stateful,
// such as the cursor, caching or retained per-child state, belongs to the
// host. Hosts discover optional delegate capabilities with type
// assertions, in the manner of the io package.
package lace

import "io"

// Context carries the host's view state into a build function. Cursor is
// the cursor position translated into the receiving producer's own index
// space, or -1 when the cursor rests outside it. Focused reports whether
// the hosting view has focus.
type Context struct {
	Cursor  int
	Focused bool
}

// Element is one renderable child of a list. Render writes the element's
// content to w at the given width as exactly Height() newline-terminated
// lines. Hosts rely on that line count for windowing; an element that
// writes more or fewer lines corrupts the window arithmetic.
type Element interface {
	Render(w io.Writer, width int)
	Height() int
}

// BuildFunc produces the element at an index. It is called only for
// indices the host is about to place, never for the whole sequence, so a
// list may be far larger than what is ever built. A BuildFunc must not
// retain ctx past the call.
type BuildFunc func(ctx Context, index int) Element

// Delegate presents a sequence of elements to a host view.
//
// ElementAt expects index in [0, Len()); keeping it there is the host's
// job, and delegates do not guard against indices outside the range.
type Delegate interface {
	Len() int
	ElementAt(ctx Context, index int) Element
}

// SemanticIndexer is implemented by delegates whose children do not all
// participate in the logical sequence, such as lists with decoration
// interleaved between items.
//
// SemanticIndex maps a child index to the child's position in the logical
// sequence; ok is false for children that are decoration. Hosts use the
// mapping to step the cursor over decoration and to announce positions as
// "item k of n". SemanticChildCount reports the length of the logical
// sequence.
type SemanticIndexer interface {
	SemanticIndex(index int) (int, bool)
	SemanticChildCount() int
}

// ChildFinder is implemented by delegates that can locate children of a
// delegate they replace. FindChildIndex reports the index at which the
// child presented at previous by the replaced delegate appears in this
// delegate; ok is false when this delegate no longer presents that child.
// Hosts use the mapping to carry the cursor and retained per-child state
// across a delegate swap.
type ChildFinder interface {
	FindChildIndex(previous int) (index int, ok bool)
}

// Policy exposes a delegate's preferences for host-side bookkeeping.
// Hosts treat delegates that do not implement Policy as answering true
// throughout.
//
// AutomaticKeepAlives reports whether retained per-child state should
// survive while a child is out of view. RepaintBoundaries reports whether
// rendered child output may be cached and reused. SemanticIndexes reports
// whether the semantic order should drive cursor movement and position
// reporting.
type Policy interface {
	AutomaticKeepAlives() bool
	RepaintBoundaries() bool
	SemanticIndexes() bool
}
