package lace

import "fmt"

var _ Delegate = (*Separated)(nil)
var _ SemanticIndexer = (*Separated)(nil)
var _ ChildFinder = (*Separated)(nil)
var _ Policy = (*Separated)(nil)

// Separated interleaves separator elements between items while exposing the
// combined sequence through the same contract plain lists use. Even combined
// indices are items, odd combined indices are separators, and both logical
// indices fall out of halving the combined index, so the whole delegate is a
// parity check in front of two build functions.
//
// Separated embeds the plain Builder it constructs internally; the Add*
// flags and FindChildIndexFunc set on it reach hosts unchanged. Count and
// the semantic mapping belong to the delegate and must not be reassigned.
type Separated struct {
	*Builder

	item      BuildFunc
	separator BuildFunc
	itemCount int
}

// NewSeparated returns a delegate presenting itemCount items with a separator
// between each adjacent pair: item 0, separator 0, item 1, ... separator n-2,
// item n-1. The item builder is called with indices in [0, itemCount), the
// separator builder with indices in [0, itemCount-1). Zero items yield an
// empty list and one item yields itself, with no separator built in either
// case.
//
// NewSeparated panics when either builder is nil or itemCount is negative.
func NewSeparated(itemCount int, item, separator BuildFunc) *Separated {
	if item == nil {
		panic("lace: item builder is required")
	}
	if separator == nil {
		panic("lace: separator builder is required")
	}
	if itemCount < 0 {
		panic(fmt.Sprintf("lace: negative item count %d", itemCount))
	}
	s := &Separated{
		item:      item,
		separator: separator,
		itemCount: itemCount,
	}
	s.Builder = NewBuilder(combinedCount(itemCount), s.build)
	s.Builder.SemanticIndexFunc = itemOnlyIndex
	s.Builder.SemanticCountFunc = func() int { return s.itemCount }
	return s
}

// ItemCount returns the number of items, not counting separators.
func (s *Separated) ItemCount() int { return s.itemCount }

// build routes a combined index to one of the two producers. The context
// cursor is translated into the producer's own index space; the producer of
// the other parity sees -1.
func (s *Separated) build(ctx Context, index int) Element {
	if index%2 == 0 {
		return s.item(logicalContext(ctx, 0), index/2)
	}
	return s.separator(logicalContext(ctx, 1), index/2)
}

// combinedCount is the items plus the separators between them: 2n-1 for n
// items, floored at zero so an empty list stays empty.
func combinedCount(itemCount int) int {
	return max(0, itemCount*2-1)
}

// itemOnlyIndex keeps separators out of the semantic order: the child at an
// even combined index is item index/2, odd children have no semantic index.
func itemOnlyIndex(index int) (int, bool) {
	if index%2 != 0 {
		return 0, false
	}
	return index / 2, true
}

// logicalContext rewrites a combined-space cursor into the index space of
// the producer with the given parity.
func logicalContext(ctx Context, parity int) Context {
	if ctx.Cursor >= 0 && ctx.Cursor%2 == parity {
		ctx.Cursor /= 2
	} else {
		ctx.Cursor = -1
	}
	return ctx
}
