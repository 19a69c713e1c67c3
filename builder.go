package lace

import "fmt"

var _ Delegate = (*Builder)(nil)
var _ SemanticIndexer = (*Builder)(nil)
var _ ChildFinder = (*Builder)(nil)
var _ Policy = (*Builder)(nil)

// Builder presents the children of a single build function. It is the
// plain delegate: child i is whatever the build function produces for i,
// and every child participates in the logical sequence unless the
// semantic hooks below say otherwise.
//
// The exported fields adjust behavior after construction, in the manner
// of a bubbles delegate. The zero value is not usable; construct with
// NewBuilder.
type Builder struct {
	// Build produces the element at an index. Set by NewBuilder.
	Build BuildFunc

	// Count is the number of children. Set by NewBuilder.
	Count int

	// AddAutomaticKeepAlives reports through Policy whether hosts should
	// retain per-child state while a child is out of view. Enabled by
	// default.
	AddAutomaticKeepAlives bool

	// AddRepaintBoundaries reports through Policy whether hosts may cache
	// rendered child output. Enabled by default.
	AddRepaintBoundaries bool

	// AddSemanticIndexes reports through Policy whether the semantic
	// order should drive cursor movement and position reporting. Enabled
	// by default.
	AddSemanticIndexes bool

	// SemanticIndexFunc overrides the semantic position of each child.
	// When nil every child is its own semantic index.
	SemanticIndexFunc func(index int) (int, bool)

	// SemanticCountFunc overrides the semantic child count. When nil the
	// count is Count.
	SemanticCountFunc func() int

	// FindChildIndexFunc locates children of a delegate this one
	// replaces: given a child's index under the previous delegate it
	// returns the child's index here, or ok false when the child is
	// gone. When nil children are assumed to keep their indices, clipped
	// to the new range.
	FindChildIndexFunc func(previous int) (index int, ok bool)
}

// NewBuilder returns a delegate presenting count children produced by
// build. It panics when build is nil or count is negative; both are
// programming errors in the caller, not runtime conditions.
func NewBuilder(count int, build BuildFunc) *Builder {
	if build == nil {
		panic("lace: build function is required")
	}
	if count < 0 {
		panic(fmt.Sprintf("lace: negative child count %d", count))
	}
	return &Builder{
		Build:                  build,
		Count:                  count,
		AddAutomaticKeepAlives: true,
		AddRepaintBoundaries:   true,
		AddSemanticIndexes:     true,
	}
}

// Len returns the number of children.
func (b *Builder) Len() int { return b.Count }

// ElementAt builds the child at index. The index is handed to the build
// function as is; see Delegate for the range contract.
func (b *Builder) ElementAt(ctx Context, index int) Element {
	return b.Build(ctx, index)
}

// SemanticIndex implements SemanticIndexer.
func (b *Builder) SemanticIndex(index int) (int, bool) {
	if b.SemanticIndexFunc != nil {
		return b.SemanticIndexFunc(index)
	}
	return index, true
}

// SemanticChildCount implements SemanticIndexer.
func (b *Builder) SemanticChildCount() int {
	if b.SemanticCountFunc != nil {
		return b.SemanticCountFunc()
	}
	return b.Count
}

// FindChildIndex implements ChildFinder.
func (b *Builder) FindChildIndex(previous int) (index int, ok bool) {
	if b.FindChildIndexFunc != nil {
		return b.FindChildIndexFunc(previous)
	}
	if previous < 0 || previous >= b.Count {
		return 0, false
	}
	return previous, true
}

// AutomaticKeepAlives implements Policy.
func (b *Builder) AutomaticKeepAlives() bool { return b.AddAutomaticKeepAlives }

// RepaintBoundaries implements Policy.
func (b *Builder) RepaintBoundaries() bool { return b.AddRepaintBoundaries }

// SemanticIndexes implements Policy.
func (b *Builder) SemanticIndexes() bool { return b.AddSemanticIndexes }
