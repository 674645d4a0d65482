package stream

import (
	"cmp"
	"slices"

	"github.com/wippyai/histream/tag"
)

// MaxAttributeTags is the number of distinct attribute tags one stream can
// hold; an interned index is a single byte.
const MaxAttributeTags = 256

type internEntry struct {
	tag   tag.Tag
	index uint8
}

// interner assigns stream-local indices to attribute tags in first-use
// order. Lookups binary-search a sorted copy of the table.
type interner struct {
	sorted []internEntry
	order  []tag.Tag
}

func (in *interner) lookup(t tag.Tag) (int, bool) {
	return slices.BinarySearchFunc(in.sorted, t, func(e internEntry, t tag.Tag) int {
		return cmp.Compare(e.tag, t)
	})
}

// intern returns the index of t, assigning the next free one on first use.
// It reports false when the table is full.
func (in *interner) intern(t tag.Tag) (uint8, bool) {
	pos, found := in.lookup(t)
	if found {
		return in.sorted[pos].index, true
	}
	if len(in.order) >= MaxAttributeTags {
		return 0, false
	}
	idx := uint8(len(in.order))
	in.order = append(in.order, t)
	in.sorted = slices.Insert(in.sorted, pos, internEntry{tag: t, index: idx})
	return idx, true
}

// tags returns the remap table: tags indexed by interned index.
func (in *interner) tags() []tag.Tag {
	return in.order
}

func (in *interner) len() int { return len(in.order) }

func (in *interner) reset() {
	in.sorted = in.sorted[:0]
	in.order = in.order[:0]
}
