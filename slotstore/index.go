package slotstore

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/stowage/grouping"
)

// groupIndex keeps, per grouping name, a bucket of slot indexes per key.
// Buckets hold slot indexes, never items: a view resolves items from the
// primary slots, so nothing is copied.
//
// Buckets are memoised with no eviction. The first request for a key of a
// known grouping creates its bucket and the bucket lives as long as the
// store, even once it is empty again. That is what keeps a view obtained
// before any matching load valid afterwards.
type groupIndex[T any] struct {
	funcs  grouping.Set[T]
	names  []string // sorted; fixes evaluation order
	groups map[string]map[string]*roaring.Bitmap
}

func newGroupIndex[T any](set grouping.Set[T]) *groupIndex[T] {
	gi := &groupIndex[T]{
		funcs:  set,
		names:  set.Names(),
		groups: make(map[string]map[string]*roaring.Bitmap, len(set)),
	}
	for _, name := range gi.names {
		gi.groups[name] = make(map[string]*roaring.Bitmap)
	}

	return gi
}

// bucket is the get-or-create accessor. It returns nil for an unknown
// grouping name; unknown names never get buckets.
func (gi *groupIndex[T]) bucket(name, key string) *roaring.Bitmap {
	byKey, ok := gi.groups[name]
	if !ok {
		return nil
	}
	bm, ok := byKey[key]
	if !ok {
		bm = roaring.New()
		byKey[key] = bm
	}

	return bm
}

// insert adds slot idx holding item to one bucket per grouping and returns
// the names of groupings that classified it under grouping.ErrorKey.
// Complexity: O(k) grouping evaluations.
func (gi *groupIndex[T]) insert(idx uint32, item T) (failed []string) {
	for _, name := range gi.names {
		key := gi.funcs[name](item)
		if key == grouping.ErrorKey {
			failed = append(failed, name)
		}
		gi.bucket(name, key).Add(idx)
	}

	return failed
}

// remove erases slot idx from the bucket its recomputed key selects.
func (gi *groupIndex[T]) remove(idx uint32, item T) {
	for _, name := range gi.names {
		if bm, ok := gi.groups[name][gi.funcs[name](item)]; ok {
			bm.Remove(idx)
		}
	}
}

// keys lists, in ascending order, the keys of name that currently have a bucket.
func (gi *groupIndex[T]) keys(name string) []string {
	byKey := gi.groups[name]
	out := make([]string, 0, len(byKey))
	for key := range byKey {
		out = append(out, key)
	}
	slices.Sort(out)

	return out
}
