// File: view.go
// Role: live, non-owning, read-only views into column stacks and group buckets.
// Liveness:
//   - A view holds the store's internal state plus the coordinate or bucket
//     it looks at. Nothing is copied, so later loads and unloads are
//     observed without asking for the view again.
//   - Views stay valid across Transfer; they are not invalidated by growth.
// Caveat:
//   - Mutating the store while ranging over a view is undefined.

package slotstore

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/stowage/coord"
)

// ColumnView is a live view of one column, iterated from the most recently
// loaded item down to the bottom of the stack.
type ColumnView[T any] struct {
	st  *state[T] // nil for an out-of-bounds column
	at  coord.Position
	col int
}

// ViewByColumn returns a live view of column (x,y). An out-of-bounds
// coordinate, or a moved-from handle, yields a permanently empty view.
// Complexity: O(1).
func (s *Store[T]) ViewByColumn(x coord.X, y coord.Y) ColumnView[T] {
	v := ColumnView[T]{at: coord.At(x, y)}
	if s == nil || s.st == nil || !s.st.bounds.ContainsColumn(x, y) {
		return v
	}
	v.st = s.st
	v.col = s.st.bounds.ColumnIndex(x, y)

	return v
}

// Position returns the column the view looks at.
func (v ColumnView[T]) Position() coord.Position { return v.at }

// Len returns the current stack height.
func (v ColumnView[T]) Len() int {
	if v.st == nil {
		return 0
	}
	return int(v.st.heights[v.col])
}

// Empty reports whether the column currently holds nothing.
func (v ColumnView[T]) Empty() bool { return v.Len() == 0 }

// All yields (position, item) pairs from top to bottom.
func (v ColumnView[T]) All() iter.Seq2[coord.Position3D, T] {
	return func(yield func(coord.Position3D, T) bool) {
		if v.st == nil {
			return
		}
		for z := v.st.heights[v.col] - 1; z >= 0; z-- {
			item := v.st.slots[v.st.bounds.SlotIndex(v.at.X, v.at.Y, z)].item
			if !yield(coord.At3D(v.at.X, v.at.Y, z), item) {
				return
			}
		}
	}
}

// Items yields the items from top to bottom.
func (v ColumnView[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// GroupView is a live view of one group bucket: the items whose grouping
// function currently yields the view's key. Items come in storage order.
type GroupView[T any] struct {
	st     *state[T]
	bucket *roaring.Bitmap // nil for an unknown grouping
	name   string
	key    string
}

// ViewByGroup returns a live view of the items for which grouping name
// yields key. It never fails: an unknown name gives a permanently empty
// view, and an unseen key of a known grouping creates an empty bucket that
// later loads fill.
// Complexity: O(1) amortised.
func (s *Store[T]) ViewByGroup(name, key string) GroupView[T] {
	v := GroupView[T]{name: name, key: key}
	if s == nil || s.st == nil {
		return v
	}
	v.st = s.st
	v.bucket = s.st.groups.bucket(name, key)

	return v
}

// Grouping returns the grouping name the view was requested for.
func (v GroupView[T]) Grouping() string { return v.name }

// Key returns the key the view was requested for.
func (v GroupView[T]) Key() string { return v.key }

// Len returns the number of items currently in the bucket.
func (v GroupView[T]) Len() int {
	if v.bucket == nil {
		return 0
	}
	return int(v.bucket.GetCardinality())
}

// Empty reports whether the bucket currently holds nothing.
func (v GroupView[T]) Empty() bool { return v.Len() == 0 }

// Contains reports whether the bucket holds the slot at p.
func (v GroupView[T]) Contains(p coord.Position3D) bool {
	if v.bucket == nil || !v.st.bounds.Contains(p.X, p.Y, p.Z) {
		return false
	}
	return v.bucket.Contains(uint32(v.st.bounds.SlotIndex(p.X, p.Y, p.Z)))
}

// All yields (position, item) pairs in storage order.
func (v GroupView[T]) All() iter.Seq2[coord.Position3D, T] {
	return func(yield func(coord.Position3D, T) bool) {
		if v.bucket == nil {
			return
		}
		v.bucket.Iterate(func(idx uint32) bool {
			return yield(v.st.bounds.Decode(int(idx)), v.st.slots[idx].item)
		})
	}
}

// Items yields the items in storage order.
func (v GroupView[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.All() {
			if !yield(item) {
				return
			}
		}
	}
}
