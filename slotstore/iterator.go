package slotstore

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/stowage/coord"
)

// Iterator walks every occupied slot once, in storage order, skipping empty
// slots. It is forward-only and single-pass; once Next has returned false it
// stays exhausted. Get a new one from Store.Iter to start again.
//
//	it := s.Iter()
//	for it.Next() {
//		use(it.Position(), it.Item())
//	}
type Iterator[T any] struct {
	st  *state[T]
	it  roaring.IntIterable
	cur uint32
	ok  bool
}

// Iter returns an iterator positioned before the first occupied slot.
// A moved-from handle yields an exhausted iterator.
func (s *Store[T]) Iter() *Iterator[T] {
	if s == nil || s.st == nil {
		return &Iterator[T]{}
	}
	return &Iterator[T]{st: s.st, it: s.st.occupied.Iterator()}
}

// Next advances to the next occupied slot and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.it == nil || !it.it.HasNext() {
		it.it, it.ok = nil, false
		return false
	}
	it.cur, it.ok = it.it.Next(), true

	return true
}

// Item returns the current item. It is the zero value before the first
// Next or after exhaustion.
func (it *Iterator[T]) Item() T {
	if !it.ok {
		var zero T
		return zero
	}
	return it.st.slots[it.cur].item
}

// Position returns the slot of the current item.
func (it *Iterator[T]) Position() coord.Position3D {
	if !it.ok {
		return coord.Position3D{}
	}
	return it.st.bounds.Decode(int(it.cur))
}

// All yields every (position, item) pair in storage order.
func (s *Store[T]) All() iter.Seq2[coord.Position3D, T] {
	return func(yield func(coord.Position3D, T) bool) {
		if s == nil || s.st == nil {
			return
		}
		st := s.st
		st.occupied.Iterate(func(idx uint32) bool {
			return yield(st.bounds.Decode(int(idx)), st.slots[idx].item)
		})
	}
}

// Items yields every item in storage order.
func (s *Store[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.All() {
			if !yield(item) {
				return
			}
		}
	}
}
