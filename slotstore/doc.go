// Package slotstore implements a fixed-capacity slotted spatial store: an
// X×Y grid of columns, each a stack of at most Height items, with optional
// per-column restrictions and live secondary indexes ("groups").
//
// What:
//
//   - Load / Unload / Move: LIFO per column; every mutation updates the
//     primary slots, the column height, the occupancy set and each group
//     index in one step. A failed call changes nothing; Move checks both
//     columns before touching either.
//   - Restrictions: a per-column cap fixed at construction (0 is legal).
//   - Groups: for each named grouping.Func, key → bucket of slots, kept in
//     sync on every Load and Unload and created lazily on first request.
//   - Views: ColumnView and GroupView are live and non-owning; they read
//     through to the store and are never snapshots.
//   - Iteration: Iter / All walk occupied slots only, in storage order.
//   - Ownership: a Store has one owner. Transfer relocates it in O(1)
//     without invalidating views; Clone deep-copies and rebuilds indexes.
//
// The 2-D single-slot-per-cell form is New2D: height fixed at 1.
//
// Concurrency:
//
//   - None. The store is single-owner and synchronous; callers serialise
//     access themselves.
//
// Complexity:
//
//   - Load, Unload, Move: O(k) for k groupings.
//   - ViewByColumn: O(1); ViewByGroup: O(1) amortised.
//   - Full iteration: O(n) in the number of items, not of slots.
//
// Errors:
//
//   - ErrOutOfBounds, ErrColumnFull (ErrOccupiedSlot), ErrRestrictedCapacity,
//     ErrEmptyColumn at operation time, wrapped in *OpError with coordinates.
//   - ErrInvalidDimensions, ErrInvalidRestriction, ErrDuplicateRestriction,
//     ErrInvalidGrouping, ErrOptionType from New.
//   - ErrMovedFrom on a handle after Transfer.
package slotstore
