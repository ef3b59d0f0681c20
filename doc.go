// Package stowage is an in-memory slotted spatial store: a fixed grid of
// columns, each a LIFO stack of items, with per-column height restrictions
// and live secondary indexes over the items.
//
// What is in the box?
//
//   - Typed coordinates: X, Y and Height cannot be swapped by accident
//   - Load / Unload / Move with all-or-nothing semantics (Move rolls back)
//   - Groupings: named classification functions, plain Go or expr-lang
//   - Live views over a column stack or a group bucket, never snapshots
//   - Skip-empty iteration in storage order
//   - Single-owner handles: Transfer in O(1), Clone as an explicit deep copy
//
// Under the hood, everything is organized under three subpackages:
//
//	coord/      X, Y, Height, Position, Bounds and the storage index arithmetic
//	grouping/   Func, Set, FirstRune, Constant and FromExpr (expr-lang)
//	slotstore/  Store, Restriction, ColumnView, GroupView, Iterator
//
// Quick ASCII example (one 3-high column, loaded a, b, c):
//
//	z=2 │ c │  ← Unload takes this
//	z=1 │ b │
//	z=0 │ a │
//	    └───┘
//
// A 2-D store with one item per cell is slotstore.New2D.
//
//	go get github.com/katalvlaran/stowage/slotstore
package stowage
