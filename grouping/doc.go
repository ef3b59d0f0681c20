// Package grouping defines the classification functions that drive the
// secondary indexes of a slotstore.Store.
//
// A grouping function maps an item to a string key. Functions are registered
// by name in a Set, and the set is fixed for the lifetime of the store.
//
// Purity:
//
//   - The store recomputes the key on removal to find the bucket to erase
//     from, so a function must return the same key for the same item every
//     time. This is a caller contract; it is not checked at runtime.
//
// Sources:
//
//   - Plain Go functions (Func).
//   - Helpers: FirstRune (case-preserving), FirstRuneUpper, Constant.
//   - expr-lang expressions compiled once by FromExpr, evaluated with the
//     item bound to the variable "item".
package grouping
