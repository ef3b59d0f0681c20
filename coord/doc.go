// Package coord defines the typed coordinates and the bounds arithmetic shared
// by every stowage package.
//
// What:
//
//   - X, Y and Height are distinct integer types, so a call site cannot pass
//     a Y where an X is expected without an explicit conversion.
//   - Position addresses a column (x,y); Position3D addresses a slot (x,y,z).
//   - Bounds holds the store extents and maps positions to storage indexes.
//
// Storage order:
//
//   - Slot index of (x,y,z) is z·X·Y + y·X + x (layer-major, then row-major).
//   - Column index of (x,y) is y·X + x.
//
// Complexity:
//
//   - Every Bounds method is O(1) and allocation-free.
//
// Errors:
//
//   - ErrBadExtent: an extent is not positive.
//   - ErrTooManySlots: X·Y·Height does not fit the 32-bit slot address space.
package coord
