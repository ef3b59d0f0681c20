package coord

// Bounds holds the extents of a store: X columns wide, Y rows deep and
// Height slots tall. It is immutable once built.
type Bounds struct {
	x X
	y Y
	h Height
}

// NewBounds validates the extents and returns Bounds.
// Returns ErrBadExtent if any extent is ≤ 0 and ErrTooManySlots if the
// product exceeds MaxSlots.
// Complexity: O(1).
func NewBounds(x X, y Y, h Height) (Bounds, error) {
	if x <= 0 || y <= 0 || h <= 0 {
		return Bounds{}, ErrBadExtent
	}
	// Divide instead of multiplying so huge extents cannot wrap around.
	if uint64(x) > MaxSlots/uint64(y) || uint64(x)*uint64(y) > MaxSlots/uint64(h) {
		return Bounds{}, ErrTooManySlots
	}

	return Bounds{x: x, y: y, h: h}, nil
}

// XSize returns the extent along X.
func (b Bounds) XSize() X { return b.x }

// YSize returns the extent along Y.
func (b Bounds) YSize() Y { return b.y }

// HeightSize returns the maximum stack height of every column.
func (b Bounds) HeightSize() Height { return b.h }

// Columns returns X·Y.
func (b Bounds) Columns() int { return int(b.x) * int(b.y) }

// Slots returns X·Y·Height.
func (b Bounds) Slots() int { return b.Columns() * int(b.h) }

// ContainsColumn reports whether (x,y) lies within the bounds.
// Complexity: O(1).
func (b Bounds) ContainsColumn(x X, y Y) bool {
	return x >= 0 && x < b.x && y >= 0 && y < b.y
}

// Contains reports whether (x,y,z) lies within the bounds.
// Complexity: O(1).
func (b Bounds) Contains(x X, y Y, z Height) bool {
	return b.ContainsColumn(x, y) && z >= 0 && z < b.h
}

// ColumnIndex maps (x,y) to a row-major index: y·X + x.
// The caller must check ContainsColumn first.
func (b Bounds) ColumnIndex(x X, y Y) int {
	return int(y)*int(b.x) + int(x)
}

// SlotIndex maps (x,y,z) to its storage index: z·X·Y + y·X + x.
// The caller must check Contains first.
func (b Bounds) SlotIndex(x X, y Y, z Height) int {
	return int(z)*b.Columns() + b.ColumnIndex(x, y)
}

// Decode converts a storage index back to its slot position.
// Complexity: O(1).
func (b Bounds) Decode(idx int) Position3D {
	cols := b.Columns()
	z, rem := idx/cols, idx%cols

	return Position3D{X: X(rem % int(b.x)), Y: Y(rem / int(b.x)), Z: Height(z)}
}

// DecodeColumn converts a column index back to (x,y).
func (b Bounds) DecodeColumn(idx int) Position {
	return Position{X: X(idx % int(b.x)), Y: Y(idx / int(b.x))}
}
