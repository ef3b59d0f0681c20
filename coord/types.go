package coord

import (
	"errors"
	"fmt"
)

// Sentinel errors for bounds construction.
var (
	// ErrBadExtent indicates a non-positive extent.
	ErrBadExtent = errors.New("coord: extents must be > 0")
	// ErrTooManySlots indicates X·Y·Height exceeds MaxSlots.
	ErrTooManySlots = errors.New("coord: slot count exceeds address space")
)

// MaxSlots is the largest number of slots a Bounds may describe.
// Slot indexes are stored as uint32.
const MaxSlots = 1<<32 - 1

// X is a coordinate along the first axis.
type X int

// Y is a coordinate along the second axis.
type Y int

// Height is a coordinate (or a count) along the stacking axis.
type Height int

// Position addresses a column.
type Position struct {
	X X
	Y Y
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Position3D addresses a single slot.
type Position3D struct {
	X X
	Y Y
	Z Height
}

// Column drops the height component.
func (p Position3D) Column() Position {
	return Position{X: p.X, Y: p.Y}
}

// String renders the position as "(x,y,z)".
func (p Position3D) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// At builds a column Position.
func At(x X, y Y) Position {
	return Position{X: x, Y: y}
}

// At3D builds a slot Position3D.
func At3D(x X, y Y, z Height) Position3D {
	return Position3D{X: x, Y: y, Z: z}
}
