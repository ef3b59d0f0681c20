package slotstore

import (
	"slices"

	"github.com/katalvlaran/stowage/coord"
)

// Restriction caps the stack height of column (X,Y) at Height.
// Height 0 makes the column permanently unusable.
type Restriction struct {
	X      coord.X
	Y      coord.Y
	Height coord.Height
}

// Position returns the restricted column.
func (r Restriction) Position() coord.Position {
	return coord.At(r.X, r.Y)
}

// restrictionTable is the read-only per-column limit lookup built once by New.
type restrictionTable struct {
	limits map[coord.Position]coord.Height
}

// newRestrictionTable validates rs against b.
// Out-of-bounds checks run before the duplicate check so that a bad column
// is reported as invalid even when it repeats.
// A restricted height must lie in [0, HeightSize).
// Complexity: O(len(rs)).
func newRestrictionTable(b coord.Bounds, rs []Restriction) (restrictionTable, error) {
	t := restrictionTable{limits: make(map[coord.Position]coord.Height, len(rs))}
	for _, r := range rs {
		pos := r.Position()
		if !b.ContainsColumn(r.X, r.Y) || r.Height < 0 || r.Height >= b.HeightSize() {
			return restrictionTable{}, opError(OpNew, pos, ErrInvalidRestriction)
		}
		if _, dup := t.limits[pos]; dup {
			return restrictionTable{}, opError(OpNew, pos, ErrDuplicateRestriction)
		}
		t.limits[pos] = r.Height
	}

	return t, nil
}

// limit returns the restriction for (x,y), if any.
func (t restrictionTable) limit(x coord.X, y coord.Y) (coord.Height, bool) {
	h, ok := t.limits[coord.At(x, y)]
	return h, ok
}

func (t restrictionTable) len() int { return len(t.limits) }

// all returns the restrictions sorted by (y, x).
func (t restrictionTable) all() []Restriction {
	out := make([]Restriction, 0, len(t.limits))
	for pos, h := range t.limits {
		out = append(out, Restriction{X: pos.X, Y: pos.Y, Height: h})
	}
	slices.SortFunc(out, func(a, b Restriction) int {
		if a.Y != b.Y {
			return int(a.Y - b.Y)
		}
		return int(a.X - b.X)
	})

	return out
}

// clone copies the table; the source stays untouched.
func (t restrictionTable) clone() restrictionTable {
	out := restrictionTable{limits: make(map[coord.Position]coord.Height, len(t.limits))}
	for pos, h := range t.limits {
		out.limits[pos] = h
	}

	return out
}
