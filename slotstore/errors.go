// Package slotstore: sentinel error set.
// Every rejected operation returns an *OpError whose Err is one of these
// sentinels; callers match the kind with errors.Is.

package slotstore

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stowage/coord"
)

var (
	// ErrOutOfBounds indicates a coordinate outside the configured extents.
	ErrOutOfBounds = errors.New("slotstore: coordinate out of bounds")

	// ErrColumnFull indicates the column already holds HeightSize items.
	ErrColumnFull = errors.New("slotstore: column full")

	// ErrOccupiedSlot is ErrColumnFull under the name used for
	// single-height stores, where a full column is an occupied slot.
	ErrOccupiedSlot = ErrColumnFull

	// ErrRestrictedCapacity indicates the column reached its restriction.
	// It wraps ErrColumnFull: a restricted column is a full column.
	ErrRestrictedCapacity = fmt.Errorf("%w: restricted capacity reached", ErrColumnFull)

	// ErrEmptyColumn indicates an unload from a column with no items.
	ErrEmptyColumn = errors.New("slotstore: column is empty")

	// ErrDuplicateRestriction indicates two restrictions for the same column.
	ErrDuplicateRestriction = errors.New("slotstore: duplicate restriction")

	// ErrInvalidRestriction indicates a restriction outside the store bounds.
	ErrInvalidRestriction = errors.New("slotstore: invalid restriction")

	// ErrInvalidDimensions indicates non-positive or oversized extents.
	ErrInvalidDimensions = errors.New("slotstore: invalid dimensions")

	// ErrInvalidGrouping indicates a grouping set that fails validation.
	ErrInvalidGrouping = errors.New("slotstore: invalid grouping")

	// ErrOptionType indicates a typed option built for another item type.
	ErrOptionType = errors.New("slotstore: option item type mismatch")

	// ErrMovedFrom indicates use of a handle whose ownership was transferred.
	ErrMovedFrom = errors.New("slotstore: store handle was moved")
)

// Operation names carried by OpError.
const (
	OpNew      = "new"
	OpLoad     = "load"
	OpUnload   = "unload"
	OpMove     = "move"
	OpQuery    = "query"
	OpTransfer = "transfer"
	OpClone    = "clone"
)

// OpError reports a rejected operation together with the coordinates it
// was rejected at. For OpMove, From is the source column and To the
// destination. OpTransfer and OpClone act on the whole store and carry no
// coordinates; for every other operation From == To.
type OpError struct {
	Op   string
	From coord.Position
	To   coord.Position
	Err  error
}

func (e *OpError) Error() string {
	switch e.Op {
	case OpMove:
		return fmt.Sprintf("%s %v->%v: %v", e.Op, e.From, e.To, e.Err)
	case OpTransfer, OpClone:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %v: %v", e.Op, e.From, e.Err)
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *OpError) Unwrap() error { return e.Err }

func opError(op string, at coord.Position, err error) *OpError {
	return &OpError{Op: op, From: at, To: at, Err: err}
}

func moveError(from, to coord.Position, err error) *OpError {
	return &OpError{Op: OpMove, From: from, To: to, Err: err}
}

// handleError reports a failure of a whole-store operation.
func handleError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}
