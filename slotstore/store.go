package slotstore

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/stowage/coord"
)

// slot is one cell of the backing array.
type slot[T any] struct {
	item T
	full bool
}

// state is everything a Store owns. Handles and views point at it; it is
// never copied, so a view stays valid for as long as any handle is alive.
type state[T any] struct {
	id       uuid.UUID
	bounds   coord.Bounds
	slots    []slot[T]      // len == bounds.Slots(), never resized
	heights  []coord.Height // occupancy per column index
	occupied *roaring.Bitmap
	limits   restrictionTable
	groups   *groupIndex[T]
	cloneFn  func(T) T
	log      *logger
}

// noCopy makes `go vet` (copylocks) flag a Store copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Store is the unique-owner handle of a slotted store.
//
// A Store must not be copied. Transfer hands the backing state to a new
// handle and invalidates this one; Clone is the only way to duplicate.
type Store[T any] struct {
	_  noCopy
	st *state[T]
}

// New creates an empty store of x·y·h slots.
//
// Every option is validated eagerly:
//   - ErrInvalidDimensions if an extent is ≤ 0 or the slot count overflows.
//   - ErrInvalidRestriction / ErrDuplicateRestriction for bad restrictions.
//   - ErrInvalidGrouping if a grouping name is empty or its function nil.
//   - ErrOptionType if an item-typed option was built for another type.
//
// Complexity: O(x·y·h) memory, O(len(restrictions)+len(groupings)) checks.
func New[T any](x coord.X, y coord.Y, h coord.Height, opts ...Option) (*Store[T], error) {
	b, err := coord.NewBounds(x, y, h)
	if err != nil {
		return nil, errors.Join(ErrInvalidDimensions, err)
	}
	cfg := gatherOptions(opts)
	set, cloneFn, err := typedConfig[T](cfg)
	if err != nil {
		return nil, err
	}
	if err = set.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidGrouping, err)
	}
	limits, err := newRestrictionTable(b, cfg.restrictions)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	st := &state[T]{
		id:       id,
		bounds:   b,
		slots:    make([]slot[T], b.Slots()),
		heights:  make([]coord.Height, b.Columns()),
		occupied: roaring.New(),
		limits:   limits,
		groups:   newGroupIndex(set),
		cloneFn:  cloneFn,
		log:      newLogger(cfg.logger, id),
	}
	st.log.logCreated(b, limits.len(), len(set))

	return &Store[T]{st: st}, nil
}

// New2D creates a single-height store: every column holds at most one item.
func New2D[T any](x coord.X, y coord.Y, opts ...Option) (*Store[T], error) {
	return New[T](x, y, 1, opts...)
}

// state returns the backing state, or ErrMovedFrom after Transfer.
func (s *Store[T]) state() (*state[T], error) {
	if s == nil || s.st == nil {
		return nil, ErrMovedFrom
	}

	return s.st, nil
}

//----------------------------------------------------------------------------//
// Mutations
//----------------------------------------------------------------------------//

// Load places item on top of column (x,y).
//
// Checks run in this order: ErrOutOfBounds, ErrRestrictedCapacity,
// ErrColumnFull. On success the slot, the column height, the occupancy set
// and every group index are updated before Load returns; on failure nothing
// changes.
// Complexity: O(k), k = number of groupings.
func (s *Store[T]) Load(x coord.X, y coord.Y, item T) error {
	st, err := s.state()
	if err != nil {
		return opError(OpLoad, coord.At(x, y), err)
	}
	col, z, err := st.checkLoad(x, y)
	if err != nil {
		err = opError(OpLoad, coord.At(x, y), err)
		st.log.logLoad(coord.At3D(x, y, z), err)
		return err
	}
	st.place(col, x, y, z, item)
	st.log.logLoad(coord.At3D(x, y, z), nil)

	return nil
}

// Unload removes and returns the topmost item of column (x,y).
// Returns ErrOutOfBounds or ErrEmptyColumn without changing anything.
// The vacated slot is zeroed, so the store keeps no reference to the item.
// Complexity: O(k), k = number of groupings.
func (s *Store[T]) Unload(x coord.X, y coord.Y) (T, error) {
	var zero T
	st, err := s.state()
	if err != nil {
		return zero, opError(OpUnload, coord.At(x, y), err)
	}
	col, err := st.checkUnload(x, y)
	if err != nil {
		err = opError(OpUnload, coord.At(x, y), err)
		st.log.logUnload(coord.At3D(x, y, 0), err)
		return zero, err
	}
	item, z := st.remove(col, x, y)
	st.log.logUnload(coord.At3D(x, y, z), nil)

	return item, nil
}

// Move unloads the topmost item of (fromX,fromY) and loads it onto
// (toX,toY).
//
// A failed Move leaves the store exactly as it was: both columns are checked
// before the source is touched, so group indexes never see the item leave.
// Moving onto the source column itself always succeeds.
// Errors are those of Unload on the source and Load on the destination.
func (s *Store[T]) Move(fromX coord.X, fromY coord.Y, toX coord.X, toY coord.Y) error {
	from, to := coord.At(fromX, fromY), coord.At(toX, toY)
	st, err := s.state()
	if err != nil {
		return moveError(from, to, err)
	}
	fromCol, err := st.checkUnload(fromX, fromY)
	if err == nil && from != to {
		_, _, err = st.checkLoad(toX, toY)
	}
	if err != nil {
		err = moveError(from, to, err)
		st.log.logMove(from, to, err)
		return err
	}

	// Both ends passed their checks, and removing from the source can only
	// free capacity, so placement cannot fail.
	item, _ := st.remove(fromCol, fromX, fromY)
	toCol := st.bounds.ColumnIndex(toX, toY)
	st.place(toCol, toX, toY, st.heights[toCol], item)
	st.log.logMove(from, to, nil)

	return nil
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// ID returns the store identity; a Clone gets a fresh one.
func (s *Store[T]) ID() uuid.UUID {
	if s == nil || s.st == nil {
		return uuid.Nil
	}
	return s.st.id
}

// Bounds returns the store extents.
func (s *Store[T]) Bounds() coord.Bounds {
	if s == nil || s.st == nil {
		return coord.Bounds{}
	}
	return s.st.bounds
}

// Len returns the number of items held.
func (s *Store[T]) Len() int {
	if s == nil || s.st == nil {
		return 0
	}
	return int(s.st.occupied.GetCardinality())
}

// ColumnHeight returns the number of items stacked on (x,y).
func (s *Store[T]) ColumnHeight(x coord.X, y coord.Y) (coord.Height, error) {
	st, err := s.state()
	if err != nil {
		return 0, opError(OpQuery, coord.At(x, y), err)
	}
	if !st.bounds.ContainsColumn(x, y) {
		return 0, opError(OpQuery, coord.At(x, y), ErrOutOfBounds)
	}

	return st.heights[st.bounds.ColumnIndex(x, y)], nil
}

// ColumnCapacity returns how many items (x,y) may hold in total: its
// restriction if it has one, otherwise the store height.
func (s *Store[T]) ColumnCapacity(x coord.X, y coord.Y) (coord.Height, error) {
	st, err := s.state()
	if err != nil {
		return 0, opError(OpQuery, coord.At(x, y), err)
	}
	if !st.bounds.ContainsColumn(x, y) {
		return 0, opError(OpQuery, coord.At(x, y), ErrOutOfBounds)
	}

	return st.capacity(x, y), nil
}

// Restrictions returns the configured restrictions sorted by (y, x).
func (s *Store[T]) Restrictions() []Restriction {
	if s == nil || s.st == nil {
		return nil
	}
	return s.st.limits.all()
}

// Groupings returns the configured grouping names in ascending order.
func (s *Store[T]) Groupings() []string {
	if s == nil || s.st == nil {
		return nil
	}
	return append([]string(nil), s.st.groups.names...)
}

// GroupKeys lists the keys of grouping name that have a bucket, including
// buckets that are currently empty. Unknown names yield nil.
func (s *Store[T]) GroupKeys(name string) []string {
	if s == nil || s.st == nil {
		return nil
	}
	if _, ok := s.st.groups.groups[name]; !ok {
		return nil
	}
	return s.st.groups.keys(name)
}

// Peek returns the topmost item of (x,y) without removing it.
func (s *Store[T]) Peek(x coord.X, y coord.Y) (T, bool) {
	var zero T
	if s == nil || s.st == nil || !s.st.bounds.ContainsColumn(x, y) {
		return zero, false
	}
	h := s.st.heights[s.st.bounds.ColumnIndex(x, y)]
	if h == 0 {
		return zero, false
	}

	return s.st.slots[s.st.bounds.SlotIndex(x, y, h-1)].item, true
}

// At returns the item stored at p, if any.
func (s *Store[T]) At(p coord.Position3D) (T, bool) {
	var zero T
	if s == nil || s.st == nil || !s.st.bounds.Contains(p.X, p.Y, p.Z) {
		return zero, false
	}
	sl := s.st.slots[s.st.bounds.SlotIndex(p.X, p.Y, p.Z)]

	return sl.item, sl.full
}

//----------------------------------------------------------------------------//
// Ownership
//----------------------------------------------------------------------------//

// Transfer moves ownership of the whole store to a new handle in O(1).
// The receiver is left in the moved-from state: every later call on it
// fails with ErrMovedFrom (or returns an empty result). Views obtained from
// either handle stay valid and live.
func (s *Store[T]) Transfer() (*Store[T], error) {
	st, err := s.state()
	if err != nil {
		return nil, handleError(OpTransfer, err)
	}
	s.st = nil
	st.log.logTransfer()

	return &Store[T]{st: st}, nil
}

// Clone returns an independent deep copy with a fresh ID.
// Items are copied with the WithCloneFunc function, or by assignment when
// none was configured. Column order is preserved and every group index is
// rebuilt from the copied items; views of the source do not observe the
// clone.
// Complexity: O(x·y·h + n·k).
func (s *Store[T]) Clone() (*Store[T], error) {
	src, err := s.state()
	if err != nil {
		return nil, handleError(OpClone, err)
	}
	id := uuid.New()
	st := &state[T]{
		id:       id,
		bounds:   src.bounds,
		slots:    make([]slot[T], len(src.slots)),
		heights:  make([]coord.Height, len(src.heights)),
		occupied: roaring.New(),
		limits:   src.limits.clone(),
		groups:   newGroupIndex(src.groups.funcs),
		cloneFn:  src.cloneFn,
		log:      newLogger(src.log.base, id).with("clone_of", src.id.String()),
	}
	// Replay bottom-up so every column is rebuilt densely.
	b := src.bounds
	for z := coord.Height(0); z < b.HeightSize(); z++ {
		for y := coord.Y(0); y < b.YSize(); y++ {
			for x := coord.X(0); x < b.XSize(); x++ {
				sl := src.slots[b.SlotIndex(x, y, z)]
				if !sl.full {
					continue
				}
				item := sl.item
				if st.cloneFn != nil {
					item = st.cloneFn(item)
				}
				st.place(b.ColumnIndex(x, y), x, y, z, item)
			}
		}
	}
	src.log.logClone(id, int(st.occupied.GetCardinality()))

	return &Store[T]{st: st}, nil
}

//----------------------------------------------------------------------------//
// state internals
//----------------------------------------------------------------------------//

// capacity is the effective height cap of an in-bounds column.
func (st *state[T]) capacity(x coord.X, y coord.Y) coord.Height {
	if lim, ok := st.limits.limit(x, y); ok {
		return lim
	}
	return st.bounds.HeightSize()
}

// checkLoad returns the column index and the height a load onto (x,y)
// would occupy, or the reason it cannot.
func (st *state[T]) checkLoad(x coord.X, y coord.Y) (int, coord.Height, error) {
	if !st.bounds.ContainsColumn(x, y) {
		return 0, 0, ErrOutOfBounds
	}
	col := st.bounds.ColumnIndex(x, y)
	h := st.heights[col]
	if lim, ok := st.limits.limit(x, y); ok && h >= lim {
		return col, h, ErrRestrictedCapacity
	}
	if h >= st.bounds.HeightSize() {
		return col, h, ErrColumnFull
	}

	return col, h, nil
}

func (st *state[T]) checkUnload(x coord.X, y coord.Y) (int, error) {
	if !st.bounds.ContainsColumn(x, y) {
		return 0, ErrOutOfBounds
	}
	col := st.bounds.ColumnIndex(x, y)
	if st.heights[col] == 0 {
		return col, ErrEmptyColumn
	}

	return col, nil
}

// place writes item at (x,y,z), z == heights[col], and updates every
// derived structure. It cannot fail.
func (st *state[T]) place(col int, x coord.X, y coord.Y, z coord.Height, item T) {
	idx := st.bounds.SlotIndex(x, y, z)
	st.slots[idx] = slot[T]{item: item, full: true}
	st.heights[col]++
	st.occupied.Add(uint32(idx))
	for _, name := range st.groups.insert(uint32(idx), item) {
		st.log.logGroupingFailed(name, coord.At3D(x, y, z))
	}
}

// remove takes the topmost item off a non-empty column and returns it with
// the height it was at.
func (st *state[T]) remove(col int, x coord.X, y coord.Y) (T, coord.Height) {
	z := st.heights[col] - 1
	idx := st.bounds.SlotIndex(x, y, z)
	item := st.slots[idx].item
	st.groups.remove(uint32(idx), item)
	st.occupied.Remove(uint32(idx))
	st.slots[idx] = slot[T]{}
	st.heights[col]--

	return item, z
}
