// Package slotstore: functional configuration for New and New2D.
//
// Options are untyped so that call sites read naturally:
//
//	slotstore.New[string](5, 12, 1,
//		slotstore.WithRestrictions(slotstore.Restriction{X: 0, Y: 0, Height: 0}),
//		slotstore.WithGroupings(set),
//	)
//
// The item-typed options (WithGroupings, WithCloneFunc) carry their value as
// any and are checked against the store's item type inside New, which fails
// with ErrOptionType on a mismatch. Nil options are ignored.

package slotstore

import (
	"log/slog"

	"github.com/katalvlaran/stowage/grouping"
)

// Option configures a Store before creation.
type Option func(*config)

type config struct {
	restrictions []Restriction
	groupings    any // grouping.Set[T]
	cloneFn      any // func(T) T
	logger       *slog.Logger
}

// WithRestrictions adds per-column height restrictions. Repeated use appends.
func WithRestrictions(rs ...Restriction) Option {
	return func(c *config) { c.restrictions = append(c.restrictions, rs...) }
}

// WithGroupings registers the grouping functions whose indexes the store
// maintains. The set is copied; later edits to the map have no effect.
func WithGroupings[T any](set grouping.Set[T]) Option {
	return func(c *config) { c.groupings = set.Clone() }
}

// WithCloneFunc sets the deep-copy function Clone applies to every item.
// Without it Clone copies items by assignment.
func WithCloneFunc[T any](fn func(T) T) Option {
	return func(c *config) { c.cloneFn = fn }
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func gatherOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// typedConfig resolves the item-typed options for T.
func typedConfig[T any](c config) (grouping.Set[T], func(T) T, error) {
	var (
		set     grouping.Set[T]
		cloneFn func(T) T
		ok      bool
	)
	if c.groupings != nil {
		if set, ok = c.groupings.(grouping.Set[T]); !ok {
			return nil, nil, ErrOptionType
		}
	}
	if c.cloneFn != nil {
		if cloneFn, ok = c.cloneFn.(func(T) T); !ok {
			return nil, nil, ErrOptionType
		}
	}

	return set, cloneFn, nil
}
