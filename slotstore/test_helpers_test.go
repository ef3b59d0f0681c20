// Package slotstore_test contains shared fixtures for slotstore tests.

package slotstore_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stowage/coord"
	"github.com/katalvlaran/stowage/grouping"
	"github.com/katalvlaran/stowage/slotstore"
)

// Grouping names used across tests.
const (
	GroupFirstLetter = "firstLetter"
	GroupLength      = "length"
)

// firstLetter keys a string by its first rune, case preserved.
var firstLetter = grouping.FirstRune(func(s string) string { return s })

// byLength keys a string by its length class.
func byLength(s string) string {
	if len(s) > 4 {
		return "long"
	}
	return "short"
}

// stringGroupings is the grouping set most tests use.
func stringGroupings() grouping.Set[string] {
	return grouping.Set[string]{
		GroupFirstLetter: firstLetter,
		GroupLength:      byLength,
	}
}

// mustNew builds a store or fails the test.
func mustNew(t *testing.T, x coord.X, y coord.Y, h coord.Height, opts ...slotstore.Option) *slotstore.Store[string] {
	t.Helper()
	s, err := slotstore.New[string](x, y, h, opts...)
	require.NoError(t, err)

	return s
}

// collect drains a (position, item) sequence into a map.
func collect(seq iter.Seq2[coord.Position3D, string]) map[coord.Position3D]string {
	out := make(map[coord.Position3D]string)
	for p, item := range seq {
		out[p] = item
	}
	return out
}

// expectedGroup recomputes a bucket from scratch by scanning the store.
func expectedGroup(s *slotstore.Store[string], fn grouping.Func[string], key string) map[coord.Position3D]string {
	out := make(map[coord.Position3D]string)
	for p, item := range s.All() {
		if fn(item) == key {
			out[p] = item
		}
	}
	return out
}
