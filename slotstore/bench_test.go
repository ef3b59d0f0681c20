package slotstore_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/stowage/coord"
	"github.com/katalvlaran/stowage/grouping"
	"github.com/katalvlaran/stowage/slotstore"
)

// benchGroupings builds k groupings over strings, each keyed by a different
// character position.
func benchGroupings(k int) grouping.Set[string] {
	set := make(grouping.Set[string], k)
	for i := 0; i < k; i++ {
		pos := i
		set["g"+strconv.Itoa(i)] = func(s string) string {
			if pos >= len(s) {
				return ""
			}
			return s[pos : pos+1]
		}
	}

	return set
}

// BenchmarkLoadUnload measures one Load plus one Unload on a 64×64×4 store
// for k = 0, 1, 4 and 16 groupings.
// Complexity: O(k) per operation.
func BenchmarkLoadUnload(b *testing.B) {
	for _, k := range []int{0, 1, 4, 16} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			s, err := slotstore.New[string](64, 64, 4, slotstore.WithGroupings(benchGroupings(k)))
			if err != nil {
				b.Fatalf("setup New failed: %v", err)
			}
			rng := rand.New(rand.NewSource(42))
			cols := make([]coord.Position, 1024)
			for i := range cols {
				cols[i] = coord.At(coord.X(rng.Intn(64)), coord.Y(rng.Intn(64)))
			}
			const item = "container-0042"

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := cols[i%len(cols)]
				if err := s.Load(p.X, p.Y, item); err != nil {
					b.Fatalf("Load%v: %v", p, err)
				}
				if _, err := s.Unload(p.X, p.Y); err != nil {
					b.Fatalf("Unload%v: %v", p, err)
				}
			}
		})
	}
}

// BenchmarkIterate compares a full traversal of a full 64×64×4 store with one
// holding a single item per 64 slots. Iteration visits occupied slots only.
// Complexity: O(n) for n occupied slots.
func BenchmarkIterate(b *testing.B) {
	for _, tc := range []struct {
		name  string
		every int // load one column in every `every`
		depth coord.Height
	}{
		{"Full", 1, 4},
		{"Sparse", 16, 1},
	} {
		b.Run(tc.name, func(b *testing.B) {
			s, err := slotstore.New[string](64, 64, 4)
			if err != nil {
				b.Fatalf("setup New failed: %v", err)
			}
			bounds := s.Bounds()
			for c := 0; c < bounds.Columns(); c += tc.every {
				p := bounds.DecodeColumn(c)
				for z := coord.Height(0); z < tc.depth; z++ {
					if err := s.Load(p.X, p.Y, "x"); err != nil {
						b.Fatalf("setup Load%v: %v", p, err)
					}
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				n := 0
				for it := s.Iter(); it.Next(); {
					_ = it.Item()
					n++
				}
				if n != s.Len() {
					b.Fatalf("visited %d items; want %d", n, s.Len())
				}
			}
		})
	}
}

// BenchmarkViewByGroup measures ranging over a live group bucket that holds
// a quarter of a full 32×32×4 store.
func BenchmarkViewByGroup(b *testing.B) {
	s, err := slotstore.New[string](32, 32, 4, slotstore.WithGroupings(benchGroupings(1)))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	keys := []string{"a", "b", "c", "d"}
	bounds := s.Bounds()
	for c := 0; c < bounds.Columns(); c++ {
		p := bounds.DecodeColumn(c)
		for z := 0; z < 4; z++ {
			if err := s.Load(p.X, p.Y, keys[(c+z)%len(keys)]); err != nil {
				b.Fatalf("setup Load%v: %v", p, err)
			}
		}
	}
	view := s.ViewByGroup("g0", "a")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range view.Items() {
			n++
		}
		if n != view.Len() {
			b.Fatalf("visited %d items; want %d", n, view.Len())
		}
	}
}
