package grouping

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for grouping sets.
var (
	// ErrNilFunc indicates a nil function was registered under a name.
	ErrNilFunc = errors.New("grouping: nil grouping function")
	// ErrEmptyName indicates a function was registered under "".
	ErrEmptyName = errors.New("grouping: empty grouping name")
	// ErrEmptyExpr indicates FromExpr was given an empty expression.
	ErrEmptyExpr = errors.New("grouping: expression must not be empty")
)

// Func classifies an item into a string key. It must be pure.
type Func[T any] func(item T) string

// Set maps grouping names to their functions.
type Set[T any] map[string]Func[T]

// Validate checks every entry of the set.
// Returns ErrEmptyName or ErrNilFunc wrapped with the offending name.
// Complexity: O(k), k = len(s).
func (s Set[T]) Validate() error {
	for _, name := range s.Names() {
		if name == "" {
			return ErrEmptyName
		}
		if s[name] == nil {
			return fmt.Errorf("%q: %w", name, ErrNilFunc)
		}
	}

	return nil
}

// Names returns the grouping names in ascending order.
func (s Set[T]) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Clone returns a shallow copy; the functions themselves are shared.
func (s Set[T]) Clone() Set[T] {
	if s == nil {
		return nil
	}
	out := make(Set[T], len(s))
	for name, fn := range s {
		out[name] = fn
	}

	return out
}

// FirstRune returns a Func keyed by the first rune of the string produced
// by text, case preserved: "Dove" and "deer" land in different buckets.
// Items whose text is empty map to "".
func FirstRune[T any](text func(T) string) Func[T] {
	return func(item T) string {
		r, size := utf8.DecodeRuneInString(text(item))
		if size == 0 {
			return ""
		}

		return string(r)
	}
}

// FirstRuneUpper is FirstRune with the rune upper-cased, so keys are
// case-insensitive.
func FirstRuneUpper[T any](text func(T) string) Func[T] {
	first := FirstRune(text)
	return func(item T) string {
		return strings.ToUpper(first(item))
	}
}

// Constant returns a Func that puts every item in the same bucket.
func Constant[T any](key string) Func[T] {
	return func(T) string { return key }
}
