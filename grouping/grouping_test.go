package grouping_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stowage/grouping"
)

type box struct {
	Port   string
	Weight int
	Tags   []string
}

func TestSet_Validate(t *testing.T) {
	ok := grouping.Set[string]{"len": func(s string) string { return s }}
	require.NoError(t, ok.Validate())

	nilFn := grouping.Set[string]{"broken": nil}
	require.ErrorIs(t, nilFn.Validate(), grouping.ErrNilFunc)

	empty := grouping.Set[string]{"": grouping.Constant[string]("k")}
	require.ErrorIs(t, empty.Validate(), grouping.ErrEmptyName)

	var none grouping.Set[string]
	require.NoError(t, none.Validate())
}

func TestSet_NamesSortedAndClone(t *testing.T) {
	s := grouping.Set[string]{
		"b": grouping.Constant[string]("1"),
		"a": grouping.Constant[string]("2"),
		"c": grouping.Constant[string]("3"),
	}
	require.Equal(t, []string{"a", "b", "c"}, s.Names())

	c := s.Clone()
	delete(c, "a")
	require.Len(t, s, 3, "clone must not alias the original map")
	require.Nil(t, grouping.Set[string](nil).Clone())
}

func TestFirstRune(t *testing.T) {
	fn := grouping.FirstRune(func(s string) string { return s })
	require.Equal(t, "J", fn("John"))
	require.Equal(t, "d", fn("deer"))
	require.Equal(t, "D", fn("Dove"), "case is preserved")
	require.Equal(t, "É", fn("Élan"))
	require.Equal(t, "", fn(""))
}

func TestFirstRuneUpper(t *testing.T) {
	fn := grouping.FirstRuneUpper(func(s string) string { return s })
	require.Equal(t, "D", fn("deer"))
	require.Equal(t, "D", fn("Dove"))
	require.Equal(t, "É", fn("élan"))
	require.Equal(t, "", fn(""))
}

func TestFromExpr(t *testing.T) {
	t.Run("StringField", func(t *testing.T) {
		fn, err := grouping.FromExpr[box](`lower(item.Port)`)
		require.NoError(t, err)
		require.Equal(t, "haifa", fn(box{Port: "HAIFA"}))
	})
	t.Run("Conditional", func(t *testing.T) {
		fn, err := grouping.FromExpr[box](`item.Weight > 10 ? "heavy" : "light"`)
		require.NoError(t, err)
		require.Equal(t, "heavy", fn(box{Weight: 11}))
		require.Equal(t, "light", fn(box{Weight: 10}))
	})
	t.Run("NonStringResult", func(t *testing.T) {
		fn, err := grouping.FromExpr[box](`item.Weight`)
		require.NoError(t, err)
		require.Equal(t, "42", fn(box{Weight: 42}))
	})
	t.Run("PlainStringItem", func(t *testing.T) {
		fn, err := grouping.FromExpr[string](`lower(item[0:1])`)
		require.NoError(t, err)
		require.Equal(t, "d", fn("Dove"))
	})
	t.Run("RuntimeFailure", func(t *testing.T) {
		fn, err := grouping.FromExpr[box](`item.Tags[5]`)
		require.NoError(t, err)
		require.Equal(t, grouping.ErrorKey, fn(box{}))
	})
}

func TestFromExpr_Errors(t *testing.T) {
	_, err := grouping.FromExpr[box]("")
	require.True(t, errors.Is(err, grouping.ErrEmptyExpr))

	_, err = grouping.FromExpr[box](`item.NoSuchField`)
	require.Error(t, err)

	_, err = grouping.FromExpr[box](`item.`)
	require.Error(t, err)
}
