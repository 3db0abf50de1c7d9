package i18ntree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree"
)

func TestWalk(t *testing.T) {
	t.Parallel()

	t.Run("scalars pass through untouched", func(t *testing.T) {
		t.Parallel()

		out, pendings, keys := i18ntree.Walk(i18ntree.String("plain"))
		require.Equal(t, i18ntree.String("plain"), out)
		require.Empty(t, pendings)
		require.Empty(t, keys)
	})

	t.Run("collects a translation node nested inside maps and sequences", func(t *testing.T) {
		t.Parallel()

		node := i18ntree.BuildTranslateNode("howdy", nil)
		seq := i18ntree.Seq{node, i18ntree.String("literal")}
		outer := i18ntree.NewMap()
		outer.Set("items", seq)

		_, pendings, keys := i18ntree.Walk(outer)
		require.Len(t, pendings, 1)
		require.Equal(t, []string{"howdy"}, keys)
	})

	t.Run("an invalid node is left unchanged and produces no pending resolution", func(t *testing.T) {
		t.Parallel()

		body := i18ntree.NewMap()
		body.Set("fallback", i18ntree.String("x"))
		invalid := i18ntree.NewMap()
		invalid.Set("@translate", body)

		out, pendings, keys := i18ntree.Walk(invalid)
		require.Equal(t, invalid, out)
		require.Empty(t, pendings)
		require.Empty(t, keys)
	})

	t.Run("does not mutate the input tree", func(t *testing.T) {
		t.Parallel()

		m := i18ntree.NewMap()
		m.Set("a", i18ntree.String("1"))

		_, _, _ = i18ntree.Walk(m)

		require.Equal(t, 1, m.Len())
		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, i18ntree.String("1"), v)
	})
}
