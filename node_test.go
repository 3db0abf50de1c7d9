package i18ntree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree"
)

func TestIsTranslationNode(t *testing.T) {
	t.Parallel()

	t.Run("accepts a minimal valid node", func(t *testing.T) {
		t.Parallel()

		v := i18ntree.BuildTranslateNode("howdy", nil)
		require.True(t, i18ntree.IsTranslationNode(v))
	})

	t.Run("rejects an extra top-level key alongside @translate", func(t *testing.T) {
		t.Parallel()

		m := i18ntree.NewMap()
		body := i18ntree.NewMap()
		body.Set("key", i18ntree.String("howdy"))
		m.Set("@translate", body)
		m.Set("extra", i18ntree.Bool(true))

		require.False(t, i18ntree.IsTranslationNode(m))
	})

	t.Run("rejects a quantity that is not a number", func(t *testing.T) {
		t.Parallel()

		body := i18ntree.NewMap()
		body.Set("key", i18ntree.String("plural-dog"))
		body.Set("quantity", i18ntree.String("3"))
		m := i18ntree.NewMap()
		m.Set("@translate", body)

		require.False(t, i18ntree.IsTranslationNode(m))
	})

	t.Run("rejects a missing key", func(t *testing.T) {
		t.Parallel()

		body := i18ntree.NewMap()
		body.Set("fallback", i18ntree.String("x"))
		m := i18ntree.NewMap()
		m.Set("@translate", body)

		require.False(t, i18ntree.IsTranslationNode(m))
	})

	t.Run("ordinary mappings are not translation nodes", func(t *testing.T) {
		t.Parallel()

		m := i18ntree.NewMap()
		m.Set("howdy", i18ntree.String("Howdy"))

		require.False(t, i18ntree.IsTranslationNode(m))
	})
}
