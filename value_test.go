package i18ntree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree"
)

func TestFromGoToGo_RoundTrip(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"name": "Ada",
		"age":  36,
		"tags": []any{"a", "b"},
		"nested": map[string]any{
			"ok": true,
		},
	}

	v, err := i18ntree.FromGo(input)
	require.NoError(t, err)

	// Every number comes back as float64: Number collapses all numeric
	// inputs to float64.
	expected := map[string]any{
		"name": "Ada",
		"age":  float64(36),
		"tags": []any{"a", "b"},
		"nested": map[string]any{
			"ok": true,
		},
	}

	out, err := i18ntree.ToGo(v)
	require.NoError(t, err)
	require.Equal(t, expected, out)
}

func TestMap_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	m := i18ntree.NewMap()
	m.Set("b", i18ntree.String("2"))
	m.Set("a", i18ntree.String("1"))
	m.Set("b", i18ntree.String("2-updated"))

	require.Equal(t, []string{"b", "a"}, m.Keys())

	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, i18ntree.String("2-updated"), v)
}

func TestMap_Clone(t *testing.T) {
	t.Parallel()

	m := i18ntree.NewMap()
	m.Set("a", i18ntree.String("1"))

	clone := m.Clone()
	clone.Set("b", i18ntree.String("2"))

	require.Equal(t, 1, m.Len())
	require.Equal(t, 2, clone.Len())
}
