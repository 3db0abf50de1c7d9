package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree/pkg/i18n"
)

func TestFormatterRegistry_Duration(t *testing.T) {
	t.Parallel()

	registry := i18n.NewFormatterRegistry()

	t.Run("scenario 5: french units subset", func(t *testing.T) {
		t.Parallel()

		fn, ok := registry.Lookup("duration")
		require.True(t, ok)

		out, err := fn(i18n.DurationPlaceholder{
			ValueMS: 7205000,
			Units:   []string{"minutes", "seconds"},
		}, "fr-FR", nil)
		require.NoError(t, err)
		require.Equal(t, "120 minutes, 5 secondes", out)
	})

	t.Run("precision caps to the largest unit", func(t *testing.T) {
		t.Parallel()

		fn, ok := registry.Lookup("duration")
		require.True(t, ok)

		precision := 1
		out, err := fn(i18n.DurationPlaceholder{
			ValueMS:   3*3600000 + 25*60000,
			Units:     []string{"hours", "minutes"},
			Precision: &precision,
		}, "en", nil)
		require.NoError(t, err)
		require.Equal(t, "3 hours", out)
	})

	t.Run("region suffix is ignored for vocabulary selection", func(t *testing.T) {
		t.Parallel()

		fn, ok := registry.Lookup("duration")
		require.True(t, ok)

		out, err := fn(i18n.DurationPlaceholder{
			ValueMS: 5000,
			Units:   []string{"seconds"},
		}, "en-GB", nil)
		require.NoError(t, err)
		require.Equal(t, "5 seconds", out)
	})
}
