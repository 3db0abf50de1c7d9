package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree/pkg/i18n"
)

func TestFormatterRegistry_Date(t *testing.T) {
	t.Parallel()

	registry := i18n.NewFormatterRegistry()

	t.Run("date uses the placeholder's own zone when nothing overrides it", func(t *testing.T) {
		t.Parallel()

		fn, ok := registry.Lookup("date")
		require.True(t, ok)

		moment := time.Date(2016, time.February, 3, 10, 0, 0, 0, time.UTC)
		out, err := fn(i18n.DatePlaceholder{Value: moment}, "en", nil)
		require.NoError(t, err)
		require.Equal(t, "3 February 2016", out)
	})

	t.Run("time respects a DST transition in the effective zone", func(t *testing.T) {
		t.Parallel()

		paris, err := time.LoadLocation("Europe/Paris")
		require.NoError(t, err)

		fn, ok := registry.Lookup("time")
		require.True(t, ok)

		before := time.Date(2016, time.October, 30, 0, 5, 6, 0, time.UTC)
		out, err := fn(i18n.DatePlaceholder{Value: before}, "en-GB", paris)
		require.NoError(t, err)
		require.Equal(t, "02:05", out)

		after := time.Date(2016, time.October, 30, 2, 5, 6, 0, time.UTC)
		out, err = fn(i18n.DatePlaceholder{Value: after}, "en-GB", paris)
		require.NoError(t, err)
		require.Equal(t, "03:05", out)
	})

	t.Run("a placeholder timezone override takes precedence over the engine zone", func(t *testing.T) {
		t.Parallel()

		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		fn, ok := registry.Lookup("time")
		require.True(t, ok)

		moment := time.Date(2016, time.February, 3, 0, 0, 0, 0, time.UTC)
		out, err := fn(i18n.DatePlaceholder{Value: moment, Timezone: "Asia/Tokyo"}, "en-GB", nil)
		require.NoError(t, err)

		expected := moment.In(tokyo).Format("15:04")
		require.Equal(t, expected, out)
	})
}
