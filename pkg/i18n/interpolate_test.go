package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree/pkg/i18n"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	t.Run("substitutes a plain placeholder", func(t *testing.T) {
		t.Parallel()

		out, err := i18n.Interpolate(
			"Good bye {{john}}",
			map[string]i18n.Placeholder{"john": i18n.ScalarPlaceholder{Value: "John"}},
			"en", nil, i18n.NewFormatterRegistry(), nil,
		)
		require.NoError(t, err)
		require.Equal(t, "Good bye John", out)
	})

	t.Run("renders missing placeholders as empty", func(t *testing.T) {
		t.Parallel()

		out, err := i18n.Interpolate("Hi {{name}}", nil, "en", nil, i18n.NewFormatterRegistry(), nil)
		require.NoError(t, err)
		require.Equal(t, "Hi ", out)
	})

	t.Run("an unknown format name emits the raw value", func(t *testing.T) {
		t.Parallel()

		out, err := i18n.Interpolate(
			"{{v, bogus}}",
			map[string]i18n.Placeholder{"v": i18n.ScalarPlaceholder{Value: 42}},
			"en", nil, i18n.NewFormatterRegistry(), nil,
		)
		require.NoError(t, err)
		require.Equal(t, "42", out)
	})

	t.Run("resolves a $t() reference via the provided callback", func(t *testing.T) {
		t.Parallel()

		resolveRef := func(key string) (string, bool) {
			if key == "brand" {
				return "Acme", true
			}
			return "", false
		}

		out, err := i18n.Interpolate("Welcome to $t(brand)", nil, "en", nil, i18n.NewFormatterRegistry(), resolveRef)
		require.NoError(t, err)
		require.Equal(t, "Welcome to Acme", out)
	})

	t.Run("leaves an unresolved reference untouched", func(t *testing.T) {
		t.Parallel()

		resolveRef := func(string) (string, bool) { return "", false }

		out, err := i18n.Interpolate("$t(missing)", nil, "en", nil, i18n.NewFormatterRegistry(), resolveRef)
		require.NoError(t, err)
		require.Equal(t, "$t(missing)", out)
	})

	t.Run("propagates a formatter error", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.Interpolate(
			"{{a, currency}}",
			map[string]i18n.Placeholder{"a": i18n.CurrencyPlaceholder{Value: 12.34}},
			"en", nil, i18n.NewFormatterRegistry(), nil,
		)
		require.ErrorIs(t, err, i18n.ErrCurrencyCodeRequired)
	})
}
