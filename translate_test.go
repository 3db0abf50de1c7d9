package i18ntree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree"
	"github.com/dmitrymomot/i18ntree/pkg/i18n"
	"github.com/dmitrymomot/i18ntree/pkg/logger"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18ntree.Translator {
	t.Helper()

	opts = append(opts, i18n.WithLogger(logger.NewNope()))
	engine, err := i18n.New(opts...)
	require.NoError(t, err)

	tr, err := i18ntree.New(i18ntree.WithEngine(engine))
	require.NoError(t, err)
	return tr
}

func TestTranslator_Translate(t *testing.T) {
	t.Parallel()

	t.Run("scenario 1: simple lookup", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"), i18n.WithTranslations("en", map[string]any{"howdy": "Howdy"}))

		out, err := tr.Translate(context.Background(), i18ntree.BuildTranslateNode("howdy", nil))
		require.NoError(t, err)
		require.Equal(t, i18ntree.String("Howdy"), out)
	})

	t.Run("scenario 2: placeholder and fallback", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"))

		node := i18ntree.BuildTranslateNode(
			"good-bye-john",
			map[string]i18ntree.Value{"john": i18ntree.String("John")},
			i18ntree.WithFallback("Good bye {{john}}"),
		)

		out, err := tr.Translate(context.Background(), node)
		require.NoError(t, err)
		require.Equal(t, i18ntree.String("Good bye John"), out)
	})

	t.Run("scenario 3: arabic plural category few", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("ar"), i18n.WithTranslations("ar", map[string]any{"plural-dog_3": "few dogs"}))

		node := i18ntree.BuildTranslateNode("plural-dog", nil, i18ntree.WithQuantity(3))

		out, err := tr.Translate(context.Background(), node)
		require.NoError(t, err)
		require.Equal(t, i18ntree.String("few dogs"), out)
	})

	t.Run("scenario 4: nested structure", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"), i18n.WithTranslations("en", map[string]any{"howdy": "Howdy"}))

		nested := i18ntree.NewMap()
		object := i18ntree.NewMap()
		object.Set("object", i18ntree.BuildTranslateNode("howdy", nil))
		nested.Set("nested", object)

		out, err := tr.Translate(context.Background(), nested)
		require.NoError(t, err)

		asGo, err := i18ntree.ToGo(out)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"nested": map[string]any{"object": "Howdy"}}, asGo)
	})

	t.Run("scenario 5: duration with units", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("fr-FR"))

		durationPayload := i18ntree.NewMap()
		durationPayload.Set("value", i18ntree.Number(7205000))
		durationPayload.Set("units", i18ntree.Seq{i18ntree.String("minutes"), i18ntree.String("seconds")})

		node := i18ntree.BuildTranslateNode(
			"x",
			map[string]i18ntree.Value{"d": durationPayload},
			i18ntree.WithFallback("Dans {{d, duration}}"),
		)

		out, err := tr.Translate(context.Background(), node)
		require.NoError(t, err)
		require.Equal(t, i18ntree.String("Dans 120 minutes, 5 secondes"), out)
	})

	t.Run("scenario 6: currency without code returns an error marker", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"))

		currencyPayload := i18ntree.NewMap()
		currencyPayload.Set("value", i18ntree.Number(12.34))
		currencyPayload.Set("currency", i18ntree.Null{})

		node := i18ntree.BuildTranslateNode(
			"p",
			map[string]i18ntree.Value{"a": currencyPayload},
			i18ntree.WithFallback("{{a, currency}}"),
		)

		out, err := tr.Translate(context.Background(), node)
		require.NoError(t, err)

		m, ok := out.(*i18ntree.Map)
		require.True(t, ok)

		_, hasTranslate := m.Get("@translate")
		require.True(t, hasTranslate)

		errVal, hasError := m.Get("error")
		require.True(t, hasError)
		errStr, ok := errVal.(i18ntree.String)
		require.True(t, ok)
		require.Contains(t, string(errStr), "currency code is required")
	})

	t.Run("scenario 7: no catalog entry and no fallback returns the raw key", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"))

		node := i18ntree.BuildTranslateNode("hello-john", map[string]i18ntree.Value{"john": i18ntree.String("John")})

		out, err := tr.Translate(context.Background(), node)
		require.NoError(t, err)
		require.Equal(t, i18ntree.String("hello-john"), out)
	})

	t.Run("universal invariant: scalars are returned unchanged", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"))

		for _, v := range []i18ntree.Value{i18ntree.Null{}, i18ntree.Bool(true), i18ntree.Number(42), i18ntree.String("plain")} {
			out, err := tr.Translate(context.Background(), v)
			require.NoError(t, err)
			require.Equal(t, v, out)
		}
	})

	t.Run("does not mutate the input argument", func(t *testing.T) {
		t.Parallel()

		tr := newTranslator(t, i18n.WithLocale("en"), i18n.WithTranslations("en", map[string]any{"howdy": "Howdy"}))

		node := i18ntree.BuildTranslateNode("howdy", nil)
		_, err := tr.Translate(context.Background(), node)
		require.NoError(t, err)

		require.True(t, i18ntree.IsTranslationNode(node), "the input node must still look like a translation node after Translate")
	})
}
