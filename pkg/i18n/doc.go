// Package i18n implements the translation engine: catalog storage, plural
// category resolution, placeholder interpolation, and the date/time/
// duration/currency formatter pipeline that render a single "@translate"
// node into a locale-specific string.
//
// An Engine is constructed once with New and functional options, then
// cloned per request to bind a locale and timezone without disturbing the
// shared instance:
//
//	engine, err := i18n.New(
//		i18n.WithDefaultLocale("en"),
//		i18n.WithTranslations("en", map[string]any{
//			"howdy": "Howdy",
//			"good-bye-john": "Good bye",
//		}),
//		i18n.WithTranslations("ar", map[string]any{
//			"plural-dog_few": "few dogs",
//		}),
//	)
//
//	req := engine.Clone()
//	req.SetLocale("ar")
//	quantity := 3.0
//	text, err := req.Translate(i18n.Node{Key: "plural-dog", Quantity: &quantity})
//	// text == "few dogs"
//
// # Plural categories
//
// GetPluralRuleForLanguage maps a locale to a CLDR plural rule; Catalog's
// LookupWithPlural applies the rule's category suffix, then the legacy
// numeric-index suffix for that category (e.g. "_3" for "few"), then the
// legacy "_plural" suffix, then the bare key.
//
// # Formatters
//
// Placeholders tagged with a typed payload (date, duration, currency) are
// rendered through the FormatterRegistry returned by NewFormatterRegistry,
// invoked from template markers of the form {{name, format}}.
//
// # Thread safety
//
// Catalog guards its own writes with an internal mutex; reads do not
// block each other. Engine clones are unshared and safe without
// synchronization.
package i18n
