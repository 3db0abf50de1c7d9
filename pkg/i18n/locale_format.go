package i18n

import (
	"strings"

	"github.com/goodsign/monday"
)

// localeFormat is the small, hand-maintained table of locale-specific
// symbols and layouts the formatter pipeline cannot source from
// golang.org/x/text alone (currency symbol placement, and which monday.Locale
// supplies localized month/weekday names). It is grounded on the teacher's
// format_predefined.go locale table, generalized from a fixed set of
// constructor functions into a lookup keyed by locale tag.
type localeFormat struct {
	mondayLocale      monday.Locale
	decimalSeparator  string
	currencyPosition  string // "before" or "after"
	shortTimeLayout   string // Go reference layout for the "time" formatter
}

// localeFormats lists the locales this build maps to a genuine monday.Locale,
// keyed by lowercased tag. A locale matched neither by its full tag nor by
// its base language uses the "en" entry as a whole: en-US month/weekday
// names, "." as decimal separator, the currency symbol before the amount,
// and the 12-hour short time layout.
var localeFormats = map[string]localeFormat{
	"en":    {monday.LocaleEnUS, ".", "before", "3:04 PM"},
	"en-us": {monday.LocaleEnUS, ".", "before", "3:04 PM"},
	"en-gb": {monday.LocaleEnGB, ".", "before", "15:04"},
	"de":    {monday.LocaleDeDE, ",", "after", "15:04"},
	"de-de": {monday.LocaleDeDE, ",", "after", "15:04"},
	"fr":    {monday.LocaleFrFR, ",", "after", "15:04"},
	"fr-fr": {monday.LocaleFrFR, ",", "after", "15:04"},
	"es":    {monday.LocaleEsES, ",", "after", "15:04"},
	"es-es": {monday.LocaleEsES, ",", "after", "15:04"},
	"pt":    {monday.LocalePtBR, ",", "before", "15:04"},
	"pt-br": {monday.LocalePtBR, ",", "before", "15:04"},
	"ja":    {monday.LocaleJaJP, ".", "before", "15:04"},
	"ja-jp": {monday.LocaleJaJP, ".", "before", "15:04"},
	"zh":    {monday.LocaleZhCN, ".", "before", "15:04"},
	"zh-cn": {monday.LocaleZhCN, ".", "before", "15:04"},
	"ko":    {monday.LocaleKoKR, ".", "before", "15:04"},
	"ko-kr": {monday.LocaleKoKR, ".", "before", "15:04"},
	"pl":    {monday.LocalePlPL, ",", "after", "15:04"},
	"pl-pl": {monday.LocalePlPL, ",", "after", "15:04"},
	"ru":    {monday.LocaleRuRU, ",", "after", "15:04"},
	"ru-ru": {monday.LocaleRuRU, ",", "after", "15:04"},
}

// lookupLocaleFormat returns the best-matching localeFormat for tag, falling
// back to the base language, then to en-US defaults.
func lookupLocaleFormat(tag string) localeFormat {
	norm := strings.ToLower(tag)
	if lf, ok := localeFormats[norm]; ok {
		return lf
	}
	if lf, ok := localeFormats[baseLanguage(norm)]; ok {
		return lf
	}
	return localeFormats["en"]
}
