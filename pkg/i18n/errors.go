package i18n

import "errors"

// Sentinel errors returned at the construction/API boundary (§7 "Invalid input config").
var (
	ErrEmptyLocale   = errors.New("i18n: locale cannot be empty")
	ErrNilPluralRule = errors.New("i18n: plural rule cannot be nil")
	ErrInvalidFile   = errors.New("i18n: invalid translation file")
	ErrEmptyKey      = errors.New("i18n: translation key cannot be empty")
)

// ErrTemplateNotFound is the catalog's internal miss signal. Engine.Translate
// consults it with errors.Is while walking the locale fallback chain and
// never returns it to callers: a miss across every locale falls through to
// the node's inline fallback, then to the bare key (§4.6, §7 "Missing
// translation key").
var ErrTemplateNotFound = errors.New("i18n: template not found")

// Formatter-failure errors. These are never returned directly from
// Engine.Translate; they are wrapped into a *FormatterError attached to the
// failed resolution and logged, per the error handling design.
var (
	ErrCurrencyCodeRequired = errors.New("i18n: currency code is required")
	ErrUnknownCurrency      = errors.New("i18n: unknown currency code")
	ErrUnknownTimezone      = errors.New("i18n: unknown IANA timezone")
)
