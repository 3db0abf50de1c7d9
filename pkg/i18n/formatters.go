package i18n

import (
	"fmt"
	"time"
)

// Formatter renders a typed placeholder value under a target locale and
// optional timezone. It returns an error only for genuinely invalid input
// (e.g. a currency placeholder with no currency code); callers decide how
// to surface that error (§7 "Formatter failure").
type Formatter func(ph Placeholder, locale string, tz *time.Location) (string, error)

// FormatterRegistry maps format names to implementations (§4.5). Each call
// to NewFormatterRegistry returns a fresh registry holding the built-in
// formatters; Register adds or replaces names on that registry only.
type FormatterRegistry struct {
	formatters map[string]Formatter
}

// NewFormatterRegistry returns a registry pre-populated with the built-in
// date, time, datetime, duration, and currency formatters.
func NewFormatterRegistry() *FormatterRegistry {
	r := &FormatterRegistry{formatters: make(map[string]Formatter)}
	r.Register("date", formatDate)
	r.Register("time", formatTime)
	r.Register("datetime", formatDateTime)
	r.Register("duration", formatDuration)
	r.Register("currency", formatCurrency)
	return r
}

// Register adds or overwrites a named formatter.
func (r *FormatterRegistry) Register(name string, fn Formatter) {
	r.formatters[name] = fn
}

// Lookup returns the formatter registered under name, if any. An unknown
// format name is a no-op at the call site: the placeholder's raw value is
// emitted instead (§4.4, §4.5).
func (r *FormatterRegistry) Lookup(name string) (Formatter, bool) {
	fn, ok := r.formatters[name]
	return fn, ok
}

// stringifyPlaceholder renders a placeholder's raw value when no formatter
// applies, matching {{name}} substitution semantics.
func stringifyPlaceholder(ph Placeholder) string {
	switch v := ph.(type) {
	case ScalarPlaceholder:
		if v.Value == nil {
			return ""
		}
		return fmt.Sprintf("%v", v.Value)
	case DatePlaceholder:
		return v.Value.Format(time.RFC3339)
	case DurationPlaceholder:
		return fmt.Sprintf("%v", v.ValueMS)
	case CurrencyPlaceholder:
		return fmt.Sprintf("%v", v.Value)
	default:
		return ""
	}
}
