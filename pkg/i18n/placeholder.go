package i18n

import "time"

// Placeholder is a named value substituted into a template. It is either a
// plain scalar or a mapping carrying a typed payload the formatter pipeline
// understands (§3 "Placeholder value").
type Placeholder interface {
	isPlaceholder()
}

// ScalarPlaceholder wraps a plain number, string, or bool placeholder value.
type ScalarPlaceholder struct {
	Value any
}

func (ScalarPlaceholder) isPlaceholder() {}

// DatePlaceholder carries a moment in time and an optional IANA timezone
// override, consumed by the date/time/datetime formatters.
type DatePlaceholder struct {
	Value    time.Time
	Timezone string // IANA zone name; empty means "use the engine's timezone"
}

func (DatePlaceholder) isPlaceholder() {}

// DurationPlaceholder carries an elapsed-time value in milliseconds and the
// options the duration formatter uses to humanize it.
type DurationPlaceholder struct {
	ValueMS   float64
	Precision *int     // caps the number of emitted units ("largest" semantics)
	Units     []string // canonical unit names; empty means "unset"
	Round     bool
}

func (DurationPlaceholder) isPlaceholder() {}

// CurrencyPlaceholder carries a monetary amount, its ISO 4217 code, and an
// optional fractional-digit precision override.
type CurrencyPlaceholder struct {
	Value     float64
	Currency  string // ISO 4217 code; empty triggers ErrCurrencyCodeRequired
	Precision *int
}

func (CurrencyPlaceholder) isPlaceholder() {}
