package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type durationUnit struct {
	name string
	ms   float64
}

// durationUnits is ordered largest to smallest. Year and month are
// approximated with average Gregorian lengths (365.2425 days/year,
// year/12 per month) since the duration formatter works off a plain
// millisecond count with no calendar anchor.
var durationUnits = []durationUnit{
	{"year", 365.2425 * 86400000},
	{"month", 365.2425 * 86400000 / 12},
	{"week", 7 * 86400000},
	{"day", 86400000},
	{"hour", 3600000},
	{"minute", 60000},
	{"second", 1000},
	{"millisecond", 1},
}

// normalizeUnitName accepts canonical singular or plural unit names
// ("minute" or "minutes") and returns the canonical singular form, or ""
// if unrecognized.
func normalizeUnitName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, u := range durationUnits {
		if name == u.name || name == u.name+"s" {
			return u.name
		}
	}
	return ""
}

// durationUnitWords gives the localized singular unit word for the handful
// of locales this build carries vocabulary for; locales absent from this
// table fall back to the English canonical name. Plurals are derived with
// a regular "-s" suffix, except for the few words in this table whose plural
// is formed otherwise (see pluralizeUnit) -- rich grammatical pluralization
// beyond that is explicitly out of scope (§1 "rich grammatical rules beyond
// the plural categories").
var durationUnitWords = map[string]map[string]string{
	"fr": {
		"year": "an", "month": "mois", "week": "semaine", "day": "jour",
		"hour": "heure", "minute": "minute", "second": "seconde", "millisecond": "milliseconde",
	},
	"es": {
		"year": "año", "month": "mes", "week": "semana", "day": "día",
		"hour": "hora", "minute": "minuto", "second": "segundo", "millisecond": "milisegundo",
	},
	"de": {
		"year": "Jahr", "month": "Monat", "week": "Woche", "day": "Tag",
		"hour": "Stunde", "minute": "Minute", "second": "Sekunde", "millisecond": "Millisekunde",
	},
}

// pluralizeUnit localizes unit to the given base locale (if this build
// carries vocabulary for it) and appends the regular "-s" plural when
// count != 1, or the word's own plural ending for the words of
// durationUnitWords that do not take "-s".
func pluralizeUnit(unit string, count float64, baseLocale string) string {
	word := unit
	if words, ok := durationUnitWords[baseLocale]; ok {
		if w, ok := words[unit]; ok {
			word = w
		}
	}
	if count == 1 {
		return word
	}
	switch word {
	case "mois":
		return word
	case "mes":
		return "meses"
	case "Jahr", "Monat", "Tag":
		return word + "e"
	case "Woche", "Stunde", "Minute", "Sekunde", "Millisekunde":
		return word + "n"
	}
	return word + "s"
}

// formatFraction renders a fractional unit count with a fixed 4-decimal-digit
// computation, trimmed of all trailing zeros (and of the decimal point when
// no fractional digit remains), then substitutes the locale's decimal
// separator (§9 "Fractional duration digit count" policy decision).
func formatFraction(v float64, locale string) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	if fracPart == "" {
		return intPart
	}

	lf := lookupLocaleFormat(locale)
	return intPart + lf.decimalSeparator + fracPart
}

func formatDuration(ph Placeholder, locale string, _ *time.Location) (string, error) {
	dp, ok := ph.(DurationPlaceholder)
	if !ok {
		return stringifyPlaceholder(ph), nil
	}

	units := durationUnits
	if len(dp.Units) > 0 {
		filtered := make([]durationUnit, 0, len(dp.Units))
		wanted := make(map[string]bool, len(dp.Units))
		for _, raw := range dp.Units {
			if canon := normalizeUnitName(raw); canon != "" {
				wanted[canon] = true
			}
		}
		for _, u := range durationUnits {
			if wanted[u.name] {
				filtered = append(filtered, u)
			}
		}
		if len(filtered) > 0 {
			units = filtered
		}
	}

	baseLocale := baseLanguage(locale)

	remaining := dp.ValueMS
	type part struct {
		count float64
		unit  string
	}
	var parts []part

	for i, u := range units {
		isLast := i == len(units)-1
		if isLast {
			frac := remaining / u.ms
			if dp.Round {
				frac = math.Round(frac)
			}
			if frac != 0 {
				parts = append(parts, part{count: frac, unit: u.name})
			}
			remaining = 0
			continue
		}

		count := float64(int64(remaining / u.ms))
		remaining -= count * u.ms
		if count != 0 {
			parts = append(parts, part{count: count, unit: u.name})
		}
	}

	if dp.Precision != nil && *dp.Precision > 0 && len(parts) > *dp.Precision {
		parts = parts[:*dp.Precision]
	}

	if len(parts) == 0 {
		return formatFraction(0, baseLocale) + " " + pluralizeUnit(units[len(units)-1].name, 0, baseLocale), nil
	}

	rendered := make([]string, len(parts))
	for i, p := range parts {
		var countStr string
		if p.count == float64(int64(p.count)) {
			countStr = strconv.FormatInt(int64(p.count), 10)
		} else {
			countStr = formatFraction(p.count, baseLocale)
		}
		rendered[i] = fmt.Sprintf("%s %s", countStr, pluralizeUnit(p.unit, p.count, baseLocale))
	}

	return strings.Join(rendered, ", "), nil
}
