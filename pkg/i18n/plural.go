package i18n

import (
	"math"
	"strings"
)

// PluralRule determines which plural category applies to a given count.
// It follows Unicode CLDR (Common Locale Data Repository) guidelines.
type PluralRule func(n float64) string

// Plural category constants as defined by Unicode CLDR, plus the legacy
// "plural" suffix some catalogs use as a single catch-all sibling key.
const (
	PluralZero   = "zero"
	PluralOne    = "one"
	PluralTwo    = "two"
	PluralFew    = "few"
	PluralMany   = "many"
	PluralOther  = "other"
	PluralLegacy = "plural"
)

// DefaultPluralRule provides a generic plural rule that works reasonably
// well for languages without a specific rule. It distinguishes between
// zero, one, few, many, and other.
var DefaultPluralRule PluralRule = func(n float64) string {
	if n == 0 {
		return PluralZero
	}

	absN := math.Abs(n)

	if absN == 1 {
		return PluralOne
	}
	if absN >= 2 && absN <= 4 {
		return PluralFew
	}
	if absN > 4 && absN < 20 {
		return PluralMany
	}
	return PluralOther
}

// EnglishPluralRule implements plural rules for English and similar languages.
// Categories: zero (0), one (1), other (everything else).
var EnglishPluralRule PluralRule = func(n float64) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule implements plural rules for Slavic languages
// (Polish, Czech, Ukrainian, Croatian, Serbian, etc.)
// Categories: zero, one, few, many.
var SlavicPluralRule PluralRule = func(n float64) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}

	absN := int64(math.Abs(n))
	mod10 := absN % 10
	mod100 := absN % 100

	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}

	return PluralMany
}

// RomancePluralRule implements plural rules for Romance languages
// (French, Italian, Portuguese, but NOT Spanish which is simpler).
// Categories: one (0, 1), many (1,000,000+), other.
var RomancePluralRule PluralRule = func(n float64) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	if math.Abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// GermanicPluralRule implements plural rules for Germanic languages
// (German, Dutch, Swedish, Norwegian, Danish).
// Categories: one (1), other (everything else including 0).
var GermanicPluralRule PluralRule = func(n float64) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// AsianPluralRule implements plural rules for Asian languages that don't
// distinguish plural forms (Japanese, Chinese, Korean, Thai, Vietnamese).
// Categories: other (all numbers).
var AsianPluralRule PluralRule = func(_ float64) string {
	return PluralOther
}

// ArabicPluralRule implements CLDR's six-category Arabic plural rule.
// Categories: zero, one, two, few, many, other.
var ArabicPluralRule PluralRule = func(n float64) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	if n == 2 || n == -2 {
		return PluralTwo
	}

	mod100 := int64(math.Abs(n)) % 100

	if mod100 >= 3 && mod100 <= 10 {
		return PluralFew
	}
	if mod100 >= 11 && mod100 <= 99 {
		return PluralMany
	}

	return PluralOther
}

// SpanishPluralRule implements plural rules for Spanish.
// Simpler than other Romance languages.
// Categories: one (1), many (1,000,000+), other.
var SpanishPluralRule PluralRule = func(n float64) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	if math.Abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// GetPluralRuleForLanguage returns the appropriate plural rule for a given
// language code. It uses the two-letter ISO 639-1 language code (e.g.,
// "en", "fr", "pl") and ignores any region suffix. Falls back to
// DefaultPluralRule for unknown languages.
func GetPluralRuleForLanguage(lang string) PluralRule {
	lang = baseLanguage(lang)

	switch lang {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

// pluralCategoryIndex maps a CLDR plural category to the legacy numeric
// suffix some catalogs use in place of the named category (e.g.
// "plural-dog_3" instead of "plural-dog_few").
var pluralCategoryIndex = map[string]int{
	PluralZero:  0,
	PluralOne:   1,
	PluralTwo:   2,
	PluralFew:   3,
	PluralMany:  4,
	PluralOther: 5,
}

// SupportedPluralForms returns which plural categories a rule actually
// produces. Useful for validating catalogs at load time.
func SupportedPluralForms(rule PluralRule) []string {
	forms := make(map[string]bool)

	testNumbers := []float64{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 100, 1000, 1000000}

	for _, n := range testNumbers {
		forms[rule(n)] = true
	}

	order := []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}
	var result []string
	for _, form := range order {
		if forms[form] {
			result = append(result, form)
		}
	}

	return result
}

// baseLanguage strips the region from a language tag and lowercases the
// result (e.g., "en-US" -> "en"). A tag with no region separator is
// returned lowercased.
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return strings.ToLower(lang[:i])
	}
	return strings.ToLower(lang)
}
