package i18n

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols is a small hand-maintained table of ISO 4217 symbols,
// grounded on the teacher's format_predefined.go locale constructors.
// golang.org/x/text/currency is used only to validate the ISO code
// (currency.ParseISO); symbol lookup and before/after placement stay a
// plain table because this build does not depend on currency.Amount's
// formatting surface.
var currencySymbols = map[string]string{
	"USD": "$", "CAD": "$", "AUD": "$", "NZD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"PLN": "zł",
	"RUB": "₽",
	"BRL": "R$",
	"CHF": "CHF",
	"SAR": "SAR",
}

func currencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

func formatCurrency(ph Placeholder, locale string, _ *time.Location) (string, error) {
	cp, ok := ph.(CurrencyPlaceholder)
	if !ok {
		return stringifyPlaceholder(ph), nil
	}

	if cp.Currency == "" {
		return "", ErrCurrencyCodeRequired
	}

	unit, err := currency.ParseISO(cp.Currency)
	if err != nil {
		return "", ErrUnknownCurrency
	}

	minDigits, maxDigits := defaultFractionDigits(unit)
	if cp.Precision != nil {
		minDigits, maxDigits = *cp.Precision, *cp.Precision
	}

	tag := language.Make(locale)
	printer := message.NewPrinter(tag)
	amount := printer.Sprint(number.Decimal(cp.Value,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))

	lf := lookupLocaleFormat(locale)
	symbol := currencySymbol(cp.Currency)

	if lf.currencyPosition == "after" {
		return amount + " " + symbol, nil
	}
	return symbol + amount, nil
}

// defaultFractionDigits returns the currency's conventional fractional
// digit count (2 for most currencies, 0 for currencies like JPY/KRW that
// have no minor unit in everyday use).
func defaultFractionDigits(unit currency.Unit) (min, max int) {
	switch unit.String() {
	case "JPY", "KRW":
		return 0, 0
	default:
		return 2, 2
	}
}
