package i18n

import (
	"errors"
	"time"

	"github.com/goodsign/monday"
)

// dateLongLayout and friends are Go reference layouts; goodsign/monday
// formats against the reference layout first, then substitutes the
// localized month and weekday names for the target locale -- x/text has no
// localized calendar name table of its own (see SPEC_FULL.md §4.10).
const (
	dateLongLayout     = "2 January 2006"
	dateTimeLongLayout = "Monday 2 January 2006 15:04"
)

// resolveZone picks the effective timezone for a date-like placeholder:
// the placeholder's own override first, then the engine's configured
// timezone, then the value's own zone (§4.5 "date").
func resolveZone(ph DatePlaceholder, engineTZ *time.Location) (*time.Location, error) {
	if ph.Timezone != "" {
		loc, err := time.LoadLocation(ph.Timezone)
		if err != nil {
			return nil, errors.Join(ErrUnknownTimezone, err)
		}
		return loc, nil
	}
	if engineTZ != nil {
		return engineTZ, nil
	}
	return ph.Value.Location(), nil
}

func formatDate(ph Placeholder, locale string, tz *time.Location) (string, error) {
	dp, ok := ph.(DatePlaceholder)
	if !ok {
		return stringifyPlaceholder(ph), nil
	}

	zone, err := resolveZone(dp, tz)
	if err != nil {
		return "", err
	}

	lf := lookupLocaleFormat(locale)
	return monday.Format(dp.Value.In(zone), dateLongLayout, lf.mondayLocale), nil
}

func formatTime(ph Placeholder, locale string, tz *time.Location) (string, error) {
	dp, ok := ph.(DatePlaceholder)
	if !ok {
		return stringifyPlaceholder(ph), nil
	}

	zone, err := resolveZone(dp, tz)
	if err != nil {
		return "", err
	}

	lf := lookupLocaleFormat(locale)
	return dp.Value.In(zone).Format(lf.shortTimeLayout), nil
}

func formatDateTime(ph Placeholder, locale string, tz *time.Location) (string, error) {
	dp, ok := ph.(DatePlaceholder)
	if !ok {
		return stringifyPlaceholder(ph), nil
	}

	zone, err := resolveZone(dp, tz)
	if err != nil {
		return "", err
	}

	lf := lookupLocaleFormat(locale)
	return monday.Format(dp.Value.In(zone), dateTimeLongLayout, lf.mondayLocale), nil
}
