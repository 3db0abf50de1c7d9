package i18n

import (
	"regexp"
	"strings"
	"time"
)

var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)
	referencePattern   = regexp.MustCompile(`\$t\(([^)]+)\)`)
)

// Interpolate substitutes {{name}} and {{name, format}} placeholders into
// template (§4.4), then resolves $t(other-key) references in a second pass
// against resolveRef. Output is not HTML-escaped; literal markup in
// templates passes through verbatim.
func Interpolate(
	template string,
	placeholders map[string]Placeholder,
	locale string,
	tz *time.Location,
	registry *FormatterRegistry,
	resolveRef func(key string) (string, bool),
) (string, error) {
	result, err := interpolatePlaceholders(template, placeholders, locale, tz, registry)
	if err != nil {
		return "", err
	}
	return interpolateReferences(result, resolveRef), nil
}

func interpolatePlaceholders(
	template string,
	placeholders map[string]Placeholder,
	locale string,
	tz *time.Location,
	registry *FormatterRegistry,
) (string, error) {
	var firstErr error

	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if firstErr != nil {
			return match
		}

		groups := placeholderPattern.FindStringSubmatch(match)
		inner := groups[1]

		name, format, hasFormat := strings.Cut(inner, ",")
		name = strings.TrimSpace(name)

		ph, ok := placeholders[name]
		if !ok {
			return ""
		}

		if !hasFormat {
			return stringifyPlaceholder(ph)
		}

		formatName := strings.TrimSpace(format)
		fn, ok := registry.Lookup(formatName)
		if !ok {
			return stringifyPlaceholder(ph)
		}

		out, err := fn(ph, locale, tz)
		if err != nil {
			firstErr = err
			return match
		}
		return out
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

func interpolateReferences(template string, resolveRef func(string) (string, bool)) string {
	if resolveRef == nil {
		return template
	}

	return referencePattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := referencePattern.FindStringSubmatch(match)
		key := strings.TrimSpace(groups[1])

		if resolved, ok := resolveRef(key); ok {
			return resolved
		}
		return match
	})
}
