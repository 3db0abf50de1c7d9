package i18n

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Catalog is an in-memory store of templates keyed by (locale, dotted-key-path).
// It supports concurrent reads and serialized writes: many goroutines may call
// Lookup/LookupWithPlural/Exists concurrently while Add is held behind a
// write lock.
type Catalog struct {
	mu   sync.RWMutex
	data map[string]map[string]string // locale -> dotted key -> template
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{data: make(map[string]map[string]string)}
}

// Add deep-merges a (possibly nested) mapping of templates into one locale.
// Existing keys are overwritten; new keys are added.
func (c *Catalog) Add(locale string, templates map[string]any) error {
	if locale == "" {
		return ErrEmptyLocale
	}

	flat := flattenTemplates(templates, "")

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.data[locale]
	if !ok {
		bucket = make(map[string]string, len(flat))
		c.data[locale] = bucket
	}
	maps.Copy(bucket, flat)

	return nil
}

// AddFlat merges an already-flattened dotted-key -> template mapping into
// one locale, without running the nested-mapping flattener again. Used by
// the loader when assembling remote-store results (§4.8 step 6).
func (c *Catalog) AddFlat(locale string, templates map[string]string) error {
	if locale == "" {
		return ErrEmptyLocale
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.data[locale]
	if !ok {
		bucket = make(map[string]string, len(templates))
		c.data[locale] = bucket
	}
	maps.Copy(bucket, templates)

	return nil
}

// Exists reports whether a literal (locale, dotted-key) pair has a stored
// template. It does not apply locale or plural fallback.
func (c *Catalog) Exists(locale, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bucket, ok := c.data[locale]
	if !ok {
		return false
	}
	_, ok = bucket[key]
	return ok
}

// Lookup resolves a single (locale, dotted-key) pair, consulting the
// region-to-base fallback chain for locale (e.g. "en-GB" -> "en") before
// reporting ErrTemplateNotFound. It does not apply plural-category
// suffixes; use LookupWithPlural for that.
func (c *Catalog) Lookup(locale, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, loc := range localeChain(locale) {
		if bucket, ok := c.data[loc]; ok {
			if tmpl, ok := bucket[key]; ok {
				return tmpl, nil
			}
		}
	}
	return "", ErrTemplateNotFound
}

// LookupWithPlural resolves a pluralized template. It first attempts the
// CLDR category suffix for (locale, count), then the legacy numeric-index
// suffix for that category (e.g. "_3" for "few"), then the legacy "_plural"
// suffix, then the bare key, trying each against the locale's fallback
// chain before moving on to the next candidate key. Reports
// ErrTemplateNotFound if none of them resolve.
func (c *Catalog) LookupWithPlural(locale, key string, count float64) (string, error) {
	rule := GetPluralRuleForLanguage(locale)
	category := rule(count)

	candidates := []string{key + "_" + category}

	if idx, ok := pluralCategoryIndex[category]; ok {
		candidates = append(candidates, key+"_"+strconv.Itoa(idx))
	}

	candidates = append(candidates, key+"_"+PluralLegacy, key)

	for _, candidate := range candidates {
		if tmpl, err := c.Lookup(locale, candidate); err == nil {
			return tmpl, nil
		}
	}

	return "", ErrTemplateNotFound
}

// localeChain expands a locale tag into its lookup order: the exact tag
// first, then its base language if the tag carries a region. A catalog
// populated only under "en-GB" is deliberately not found when queried with
// "en-US" -- only to-base fallback is performed, never sibling-region
// fallback. See SPEC_FULL.md §9 for the rationale.
func localeChain(locale string) []string {
	base := baseLanguage(locale)
	if base == strings.ToLower(locale) {
		return []string{locale}
	}
	return []string{locale, base}
}

// flattenTemplates flattens a nested template mapping into dotted keys,
// matching the catalog's (locale, dotted-key-path) addressing scheme.
func flattenTemplates(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTemplates(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// Locales returns the set of locales that currently have at least one
// stored template, sorted for deterministic iteration in tests and logs.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.data))
	for loc := range c.data {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}
