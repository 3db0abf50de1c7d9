package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18ntree/pkg/logger"
)

// DefaultLocale is the default fallback locale used when no default is
// configured.
const DefaultLocale = "en"

// Node is the already-validated content of an "@translate" node (§3, §4.1):
// the dotted key, the optional pluralization quantity, the placeholder
// bindings, and the optional inline fallback template.
type Node struct {
	Key          string
	Quantity     *float64
	Placeholders map[string]Placeholder
	Fallback     *string
}

// FormatterError is the structured failure marker the engine produces when
// a formatter raises during interpolation (§4.6 step 6, §7 "Formatter
// failure"). It carries the original node so the caller can reattach it to
// the output tree alongside the error.
type FormatterError struct {
	Node Node
	Err  error
}

func (e *FormatterError) Error() string {
	return fmt.Sprintf("i18n: formatter failed for key %q: %v", e.Node.Key, e.Err)
}

func (e *FormatterError) Unwrap() error {
	return e.Err
}

// Engine orchestrates catalog lookup, locale fallback, plural selection,
// and interpolation for a single translation node (§4.6). An Engine's
// locale, timezone, and logger are request-local; its catalog and
// formatter registry are shared with every clone.
type Engine struct {
	locale        string
	defaultLocale string
	timezone      *time.Location
	logger        *slog.Logger
	catalog       *Catalog
	registry      *FormatterRegistry
}

// Option configures an Engine during construction.
type Option func(*Engine) error

// New constructs an Engine. All configuration happens during construction;
// the returned Engine's catalog and registry are then only ever read by
// Translate, making concurrent Translate calls on the same Engine safe
// (the catalog guards its own writes internally).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		locale:        DefaultLocale,
		defaultLocale: DefaultLocale,
		logger:        logger.New(logger.LocaleExtractor),
		catalog:       NewCatalog(),
		registry:      NewFormatterRegistry(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("i18n: applying option: %w", err)
		}
	}

	if e.locale == "" {
		return nil, ErrEmptyLocale
	}

	return e, nil
}

// WithLocale sets the request locale.
func WithLocale(locale string) Option {
	return func(e *Engine) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		e.locale = locale
		return nil
	}
}

// WithDefaultLocale sets the fallback locale consulted when the request
// locale has no hit.
func WithDefaultLocale(locale string) Option {
	return func(e *Engine) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		e.defaultLocale = locale
		return nil
	}
}

// WithTimezone sets the engine's default timezone by IANA name. An empty
// string is a no-op (no engine-level timezone; formatters fall back to
// the placeholder's own zone).
func WithTimezone(name string) Option {
	return func(e *Engine) error {
		if name == "" {
			return nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownTimezone, name)
		}
		e.timezone = loc
		return nil
	}
}

// WithLogger sets the logger used for formatter-failure and missing-key
// diagnostics. Defaults to logger.New(logger.LocaleExtractor) (JSON to
// stdout) when not set.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l != nil {
			e.logger = l
		}
		return nil
	}
}

// WithSentryLogger replaces the engine's logger with one that reports
// warnings and errors to Sentry in addition to stdout, per cfg. Useful in
// production builds that want formatter failures surfaced as Sentry events;
// missing keys are logged at Debug level and are not forwarded. Falls back
// to stdout-only logging if cfg.DSN is empty.
func WithSentryLogger(cfg logger.SentryConfig, extractors ...logger.ContextExtractor) Option {
	return func(e *Engine) error {
		e.logger = logger.NewWithSentry(cfg, extractors...)
		return nil
	}
}

// WithTranslations seeds the catalog for one locale from a (possibly
// nested) template mapping.
func WithTranslations(locale string, templates map[string]any) Option {
	return func(e *Engine) error {
		return e.catalog.Add(locale, templates)
	}
}

// WithJSONDir loads catalog templates from JSON files in an fs.FS.
// File convention: {locale}/{namespace}.json; namespace becomes a
// dotted-key prefix, matching the teacher's file-based loader convention
// generalized from (lang, namespace, key) addressing to (locale, dotted-key).
func WithJSONDir(fsys fs.FS) Option {
	return func(e *Engine) error {
		return loadCatalogDir(e, fsys, ".json", json.Unmarshal)
	}
}

// WithYAMLDir loads catalog templates from YAML files in an fs.FS, using
// the same {locale}/{namespace}.yaml convention as WithJSONDir.
func WithYAMLDir(fsys fs.FS) Option {
	return func(e *Engine) error {
		return loadCatalogDir(e, fsys, ".yaml", yaml.Unmarshal)
	}
}

func loadCatalogDir(e *Engine, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var raw map[string]any
		if err := unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		return e.catalog.Add(locale, map[string]any{namespace: raw})
	})
}

// Clone returns a new Engine sharing the catalog and formatter registry
// (read-only from the clone's perspective) while copying locale, timezone,
// and logger for request-local mutation (§4.6 "Clone", §3 "Per-request
// engine clones do not affect the shared engine's locale/timezone/logger").
func (e *Engine) Clone() *Engine {
	return &Engine{
		locale:        e.locale,
		defaultLocale: e.defaultLocale,
		timezone:      e.timezone,
		logger:        e.logger,
		catalog:       e.catalog,
		registry:      e.registry,
	}
}

// SetLocale mutates this engine instance's request locale.
func (e *Engine) SetLocale(locale string) {
	e.locale = locale
}

// SetTimezone mutates this engine instance's timezone.
func (e *Engine) SetTimezone(tz *time.Location) {
	e.timezone = tz
}

// SetLogger mutates this engine instance's logger.
func (e *Engine) SetLogger(logger *slog.Logger) {
	e.logger = logger
}

// Locale returns the engine's current request locale.
func (e *Engine) Locale() string {
	return e.locale
}

// DefaultLocale returns the engine's configured default locale.
func (e *Engine) DefaultLocale() string {
	return e.defaultLocale
}

// Timezone returns the engine's configured timezone, or nil if unset.
func (e *Engine) Timezone() *time.Location {
	return e.timezone
}

// Logger returns the engine's configured logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Catalog returns the engine's shared catalog, for callers (the loader)
// that need to add remotely fetched templates to it.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// AddTranslations deep-merges templates into the shared catalog for locale.
func (e *Engine) AddTranslations(locale string, templates map[string]any) (*Engine, error) {
	if err := e.catalog.Add(locale, templates); err != nil {
		return e, err
	}
	return e, nil
}

// GetLocales returns the locale consultation order: the request locale
// first, then the default locale, deduplicated (§4.6 step 2, §4.8 step 1).
func (e *Engine) GetLocales() []string {
	if e.locale == e.defaultLocale {
		return []string{e.locale}
	}
	return []string{e.locale, e.defaultLocale}
}

// Translate resolves a single translation node to a string (§4.6).
//
// Resolution order: exact-key lookup (with plural-category and locale
// fallback) across GetLocales(), then the inline fallback template, then
// the bare key verbatim. A formatter failure during interpolation never
// aborts resolution: it is logged and returned as a *FormatterError so the
// caller can attach it to the original node.
func (e *Engine) Translate(node Node) (string, error) {
	placeholders := make(map[string]Placeholder, len(node.Placeholders)+1)
	for k, v := range node.Placeholders {
		placeholders[k] = v
	}
	quantity := 0.0
	if node.Quantity != nil {
		quantity = *node.Quantity
		placeholders["count"] = ScalarPlaceholder{Value: quantity}
	}

	for _, locale := range e.GetLocales() {
		tmpl, err := e.catalog.LookupWithPlural(locale, node.Key, quantity)
		if errors.Is(err, ErrTemplateNotFound) {
			continue
		}
		return e.interpolate(tmpl, node, placeholders)
	}

	if node.Fallback != nil {
		return e.interpolate(*node.Fallback, node, placeholders)
	}

	ctx := logger.WithLocale(context.Background(), e.locale)
	e.logger.DebugContext(ctx, "i18n: missing translation key", slog.String("key", node.Key))
	return node.Key, nil
}

func (e *Engine) interpolate(tmpl string, node Node, placeholders map[string]Placeholder) (string, error) {
	resolveRef := func(key string) (string, bool) {
		refTmpl, err := e.catalog.LookupWithPlural(e.locale, key, 0)
		if err != nil {
			return "", false
		}
		out, err := Interpolate(refTmpl, nil, e.locale, e.timezone, e.registry, nil)
		if err != nil {
			return "", false
		}
		return out, true
	}

	out, err := Interpolate(tmpl, placeholders, e.locale, e.timezone, e.registry, resolveRef)
	if err != nil {
		ferr := &FormatterError{Node: node, Err: err}
		ctx := logger.WithLocale(context.Background(), e.locale)
		e.logger.ErrorContext(ctx, "i18n: formatter failed", slog.String("key", node.Key), slog.Any("err", err))
		return "", ferr
	}
	return out, nil
}
