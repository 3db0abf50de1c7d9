// Package loader fills an Engine's catalog on demand: cache first, one
// concurrent batch of remote fetches (one per key) for whatever the cache
// missed, and a
// write-through back into the cache for next time. Remote failures never
// surface to the caller; they degrade to a warning on the logger and
// whatever was already assembled from the cache.
package loader

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/i18ntree/pkg/cache"
	"github.com/dmitrymomot/i18ntree/pkg/i18n"
	"github.com/dmitrymomot/i18ntree/pkg/logger"
	"github.com/dmitrymomot/i18ntree/pkg/remote"
)

var (
	ErrNilEngine = errors.New("loader: engine must not be nil")

	// ErrRemoteUnavailable wraps whatever error the remote store returned
	// so callers inspecting the logged warning (or a future caller that
	// decides to surface it) can errors.Is against a stable sentinel
	// instead of the underlying store's own error type.
	ErrRemoteUnavailable = errors.New("loader: remote store unavailable")
)

// Loader resolves translation keys for an Engine, consulting a bounded
// cache before falling back to a remote store for whatever it does not
// already know.
type Loader struct {
	remote remote.Store // nil disables the remote fallback entirely
	cache  *cache.TemplateCache
	logger *slog.Logger
	group  singleflight.Group
}

// Option configures a Loader.
type Option func(*Loader)

// WithRemote sets the remote fallback store. A nil store (the default)
// makes the loader cache-only.
func WithRemote(store remote.Store) Option {
	return func(l *Loader) { l.remote = store }
}

// WithCache sets the loader's bounded cache. Defaults to a cache sized
// per cache.DefaultTemplateCacheSize/DefaultTemplateCacheTTL.
func WithCache(c *cache.TemplateCache) Option {
	return func(l *Loader) { l.cache = c }
}

// WithCacheLimits is a convenience over WithCache for the common case of
// just wanting non-default size/TTL bounds.
func WithCacheLimits(maxEntries int, ttl time.Duration) Option {
	return func(l *Loader) { l.cache = cache.NewTemplateCache(maxEntries, ttl) }
}

// WithLogger sets the logger that receives remote-failure warnings.
// Defaults to logger.New(logger.LocaleExtractor) (JSON to stdout).
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithSentryLogger replaces the loader's logger with one that reports
// remote-failure warnings to Sentry in addition to stdout, per cfg. Falls
// back to stdout-only logging if cfg.DSN is empty.
func WithSentryLogger(cfg logger.SentryConfig, extractors ...logger.ContextExtractor) Option {
	return func(l *Loader) { l.logger = logger.NewWithSentry(cfg, extractors...) }
}

// New constructs a Loader. With no options it is a cache-only loader
// backed by a default-sized TemplateCache.
func New(opts ...Option) *Loader {
	l := &Loader{
		cache:  cache.NewTemplateCache(0, 0),
		logger: logger.New(logger.LocaleExtractor),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Disconnect closes the cache (rejecting further writes) and releases the
// remote store, if it implements io.Closer-like cleanup via Close().
func (l *Loader) Disconnect() error {
	_ = l.cache.Close()

	if closer, ok := l.remote.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Load resolves keys against engine.GetLocales(), preferring the cache
// and falling back to the remote store for keys the cache does not
// have, then writes the assembled result into both the engine's catalog
// and the cache.
func (l *Loader) Load(ctx context.Context, engine *i18n.Engine, keys []string) (map[string]map[string]string, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if len(keys) == 0 {
		return map[string]map[string]string{}, nil
	}

	locales := engine.GetLocales()
	result := make(map[string]map[string]string, len(locales))
	for _, loc := range locales {
		result[loc] = make(map[string]string)
	}

	var unknown []string
	for _, key := range keys {
		hit, ok := l.cache.Get(key, locales...)
		if ok && len(hit) == len(locales) {
			for loc, tmpl := range hit {
				result[loc][key] = tmpl
			}
			continue
		}
		for loc, tmpl := range hit {
			result[loc][key] = tmpl
		}
		unknown = append(unknown, key)
	}

	if l.remote != nil && len(unknown) > 0 {
		if err := l.loadRemote(ctx, unknown, locales, result); err != nil {
			logCtx := ctx
			if len(locales) > 0 {
				logCtx = logger.WithLocale(ctx, locales[0])
			}
			l.logger.WarnContext(logCtx, "loader: remote fetch failed, proceeding with cached templates",
				slog.Any("err", errors.Join(ErrRemoteUnavailable, err)),
				slog.Int("unresolved_keys", len(unknown)),
			)
		}
	}

	for loc, templates := range result {
		if len(templates) == 0 {
			continue
		}
		if err := engine.Catalog().AddFlat(loc, templates); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// loadRemote fans the per-key fetches out concurrently (deduplicated via
// singleflight so concurrent Load calls racing on the same key collapse
// into a single remote round trip), writes hits through to the cache, and
// folds them into result. Keys are independent, so this is the loader's
// one batched suspension point: every unknown key is in flight at once
// rather than paid for sequentially.
func (l *Loader) loadRemote(ctx context.Context, unknown, locales []string, result map[string]map[string]string) error {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	for _, key := range unknown {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()

			v, err, _ := l.group.Do(key, func() (any, error) {
				values, err := l.remote.HashFieldsGet(ctx, key, locales...)
				if err != nil {
					return nil, err
				}
				return values, nil
			})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}

			values, _ := v.([]*string)
			partial := make(map[string]string, len(locales))
			for i, loc := range locales {
				if i >= len(values) || values[i] == nil {
					continue
				}
				partial[loc] = *values[i]
				result[loc][key] = *values[i]
			}
			if len(partial) > 0 {
				if err := l.cache.Set(key, partial); err != nil {
					l.logger.DebugContext(ctx, "loader: cache write skipped", slog.String("key", key), slog.Any("err", err))
				}
			}
		}(key)
	}

	wg.Wait()

	return firstErr
}
