package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ErrCacheClosed is returned by Set once Close has been called; Get keeps
// serving what is already cached.
var ErrCacheClosed = errors.New("cache: closed")

// TemplateCache is the bounded, per-entry-TTL cache described in §4.7: a
// map from a catalog key to a map[locale]template, evicted by recency and
// age. It is built on hashicorp/golang-lru/v2's expirable variant, which
// natively supports bounded-count-plus-TTL eviction.
type TemplateCache struct {
	lru    *expirable.LRU[string, map[string]string]
	mu     sync.Mutex
	closed bool
}

// DefaultTemplateCacheSize and DefaultTemplateCacheTTL match the defaults
// named in §3 "Cache entry".
const (
	DefaultTemplateCacheSize = 500
	DefaultTemplateCacheTTL  = time.Hour
)

// NewTemplateCache returns a cache bounded to maxEntries keys, each expiring
// ttl after its most recent write. A maxEntries of 0 uses
// DefaultTemplateCacheSize; a ttl of 0 uses DefaultTemplateCacheTTL.
func NewTemplateCache(maxEntries int, ttl time.Duration) *TemplateCache {
	if maxEntries <= 0 {
		maxEntries = DefaultTemplateCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTemplateCacheTTL
	}

	return &TemplateCache{
		lru: expirable.NewLRU[string, map[string]string](maxEntries, nil, ttl),
	}
}

// Get returns the locale->template mapping stored for key, filtered to
// locales when any are given. An empty locales filter returns every known
// locale for key.
func (c *TemplateCache) Get(key string, locales ...string) (map[string]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	if len(locales) == 0 {
		out := make(map[string]string, len(entry))
		for k, v := range entry {
			out[k] = v
		}
		return out, true
	}

	out := make(map[string]string, len(locales))
	var found bool
	for _, loc := range locales {
		if tmpl, ok := entry[loc]; ok {
			out[loc] = tmpl
			found = true
		}
	}
	return out, found
}

// Set merges partial into key's existing entry (new locales add, existing
// locales overwrite) and resets key's recency and TTL. Returns
// ErrCacheClosed once Close has been called.
func (c *TemplateCache) Set(key string, partial map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheClosed
	}

	existing, ok := c.lru.Get(key)
	if !ok {
		existing = make(map[string]string, len(partial))
	} else {
		merged := make(map[string]string, len(existing)+len(partial))
		for k, v := range existing {
			merged[k] = v
		}
		existing = merged
	}

	for loc, tmpl := range partial {
		existing[loc] = tmpl
	}

	c.lru.Add(key, existing)
	return nil
}

// Len reports the number of keys currently cached.
func (c *TemplateCache) Len() int {
	return c.lru.Len()
}

// Purge clears the cache.
func (c *TemplateCache) Purge() {
	c.lru.Purge()
}

// Close marks the cache closed; subsequent Set calls report ErrCacheClosed.
// Get keeps serving whatever is already cached, matching the read-after-
// close behavior callers expect when draining in-flight work during
// shutdown. Close is idempotent.
func (c *TemplateCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}
