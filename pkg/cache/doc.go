// Package cache provides the bounded, per-entry-TTL template cache that sits
// in front of the remote translation store.
//
// [TemplateCache] maps a catalog key to a map[locale]template, evicted by
// recency and age. It is built on [github.com/hashicorp/golang-lru/v2]'s
// expirable variant, which natively supports bounded-count-plus-TTL
// eviction:
//
//	c := cache.NewTemplateCache(cache.DefaultTemplateCacheSize, cache.DefaultTemplateCacheTTL)
//
//	c.Set("plural-dog", map[string]string{"en": "{{count}} dogs"})
//	templates, ok := c.Get("plural-dog", "en", "fr")
//
// Set merges new locales into an existing entry rather than replacing it,
// since the loader that owns this cache fetches a key's missing locales
// independently of the ones it already has cached. Set returns
// [ErrCacheClosed] once Close has been called; Get keeps serving whatever
// is already cached.
package cache
