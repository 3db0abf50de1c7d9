package i18ntree

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/i18ntree/pkg/i18n"
	"github.com/dmitrymomot/i18ntree/pkg/loader"
)

// Translator orchestrates one translation pass over a Value tree: walk to
// find every translation node, batch-load whatever the catalog does not
// already know, then resolve every node concurrently against the now
// fully-populated catalog (§9 "Generator/coroutine resolution").
type Translator struct {
	engine *i18n.Engine
	loader *loader.Loader
}

// Option configures a Translator.
type Option func(*Translator) error

// WithEngine sets the shared engine new Translate calls clone from.
func WithEngine(engine *i18n.Engine) Option {
	return func(t *Translator) error {
		if engine == nil {
			return errors.New("i18ntree: engine must not be nil")
		}
		t.engine = engine
		return nil
	}
}

// WithLoader sets the loader consulted for catalog keys the engine does
// not already have. A nil loader (the default) makes Translate rely
// entirely on whatever the engine was constructed with.
func WithLoader(l *loader.Loader) Option {
	return func(t *Translator) error {
		t.loader = l
		return nil
	}
}

// New constructs a Translator. WithEngine is required.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.engine == nil {
		return nil, errors.New("i18ntree: an engine is required")
	}
	return t, nil
}

// CallOption overrides per-call locale/timezone on a cloned engine,
// leaving the Translator's shared engine untouched (§3 "Per-request
// engine clones do not affect the shared engine").
type CallOption func(*i18n.Engine)

// WithLocale overrides the locale for one Translate call.
func WithLocale(locale string) CallOption {
	return func(e *i18n.Engine) { e.SetLocale(locale) }
}

// WithTimezone overrides the timezone for one Translate call by IANA name.
// An unparsable name is silently ignored, leaving the engine's existing
// timezone in place.
func WithTimezone(name string) CallOption {
	return func(e *i18n.Engine) {
		loc, err := time.LoadLocation(name)
		if err == nil {
			e.SetTimezone(loc)
		}
	}
}

// Translate walks v, resolves every translation node it finds, and
// returns a structurally congruent Value differing only at those
// positions (§2, §3 invariants, §8 universal invariants). It never
// mutates v and never returns an error for ordinary translation
// failures: missing keys surface as the raw key, formatter failures as
// an augmented node carrying an "error" field (§7).
func (t *Translator) Translate(ctx context.Context, v Value, opts ...CallOption) (Value, error) {
	engine := t.engine.Clone()
	for _, opt := range opts {
		opt(engine)
	}

	// v is walked inside a one-element sequence so that a translation node
	// at the root resolves into a slot that is read after resolution.
	root, pendings, keys := Walk(Seq{v})

	if t.loader != nil && len(keys) > 0 {
		if _, err := t.loader.Load(ctx, engine, keys); err != nil {
			return nil, err
		}
	}

	// Sibling slots of one map write into the same *Map, so slot writes
	// are serialized.
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, p := range pendings {
		p := p
		set := p.set
		p.set = func(rv Value) {
			mu.Lock()
			defer mu.Unlock()
			set(rv)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolveNode(engine, p)
		}()
	}
	wg.Wait()

	return root.(Seq)[0], nil
}

func resolveNode(engine *i18n.Engine, p *pending) {
	out, err := engine.Translate(p.node)
	if err == nil {
		p.set(String(out))
		return
	}

	var ferr *i18n.FormatterError
	if errors.As(err, &ferr) {
		p.set(attachError(p.raw, ferr))
		return
	}

	p.set(p.raw)
}

// attachError augments a copy of raw with an "error" field carrying
// ferr's message, leaving "@translate" untouched (§7 "Formatter
// failure", §8 scenario 6).
func attachError(raw Value, ferr *i18n.FormatterError) Value {
	m, ok := raw.(*Map)
	if !ok {
		return raw
	}
	clone := m.Clone()
	clone.Set("error", String(ferr.Error()))
	return clone
}

// BuildTranslateNode constructs the canonical wire form of a translation
// node (§6) as a Value tree, for callers assembling input programmatically
// instead of decoding it from JSON/YAML.
func BuildTranslateNode(key string, placeholders map[string]Value, opts ...NodeOption) Value {
	body := NewMap()
	body.Set("key", String(key))

	cfg := nodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.quantity != nil {
		body.Set("quantity", Number(*cfg.quantity))
	}
	if cfg.fallback != nil {
		body.Set("fallback", String(*cfg.fallback))
	}
	if len(placeholders) > 0 {
		ph := NewMap()
		for name, val := range placeholders {
			ph.Set(name, val)
		}
		body.Set("placeholders", ph)
	}

	out := NewMap()
	out.Set(translateKey, body)
	return out
}

type nodeConfig struct {
	quantity *float64
	fallback *string
}

// NodeOption configures BuildTranslateNode.
type NodeOption func(*nodeConfig)

// WithQuantity sets the node's pluralization quantity.
func WithQuantity(q float64) NodeOption {
	return func(c *nodeConfig) { c.quantity = &q }
}

// WithFallback sets the node's inline fallback template.
func WithFallback(tmpl string) NodeOption {
	return func(c *nodeConfig) { c.fallback = &tmpl }
}
