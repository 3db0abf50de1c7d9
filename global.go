package i18ntree

import (
	"context"
	"sync"
)

var (
	globalMu   sync.RWMutex
	globalInst *Translator
)

// Init constructs the package-level Translator that the package-level
// Translate uses. The original this package is modeled on keeps a single
// process-wide engine and loader; this is the equivalent for callers who
// want that convenience instead of threading a *Translator through their
// own code (§9 "Process-wide singletons").
func Init(opts ...Option) error {
	t, err := New(opts...)
	if err != nil {
		return err
	}

	globalMu.Lock()
	globalInst = t
	globalMu.Unlock()
	return nil
}

// Translate delegates to the Translator installed by Init. Calling it
// before Init returns ErrNotInitialized.
func Translate(ctx context.Context, v Value, opts ...CallOption) (Value, error) {
	globalMu.RLock()
	t := globalInst
	globalMu.RUnlock()

	if t == nil {
		return nil, ErrNotInitialized
	}
	return t.Translate(ctx, v, opts...)
}
