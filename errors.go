package i18ntree

import "errors"

// ErrNotInitialized is returned by the package-level Translate facade when
// called before Init (§9 "Process-wide singletons").
var ErrNotInitialized = errors.New("i18ntree: package not initialized, call Init first")
