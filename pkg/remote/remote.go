// Package remote defines the capability a Loader consults when a
// translation key is not already in cache: a per-key hash of
// locale -> template, backed by a remote key/value store.
package remote

import (
	"context"
	"errors"
)

// Store is the capability the loader batches requests against. Field
// lookups missing from the remote hash come back as nil entries at the
// matching position, mirroring Redis HMGet semantics.
type Store interface {
	// HashFieldsGet returns one entry per field, in the same order as
	// fields, nil at positions where key has no such field.
	HashFieldsGet(ctx context.Context, key string, fields ...string) ([]*string, error)
}

var (
	ErrEmptyKey      = errors.New("remote: key must not be empty")
	ErrNoFields      = errors.New("remote: at least one field is required")
	ErrStoreClosed   = errors.New("remote: store is closed")
	ErrHashFieldsGet = errors.New("remote: hash fields get failed")
)
