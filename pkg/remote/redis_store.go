package remote

import (
	"context"
	"errors"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore adapts a go-redis client to Store, reading template hashes
// written as HSET <key> <locale> <template>, matching the wire schema
// named for the remote store (§6: "Remote store schema").
type RedisStore struct {
	client goredis.UniversalClient

	mu     sync.RWMutex
	closed bool
}

// NewRedisStore wraps an already-connected client. Use Dial to obtain one
// with retry and timeout defaults already applied.
func NewRedisStore(client goredis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// HashFieldsGet issues a single HMGet against key, one result per field
// in the same order as fields. Returns ErrStoreClosed once Close has been
// called.
func (s *RedisStore) HashFieldsGet(ctx context.Context, key string, fields ...string) ([]*string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	raw, err := s.client.HMGet(ctx, key, fields...).Result()
	if err != nil {
		return nil, errors.Join(ErrHashFieldsGet, err)
	}

	out := make([]*string, len(raw))
	for i, v := range raw {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		out[i] = &s
	}
	return out, nil
}

// Close marks the store closed and releases the underlying client. Close
// is idempotent; prefer Shutdown when the client is shared with other
// callers and its lifecycle is managed elsewhere.
func (s *RedisStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}
