//go:build integration

package remote_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18ntree/pkg/remote"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := remote.Dial(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedisStore_HashFieldsGet(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)
	store := remote.NewRedisStore(client)

	require.NoError(t, client.HSet(ctx, "howdy", "en", "Howdy", "fr", "Salut").Err())

	t.Run("returns values in field order, nil for missing fields", func(t *testing.T) {
		got, err := store.HashFieldsGet(ctx, "howdy", "en", "de", "fr")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "Howdy", *got[0])
		require.Nil(t, got[1])
		require.Equal(t, "Salut", *got[2])
	})

	t.Run("returns all nils for an unknown key", func(t *testing.T) {
		got, err := store.HashFieldsGet(ctx, "missing-key", "en", "fr")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Nil(t, got[0])
		require.Nil(t, got[1])
	})
}
