package remote_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/i18ntree/pkg/remote"
)

func TestRedisStore_HashFieldsGet_Validation(t *testing.T) {
	t.Parallel()

	store := remote.NewRedisStore(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"}))

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		_, err := store.HashFieldsGet(context.Background(), "", "en")
		require.ErrorIs(t, err, remote.ErrEmptyKey)
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		_, err := store.HashFieldsGet(context.Background(), "howdy")
		require.ErrorIs(t, err, remote.ErrNoFields)
	})
}

func TestRedisStore_ClosedStore(t *testing.T) {
	t.Parallel()

	store := remote.NewRedisStore(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"}))
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "Close must be idempotent")

	_, err := store.HashFieldsGet(context.Background(), "howdy", "en")
	require.ErrorIs(t, err, remote.ErrStoreClosed)
}
