package remote

import (
	"context"
	"errors"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrEmptyConnectionURL = errors.New("remote: empty connection URL")
	ErrFailedToParseURL   = errors.New("remote: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("remote: failed to establish connection")
	ErrHealthcheckFailed  = errors.New("remote: healthcheck failed")
)

const (
	dialRetryAttempts = 3
	dialRetryInterval = 2 * time.Second
	dialTimeout       = 5 * time.Second
	readTimeout       = 3 * time.Second
	writeTimeout      = 3 * time.Second
)

// Dial connects to the remote key/value store at url (a redis:// or rediss://
// URL) and returns a client ready for NewRedisStore, retrying with a fixed
// backoff if the store is not yet reachable. This is the only way this
// package establishes a connection: the engine and loader never need the
// pooling/retry knobs a general-purpose Redis client wrapper would expose,
// since HashFieldsGet is the store's only call.
func Dial(ctx context.Context, url string) (goredis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = readTimeout
	opts.WriteTimeout = writeTimeout

	for attempt := 0; attempt < dialRetryAttempts; attempt++ {
		client := goredis.NewClient(opts)

		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if waitErr := wait(ctx, time.Duration(attempt+1)*dialRetryInterval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, ErrConnectionFailed
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Healthcheck returns a closure that validates connectivity to the remote
// store, compatible with the func(context.Context) error shape most health
// check registries expect.
func Healthcheck(client goredis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// Shutdown returns a function that closes client, suitable for registration
// with a process shutdown sequence.
func Shutdown(client goredis.UniversalClient) func(context.Context) error {
	return func(context.Context) error {
		return client.Close()
	}
}
