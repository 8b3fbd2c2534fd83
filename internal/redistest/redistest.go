// Package redistest provides in-memory store helpers for tests.
package redistest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/kvbridge/kvbridge/pkg/pool"
)

// Run starts an in-memory store for the test and returns it with a
// cleanup function.
func Run(t *testing.T) (*miniredis.Miniredis, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	return mr, mr.Close
}

// URL returns the adapter URL for an in-memory store.
func URL(mr *miniredis.Miniredis) string {
	return fmt.Sprintf("redis://%s", mr.Addr())
}

// NewPool builds a connection pool of the given size against the
// in-memory store, with a cleanup function closing both the pool and
// the backing client.
func NewPool(t *testing.T, mr *miniredis.Miniredis, size int) (*pool.Pool, func()) {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		PoolSize: size + 1,
	})
	p, err := pool.New(&pool.Config{
		Dial: func(ctx context.Context) (pool.Conn, error) {
			return client.Conn(), nil
		},
		Size:           size,
		AcquireTimeout: time.Second,
	})
	require.NoError(t, err, "failed to create pool")

	cleanup := func() {
		_ = p.Close()
		_ = client.Close()
	}
	return p, cleanup
}

// NewClient returns a raw client against the in-memory store for tests
// that need a second independent connection, e.g. a concurrent writer.
func NewClient(t *testing.T, mr *miniredis.Miniredis) (*redis.Client, func()) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return client, func() { _ = client.Close() }
}
