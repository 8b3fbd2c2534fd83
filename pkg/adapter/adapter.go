// Package adapter wires the connection pool, primitive modules,
// batching engines, and script registry into one handle over a single
// store. Construction is fail-fast: a malformed URL or an unreachable
// store is reported by New, never deferred to the first operation.
package adapter

import (
	"context"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pipeline"
	"github.com/kvbridge/kvbridge/pkg/pool"
	"github.com/kvbridge/kvbridge/pkg/primitive"
	"github.com/kvbridge/kvbridge/pkg/script"
	"github.com/kvbridge/kvbridge/pkg/transaction"
)

const defaultPoolSize = 10

// Config contains configuration for an Adapter.
type Config struct {
	// URL locates the store, e.g. redis://localhost:6379/0.
	URL string

	// PoolSize bounds concurrent leased connections. Defaults to 10.
	PoolSize int

	// AcquireTimeout bounds how long an operation waits for a free
	// connection before failing with PoolExhausted. Defaults to 5s.
	AcquireTimeout time.Duration

	// DefaultTTL applies when Strings.SetWithTTL is called with a zero
	// ttl. Zero means no expiry.
	DefaultTTL time.Duration

	// Logger receives connection lifecycle events at debug level.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.URL == "" {
		return errors.InvalidArgument("url is required")
	}
	if cfg.PoolSize < 0 {
		return errors.InvalidArgument("pool size cannot be negative")
	}
	return nil
}

// Adapter is the top-level handle. One Adapter owns one pool and one
// script registry; nothing is shared across instances, so two adapters
// pointed at the same store never interfere through client state.
type Adapter struct {
	client  *redis.Client
	pool    *pool.Pool
	scripts *script.Registry

	strings *primitive.Strings
	hashes  *primitive.Hashes
	sets    *primitive.Sets
	limiter *script.RateLimiter
}

// New connects to the store described by cfg.URL. The URL is parsed
// eagerly and one connection is dialed and pinged before New returns,
// so a bad address fails here with InvalidArgument or ConnectFailed.
func New(ctx context.Context, cfg *Config) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid store url")
	}
	size := cfg.PoolSize
	if size == 0 {
		size = defaultPoolSize
	}
	// The client only serves as a dialer; its internal pool must be able
	// to back every lease the adapter's pool hands out.
	opts.PoolSize = size
	client := redis.NewClient(opts)

	p, err := pool.New(&pool.Config{
		Dial: func(ctx context.Context) (pool.Conn, error) {
			return client.Conn(), nil
		},
		Size:           size,
		AcquireTimeout: cfg.AcquireTimeout,
		Logger:         cfg.Logger,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	// Eager reachability probe.
	if err := p.WithConn(ctx, func(conn pool.Conn) error {
		if err := conn.Ping(ctx).Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeConnectFailed, "store is unreachable")
		}
		return nil
	}); err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}

	registry, err := script.NewRegistry(&script.Config{Pool: p})
	if err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}
	if err := script.RegisterBuiltins(registry); err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}

	strs, err := primitive.NewStrings(&primitive.StringsConfig{
		Pool:       p,
		Scripts:    registry,
		DefaultTTL: cfg.DefaultTTL,
	})
	if err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}
	hashes, err := primitive.NewHashes(&primitive.HashesConfig{Pool: p})
	if err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}
	sets, err := primitive.NewSets(&primitive.SetsConfig{Pool: p})
	if err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}
	limiter, err := script.NewRateLimiter(registry)
	if err != nil {
		_ = p.Close()
		_ = client.Close()
		return nil, err
	}

	return &Adapter{
		client:  client,
		pool:    p,
		scripts: registry,
		strings: strs,
		hashes:  hashes,
		sets:    sets,
		limiter: limiter,
	}, nil
}

// Strings returns the string operations module.
func (a *Adapter) Strings() *primitive.Strings {
	return a.strings
}

// Hashes returns the hash operations module.
func (a *Adapter) Hashes() *primitive.Hashes {
	return a.hashes
}

// Sets returns the set operations module.
func (a *Adapter) Sets() *primitive.Sets {
	return a.sets
}

// Scripts returns the adapter's script registry.
func (a *Adapter) Scripts() *script.Registry {
	return a.scripts
}

// RateLimiter returns the fixed-window rate limiter built on the
// rate_limiter script.
func (a *Adapter) RateLimiter() *script.RateLimiter {
	return a.limiter
}

// Pool returns the adapter's connection pool.
func (a *Adapter) Pool() *pool.Pool {
	return a.pool
}

// Pipeline starts an empty command batch bound to the adapter's pool.
func (a *Adapter) Pipeline() *pipeline.Pipeline {
	return pipeline.New(a.pool)
}

// Transaction starts a fresh optimistic transaction bound to the
// adapter's pool.
func (a *Adapter) Transaction() (*transaction.Tx, error) {
	return transaction.New(&transaction.Config{Pool: a.pool})
}

// Ping checks store reachability over a pooled connection.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.pool.WithConn(ctx, func(conn pool.Conn) error {
		if err := conn.Ping(ctx).Err(); err != nil {
			return errors.FromRedis(err, "PING")
		}
		return nil
	})
}

// Close releases the pool and the underlying client. Operations issued
// after Close fail.
func (a *Adapter) Close() error {
	poolErr := a.pool.Close()
	clientErr := a.client.Close()
	if poolErr != nil {
		return poolErr
	}
	if clientErr != nil {
		return errors.Wrap(clientErr, "failed to close client")
	}
	return nil
}
