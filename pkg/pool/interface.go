package pool

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/conn.go -package=poolmocks -source=interface.go

// Conn is the command surface the adapter core issues over one leased
// connection. *redis.Conn satisfies it; tests substitute generated mocks.
// No operation is safe to run on a Conn that is not currently leased.
type Conn interface {
	// String commands
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Append(ctx context.Context, key, value string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	IncrBy(ctx context.Context, key string, value int64) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
	DecrBy(ctx context.Context, key string, decrement int64) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd

	// Hash commands
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HSetNX(ctx context.Context, key, field string, value interface{}) *redis.BoolCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	HExists(ctx context.Context, key, field string) *redis.BoolCmd
	HLen(ctx context.Context, key string) *redis.IntCmd
	HKeys(ctx context.Context, key string) *redis.StringSliceCmd
	HVals(ctx context.Context, key string) *redis.StringSliceCmd
	HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd

	// Set commands
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	SCard(ctx context.Context, key string) *redis.IntCmd
	SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd
	SPop(ctx context.Context, key string) *redis.StringCmd
	SMove(ctx context.Context, source, destination string, member interface{}) *redis.BoolCmd
	SInter(ctx context.Context, keys ...string) *redis.StringSliceCmd
	SUnion(ctx context.Context, keys ...string) *redis.StringSliceCmd
	SDiff(ctx context.Context, keys ...string) *redis.StringSliceCmd
	SInterStore(ctx context.Context, destination string, keys ...string) *redis.IntCmd
	SUnionStore(ctx context.Context, destination string, keys ...string) *redis.IntCmd
	SDiffStore(ctx context.Context, destination string, keys ...string) *redis.IntCmd

	// Batching
	Pipeline() redis.Pipeliner
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	Process(ctx context.Context, cmd redis.Cmder) error

	// Scripting
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd
	ScriptLoad(ctx context.Context, script string) *redis.StringCmd

	// Lifecycle
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Source provides scoped access to pooled connections. Primitive modules,
// the pipeline engine, and the script registry depend on this rather than
// on the concrete Pool so unit tests can substitute a single mock Conn.
type Source interface {
	// WithConn leases a connection, runs fn with it, and releases the
	// lease on every exit path. A transport failure or an abandoned
	// in-flight operation discards the connection instead of recycling it.
	WithConn(ctx context.Context, fn func(Conn) error) error
}
