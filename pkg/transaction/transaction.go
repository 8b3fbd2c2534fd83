// Package transaction implements optimistic all-or-nothing command
// batches. A Tx walks a strict lifecycle: watch the keys it depends on,
// optionally read them, queue writes client-side, then commit. The
// store rejects the commit when any watched key changed after the watch
// was placed; that surfaces as Aborted with no effects applied, and the
// caller decides whether to rebuild and retry.
package transaction

import (
	"context"
	stderrors "errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pipeline"
	"github.com/kvbridge/kvbridge/pkg/pool"
)

// State identifies where a Tx is in its lifecycle.
type State int

const (
	// StateIdle is a fresh transaction with no lease held.
	StateIdle State = iota
	// StateWatching holds a lease with watches placed and no writes queued.
	StateWatching
	// StateQueued holds a lease with at least one write queued.
	StateQueued
	// StateCommitted is terminal: Exec ran and the batch applied.
	StateCommitted
	// StateAborted is terminal: the watch was violated, Discard was
	// called, or a transport failure ended the attempt.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWatching:
		return "watching"
	case StateQueued:
		return "queued"
	case StateCommitted:
		return "committed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Config contains configuration for a transaction.
type Config struct {
	Pool *pool.Pool
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Pool == nil {
		return errors.InvalidArgument("pool is required")
	}
	return nil
}

type queuedCmd struct {
	name string
	args []interface{}
}

// Tx is a single-use optimistic transaction. It is not safe for
// concurrent use; the watch and the commit must run on the same
// goroutine against the same leased connection.
type Tx struct {
	pool  *pool.Pool
	lease *pool.Lease
	state State
	cmds  []queuedCmd
}

// New creates a transaction in StateIdle. No connection is held until
// Watch.
func New(cfg *Config) (*Tx, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tx{pool: cfg.Pool, state: StateIdle}, nil
}

// State returns the transaction's current lifecycle state.
func (t *Tx) State() State {
	return t.state
}

// Watch leases a connection and registers keys for conflict detection.
// Any write to a watched key by another client between Watch and Exec
// aborts the commit. Watch is only valid on a fresh transaction.
func (t *Tx) Watch(ctx context.Context, keys ...string) error {
	if t.state != StateIdle {
		return errors.FailedPreconditionf("cannot watch in state %s", t.state)
	}
	if len(keys) == 0 {
		return errors.InvalidArgument("at least one key is required")
	}
	for _, key := range keys {
		if key == "" {
			return errors.InvalidArgument("key cannot be empty")
		}
	}

	lease, err := t.pool.Acquire(ctx)
	if err != nil {
		return err
	}

	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, "watch")
	for _, key := range keys {
		args = append(args, key)
	}
	if err := lease.Conn().Process(ctx, redis.NewStatusCmd(ctx, args...)); err != nil {
		lease.MarkBroken()
		lease.Release()
		t.state = StateAborted
		return errors.FromRedis(err, "WATCH")
	}

	t.lease = lease
	t.state = StateWatching
	return nil
}

// Get reads key on the watched connection. This is the read half of a
// read-modify-write cycle: the value observed here is what the watch
// protects. The boolean reports presence.
func (t *Tx) Get(ctx context.Context, key string) (string, bool, error) {
	if t.state != StateWatching && t.state != StateQueued {
		return "", false, errors.FailedPreconditionf("cannot read in state %s", t.state)
	}
	if key == "" {
		return "", false, errors.InvalidArgument("key cannot be empty")
	}
	val, err := t.lease.Conn().Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return "", false, nil
		}
		if errors.IsTransport(err) {
			t.fail()
		}
		return "", false, errors.FromRedis(err, "GET")
	}
	return val, true, nil
}

func (t *Tx) queue(name string, args ...interface{}) error {
	if t.state != StateWatching && t.state != StateQueued {
		return errors.FailedPreconditionf("cannot queue commands in state %s", t.state)
	}
	t.cmds = append(t.cmds, queuedCmd{name: name, args: args})
	t.state = StateQueued
	return nil
}

// Set queues an unconditional write of value under key.
func (t *Tx) Set(key, value string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	return t.queue("set", key, value)
}

// SetWithTTL queues a write of value under key with ttl seconds of
// expiry. ttl must be a whole number of seconds of at least one second.
func (t *Tx) SetWithTTL(key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	if ttl < time.Second || ttl%time.Second != 0 {
		return errors.InvalidArgumentf("ttl must be a whole number of seconds of at least one second, got %s", ttl)
	}
	return t.queue("setex", key, int64(ttl/time.Second), value)
}

// Delete queues removal of key.
func (t *Tx) Delete(key string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	return t.queue("del", key)
}

// Incr queues an increment of the integer under key by one.
func (t *Tx) Incr(key string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	return t.queue("incr", key)
}

// IncrBy queues an increment of the integer under key by delta.
func (t *Tx) IncrBy(key string, delta int64) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	return t.queue("incrby", key, delta)
}

// HSet queues a hash field write.
func (t *Tx) HSet(key, field, value string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	if field == "" {
		return errors.InvalidArgument("field cannot be empty")
	}
	return t.queue("hset", key, field, value)
}

// SAdd queues set member insertions.
func (t *Tx) SAdd(key string, members ...string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	if len(members) == 0 {
		return errors.InvalidArgument("at least one member is required")
	}
	args := make([]interface{}, 0, len(members)+1)
	args = append(args, key)
	for _, m := range members {
		args = append(args, m)
	}
	return t.queue("sadd", args...)
}

// SRem queues set member removals.
func (t *Tx) SRem(key string, members ...string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	if len(members) == 0 {
		return errors.InvalidArgument("at least one member is required")
	}
	args := make([]interface{}, 0, len(members)+1)
	args = append(args, key)
	for _, m := range members {
		args = append(args, m)
	}
	return t.queue("srem", args...)
}

// Expire queues an expiry update for key.
func (t *Tx) Expire(key string, ttl time.Duration) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	if ttl < time.Second || ttl%time.Second != 0 {
		return errors.InvalidArgumentf("ttl must be a whole number of seconds of at least one second, got %s", ttl)
	}
	return t.queue("expire", key, int64(ttl/time.Second))
}

// Command queues an arbitrary command by name.
func (t *Tx) Command(name string, args ...interface{}) error {
	if name == "" {
		return errors.InvalidArgument("command name cannot be empty")
	}
	return t.queue(name, args...)
}

// Len returns the number of queued commands.
func (t *Tx) Len() int {
	return len(t.cmds)
}

// Exec submits the queued commands as one atomic batch. When any
// watched key was modified after Watch, nothing is applied and Exec
// returns Aborted; the caller owns the retry decision. On success the
// results are positional, result[i] for queued command i. Exec always
// releases the lease.
func (t *Tx) Exec(ctx context.Context) ([]pipeline.Result, error) {
	if t.state != StateQueued {
		return nil, errors.FailedPreconditionf("cannot exec in state %s", t.state)
	}

	cmds := make([]*redis.Cmd, len(t.cmds))
	_, execErr := t.lease.Conn().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, q := range t.cmds {
			args := make([]interface{}, 0, len(q.args)+1)
			args = append(args, q.name)
			args = append(args, q.args...)
			cmd := redis.NewCmd(ctx, args...)
			if err := pipe.Process(ctx, cmd); err != nil {
				return err
			}
			cmds[i] = cmd
		}
		return nil
	})

	if execErr != nil {
		if stderrors.Is(execErr, redis.TxFailedErr) {
			t.release(false)
			t.state = StateAborted
			return nil, errors.Aborted("watched key changed before commit")
		}
		if errors.IsServerReply(execErr) {
			// the batch ran; per-command errors surface positionally below
			results := make([]pipeline.Result, len(cmds))
			for i, cmd := range cmds {
				results[i] = pipeline.NewResult(cmd.Val(), cmd.Err(), t.cmds[i].name)
			}
			t.release(false)
			t.state = StateCommitted
			return results, nil
		}
		t.fail()
		return nil, errors.FromRedis(execErr, "EXEC")
	}

	results := make([]pipeline.Result, len(cmds))
	for i, cmd := range cmds {
		results[i] = pipeline.NewResult(cmd.Val(), cmd.Err(), t.cmds[i].name)
	}
	t.release(false)
	t.state = StateCommitted
	return results, nil
}

// Discard drops the queued commands, clears the watches, and releases
// the lease. It is safe to call from any state, including after Exec.
func (t *Tx) Discard(ctx context.Context) error {
	switch t.state {
	case StateIdle, StateCommitted, StateAborted:
		return nil
	}
	err := t.lease.Conn().Process(ctx, redis.NewStatusCmd(ctx, "unwatch"))
	if err != nil {
		t.fail()
		return errors.FromRedis(err, "UNWATCH")
	}
	t.release(false)
	t.state = StateAborted
	t.cmds = nil
	return nil
}

// fail marks the lease broken, releases it, and parks the transaction
// in its terminal aborted state.
func (t *Tx) fail() {
	t.release(true)
	t.state = StateAborted
}

func (t *Tx) release(broken bool) {
	if t.lease == nil {
		return
	}
	if broken {
		t.lease.MarkBroken()
	}
	t.lease.Release()
	t.lease = nil
}
