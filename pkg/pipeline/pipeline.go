// Package pipeline batches an ordered sequence of commands into one round
// trip over one leased connection. Replies are matched to commands
// strictly by position; one command failing does not abort the rest.
package pipeline

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pool"
)

type queuedCmd struct {
	name string
	args []interface{}
}

// Pipeline accumulates commands in call order and transmits them as one
// contiguous batch. Build, execute once, discard; a Pipeline is not safe
// for concurrent use.
type Pipeline struct {
	source pool.Source
	cmds   []queuedCmd
}

// New creates an empty pipeline drawing connections from source.
func New(source pool.Source) *Pipeline {
	return &Pipeline{source: source}
}

// Command appends a raw command. Typed appenders below cover the common
// operations; Command is the escape hatch for everything else.
func (p *Pipeline) Command(name string, args ...interface{}) *Pipeline {
	full := make([]interface{}, 0, len(args)+1)
	full = append(full, name)
	full = append(full, args...)
	p.cmds = append(p.cmds, queuedCmd{name: name, args: full})
	return p
}

// Get appends a GET.
func (p *Pipeline) Get(key string) *Pipeline {
	return p.Command("get", key)
}

// Set appends a SET without expiry.
func (p *Pipeline) Set(key, value string) *Pipeline {
	return p.Command("set", key, value)
}

// SetWithTTL appends a SETEX with a whole-second TTL.
func (p *Pipeline) SetWithTTL(key, value string, ttl time.Duration) *Pipeline {
	return p.Command("setex", key, int64(ttl/time.Second), value)
}

// Delete appends a DEL.
func (p *Pipeline) Delete(keys ...string) *Pipeline {
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return p.Command("del", args...)
}

// Incr appends an INCR.
func (p *Pipeline) Incr(key string) *Pipeline {
	return p.Command("incr", key)
}

// IncrBy appends an INCRBY.
func (p *Pipeline) IncrBy(key string, amount int64) *Pipeline {
	return p.Command("incrby", key, amount)
}

// Expire appends an EXPIRE with a whole-second TTL.
func (p *Pipeline) Expire(key string, ttl time.Duration) *Pipeline {
	return p.Command("expire", key, int64(ttl/time.Second))
}

// HSet appends an HSET for one field.
func (p *Pipeline) HSet(key, field, value string) *Pipeline {
	return p.Command("hset", key, field, value)
}

// HGet appends an HGET.
func (p *Pipeline) HGet(key, field string) *Pipeline {
	return p.Command("hget", key, field)
}

// HDel appends an HDEL.
func (p *Pipeline) HDel(key string, fields ...string) *Pipeline {
	args := make([]interface{}, 0, len(fields)+1)
	args = append(args, key)
	for _, f := range fields {
		args = append(args, f)
	}
	return p.Command("hdel", args...)
}

// SAdd appends an SADD.
func (p *Pipeline) SAdd(key string, members ...string) *Pipeline {
	args := make([]interface{}, 0, len(members)+1)
	args = append(args, key)
	for _, m := range members {
		args = append(args, m)
	}
	return p.Command("sadd", args...)
}

// SRem appends an SREM.
func (p *Pipeline) SRem(key string, members ...string) *Pipeline {
	args := make([]interface{}, 0, len(members)+1)
	args = append(args, key)
	for _, m := range members {
		args = append(args, m)
	}
	return p.Command("srem", args...)
}

// SMembers appends an SMEMBERS.
func (p *Pipeline) SMembers(key string) *Pipeline {
	return p.Command("smembers", key)
}

// Len reports how many commands are queued.
func (p *Pipeline) Len() int {
	return len(p.cmds)
}

// Reset drops all queued commands so the builder can be reused.
func (p *Pipeline) Reset() *Pipeline {
	p.cmds = nil
	return p
}

// Execute transmits all queued commands as one batch over one leased
// connection and returns one Result per command, in submission order.
// Individual command failures (absent keys, type mismatches) land in
// their Result slot; only a transport failure aborts the whole batch,
// with ConnectionLost, in which case none of its effects are assumed
// applied.
func (p *Pipeline) Execute(ctx context.Context) ([]Result, error) {
	if len(p.cmds) == 0 {
		return nil, errors.InvalidArgument("pipeline has no commands")
	}

	var results []Result
	err := p.source.WithConn(ctx, func(conn pool.Conn) error {
		pipe := conn.Pipeline()
		cmders := make([]*redis.Cmd, len(p.cmds))
		for i, q := range p.cmds {
			cmd := redis.NewCmd(ctx, q.args...)
			// Process queues; errors surface on Exec.
			_ = pipe.Process(ctx, cmd)
			cmders[i] = cmd
		}

		if _, err := pipe.Exec(ctx); err != nil && errors.IsTransport(err) {
			return errors.WrapWithCode(err, errors.CodeConnectionLost, "pipeline failed mid-transmission")
		}

		results = make([]Result, len(cmders))
		for i, cmd := range cmders {
			results[i] = NewResult(cmd.Val(), cmd.Err(), p.cmds[i].name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
