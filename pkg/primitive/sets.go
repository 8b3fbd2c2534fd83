package primitive

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pool"
)

// SetsConfig contains configuration for the Sets module.
type SetsConfig struct {
	Pool pool.Source
}

// Validate validates the SetsConfig.
func (cfg *SetsConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Pool == nil {
		return errors.InvalidArgument("pool is required")
	}
	return nil
}

// Sets exposes typed operations over unordered member collections.
type Sets struct {
	source pool.Source
}

// NewSets creates a new Sets module.
func NewSets(cfg *SetsConfig) (*Sets, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sets{source: cfg.Pool}, nil
}

func membersToArgs(members []string) ([]interface{}, error) {
	if len(members) == 0 {
		return nil, errors.InvalidArgument("at least one member is required")
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	return args, nil
}

// Add inserts members into the set at key, creating the set when
// absent, and returns the number of members that were new.
func (s *Sets) Add(ctx context.Context, key string, members ...string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	args, err := membersToArgs(members)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SAdd(ctx, key, args...).Result()
		if err != nil {
			return errors.FromRedis(err, "SADD")
		}
		n = v
		return nil
	})
	return n, err
}

// Remove deletes members from the set at key and returns how many were
// actually present. The store drops the set key when it becomes empty.
func (s *Sets) Remove(ctx context.Context, key string, members ...string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	args, err := membersToArgs(members)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SRem(ctx, key, args...).Result()
		if err != nil {
			return errors.FromRedis(err, "SREM")
		}
		n = v
		return nil
	})
	return n, err
}

// Members returns every member of the set at key, in no particular
// order. A missing set yields an empty slice.
func (s *Sets) Members(ctx context.Context, key string) ([]string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var out []string
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SMembers(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "SMEMBERS")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cardinality returns the number of members in the set at key.
func (s *Sets) Cardinality(ctx context.Context, key string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SCard(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "SCARD")
		}
		n = v
		return nil
	})
	return n, err
}

// Contains reports whether member is in the set at key.
func (s *Sets) Contains(ctx context.Context, key, member string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	var found bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		ok, err := conn.SIsMember(ctx, key, member).Result()
		if err != nil {
			return errors.FromRedis(err, "SISMEMBER")
		}
		found = ok
		return nil
	})
	return found, err
}

// Pop removes and returns one arbitrary member. The boolean reports
// whether a member was available; popping an empty or missing set is
// not an error.
func (s *Sets) Pop(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	var member string
	var popped bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SPop(ctx, key).Result()
		if err != nil {
			if stderrors.Is(err, redis.Nil) {
				return nil
			}
			return errors.FromRedis(err, "SPOP")
		}
		member = v
		popped = true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return member, popped, nil
}

// Move atomically transfers member from the set at src to the set at
// dst. Returns false when member was not in src.
func (s *Sets) Move(ctx context.Context, src, dst, member string) (bool, error) {
	if err := validateKey(src); err != nil {
		return false, err
	}
	if err := validateKey(dst); err != nil {
		return false, err
	}
	var moved bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		ok, err := conn.SMove(ctx, src, dst, member).Result()
		if err != nil {
			return errors.FromRedis(err, "SMOVE")
		}
		moved = ok
		return nil
	})
	return moved, err
}

// Intersect returns the members common to all the given sets. One key
// degenerates to Members.
func (s *Sets) Intersect(ctx context.Context, keys ...string) ([]string, error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}
	var out []string
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SInter(ctx, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "SINTER")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Union returns the members present in any of the given sets.
func (s *Sets) Union(ctx context.Context, keys ...string) ([]string, error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}
	var out []string
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SUnion(ctx, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "SUNION")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Difference returns the members of the first set that are in none of
// the remaining sets.
func (s *Sets) Difference(ctx context.Context, keys ...string) ([]string, error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}
	var out []string
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SDiff(ctx, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "SDIFF")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IntersectStore writes the intersection of the given sets to dst and
// returns the resulting cardinality.
func (s *Sets) IntersectStore(ctx context.Context, dst string, keys ...string) (int64, error) {
	if err := validateKey(dst); err != nil {
		return 0, err
	}
	if err := validateKeys(keys); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SInterStore(ctx, dst, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "SINTERSTORE")
		}
		n = v
		return nil
	})
	return n, err
}

// UnionStore writes the union of the given sets to dst and returns the
// resulting cardinality.
func (s *Sets) UnionStore(ctx context.Context, dst string, keys ...string) (int64, error) {
	if err := validateKey(dst); err != nil {
		return 0, err
	}
	if err := validateKeys(keys); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SUnionStore(ctx, dst, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "SUNIONSTORE")
		}
		n = v
		return nil
	})
	return n, err
}

// DifferenceStore writes the difference of the given sets to dst and
// returns the resulting cardinality.
func (s *Sets) DifferenceStore(ctx context.Context, dst string, keys ...string) (int64, error) {
	if err := validateKey(dst); err != nil {
		return 0, err
	}
	if err := validateKeys(keys); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.SDiffStore(ctx, dst, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "SDIFFSTORE")
		}
		n = v
		return nil
	})
	return n, err
}
