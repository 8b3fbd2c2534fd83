package primitive

import (
	"context"
	stderrors "errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pool"
	"github.com/kvbridge/kvbridge/pkg/script"
)

// StringsConfig contains configuration for the Strings module.
type StringsConfig struct {
	Pool    pool.Source
	Scripts *script.Registry

	// DefaultTTL applies when SetWithTTL is called with a zero ttl.
	// Zero means no expiry.
	DefaultTTL time.Duration
}

// Validate validates the StringsConfig.
func (cfg *StringsConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Pool == nil {
		return errors.InvalidArgument("pool is required")
	}
	if cfg.Scripts == nil {
		return errors.InvalidArgument("scripts is required")
	}
	if cfg.DefaultTTL != 0 {
		if err := validateTTL(cfg.DefaultTTL); err != nil {
			return err
		}
	}
	return nil
}

// Strings exposes typed operations over string values.
type Strings struct {
	source     pool.Source
	scripts    *script.Registry
	defaultTTL time.Duration
}

// NewStrings creates a new Strings module.
func NewStrings(cfg *StringsConfig) (*Strings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Strings{
		source:     cfg.Pool,
		scripts:    cfg.Scripts,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// Set stores value under key with no expiry, overwriting any previous
// value regardless of its kind.
func (s *Strings) Set(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.source.WithConn(ctx, func(conn pool.Conn) error {
		if err := conn.Set(ctx, key, value, 0).Err(); err != nil {
			return errors.FromRedis(err, "SET")
		}
		return nil
	})
}

// SetWithTTL stores value under key with an expiry. A zero ttl falls
// back to the module's DefaultTTL; if that is also zero the value is
// stored without expiry.
func (s *Strings) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	if ttl == 0 {
		return s.Set(ctx, key, value)
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	return s.source.WithConn(ctx, func(conn pool.Conn) error {
		if err := conn.Set(ctx, key, value, ttl).Err(); err != nil {
			return errors.FromRedis(err, "SET")
		}
		return nil
	})
}

// Get returns the value under key. The boolean reports presence;
// absence is not an error.
func (s *Strings) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	var val string
	var found bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.Get(ctx, key).Result()
		if err != nil {
			if stderrors.Is(err, redis.Nil) {
				return nil
			}
			return errors.FromRedis(err, "GET")
		}
		val = v
		found = true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return val, found, nil
}

// GetSet atomically replaces the value under key with value and
// returns the previous value, or nil when the key did not exist.
func (s *Strings) GetSet(ctx context.Context, key, value string) (*string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	res, err := s.scripts.EvalName(ctx, script.NameGetSet, []string{key}, value)
	if err != nil {
		return nil, err
	}
	if res.IsNil() {
		return nil, nil
	}
	prev, err := res.Text()
	if err != nil {
		return nil, err
	}
	return &prev, nil
}

// SetNX stores value under key only when the key does not exist.
// Returns true when the value was written. A positive ttl applies an
// expiry to the new value; zero means no expiry.
func (s *Strings) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if ttl != 0 {
		if err := validateTTL(ttl); err != nil {
			return false, err
		}
	}
	var set bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		ok, err := conn.SetNX(ctx, key, value, ttl).Result()
		if err != nil {
			return errors.FromRedis(err, "SETNX")
		}
		set = ok
		return nil
	})
	if err != nil {
		return false, err
	}
	return set, nil
}

// CompareAndSet replaces the value under key with newValue only when
// the current value equals expected, as a single atomic step on the
// store. Returns true on success. A missing key never matches.
func (s *Strings) CompareAndSet(ctx context.Context, key, expected, newValue string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	res, err := s.scripts.EvalName(ctx, script.NameCompareAndSet, []string{key}, expected, newValue)
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// CompareAndSetWithTTL is CompareAndSet with ttl seconds of expiry
// applied to the new value on success.
func (s *Strings) CompareAndSetWithTTL(ctx context.Context, key, expected, newValue string, ttl time.Duration) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if err := validateTTL(ttl); err != nil {
		return false, err
	}
	res, err := s.scripts.EvalName(ctx, script.NameCompareAndSetTTL,
		[]string{key}, expected, newValue, int64(ttl/time.Second))
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// Append appends value to the string under key, creating the key when
// absent, and returns the resulting length in bytes.
func (s *Strings) Append(ctx context.Context, key, value string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.Append(ctx, key, value).Result()
		if err != nil {
			return errors.FromRedis(err, "APPEND")
		}
		n = v
		return nil
	})
	return n, err
}

// Incr increments the integer under key by one, treating a missing key
// as zero, and returns the post-increment value.
func (s *Strings) Incr(ctx context.Context, key string) (int64, error) {
	return s.IncrBy(ctx, key, 1)
}

// IncrBy increments the integer under key by delta and returns the
// post-increment value. A non-integer value fails with a store error.
func (s *Strings) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.IncrBy(ctx, key, delta).Result()
		if err != nil {
			return errors.FromRedis(err, "INCRBY")
		}
		n = v
		return nil
	})
	return n, err
}

// Decr decrements the integer under key by one and returns the
// post-decrement value.
func (s *Strings) Decr(ctx context.Context, key string) (int64, error) {
	return s.DecrBy(ctx, key, 1)
}

// DecrBy decrements the integer under key by delta and returns the
// post-decrement value.
func (s *Strings) DecrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.DecrBy(ctx, key, delta).Result()
		if err != nil {
			return errors.FromRedis(err, "DECRBY")
		}
		n = v
		return nil
	})
	return n, err
}

// Delete removes key. Returns true when a key was actually removed,
// false when it was already absent.
func (s *Strings) Delete(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	var removed bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		n, err := conn.Del(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "DEL")
		}
		removed = n > 0
		return nil
	})
	return removed, err
}

// DeleteMany removes all the given keys in one round trip and returns
// the number of keys that existed.
func (s *Strings) DeleteMany(ctx context.Context, keys ...string) (int64, error) {
	if err := validateKeys(keys); err != nil {
		return 0, err
	}
	var n int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.Del(ctx, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "DEL")
		}
		n = v
		return nil
	})
	return n, err
}

// Exists reports whether key is present.
func (s *Strings) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	var found bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		n, err := conn.Exists(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "EXISTS")
		}
		found = n > 0
		return nil
	})
	return found, err
}

// TTL returns the remaining lifetime of key in whole seconds, -1 when
// the key has no expiry, and -2 when the key does not exist.
func (s *Strings) TTL(ctx context.Context, key string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var seconds int64
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		d, err := conn.TTL(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "TTL")
		}
		if d < 0 {
			seconds = int64(d)
			return nil
		}
		seconds = int64(d / time.Second)
		return nil
	})
	return seconds, err
}

// Expire sets key's expiry to ttl. Returns false when the key does not
// exist.
func (s *Strings) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if err := validateTTL(ttl); err != nil {
		return false, err
	}
	var set bool
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		ok, err := conn.Expire(ctx, key, ttl).Result()
		if err != nil {
			return errors.FromRedis(err, "EXPIRE")
		}
		set = ok
		return nil
	})
	return set, err
}

// Keys returns the keys matching the glob pattern. The scan is a full
// keyspace walk on the store, so keep patterns off hot paths.
func (s *Strings) Keys(ctx context.Context, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, errors.InvalidArgument("pattern cannot be empty")
	}
	var keys []string
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.Keys(ctx, pattern).Result()
		if err != nil {
			return errors.FromRedis(err, "KEYS")
		}
		keys = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// SetMany stores every key/value pair in values over one leased
// connection. Writes are batched, not transactional.
func (s *Strings) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return errors.InvalidArgument("values cannot be empty")
	}
	for key := range values {
		if err := validateKey(key); err != nil {
			return err
		}
	}
	return s.source.WithConn(ctx, func(conn pool.Conn) error {
		pipe := conn.Pipeline()
		for key, value := range values {
			pipe.Set(ctx, key, value, 0)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return errors.FromRedis(err, "SET")
		}
		return nil
	})
}

// SetManyWithTTL stores every key/value pair in values with ttl seconds
// of expiry on each, as one atomic server-side step.
func (s *Strings) SetManyWithTTL(ctx context.Context, values map[string]string, ttl time.Duration) error {
	if len(values) == 0 {
		return errors.InvalidArgument("values cannot be empty")
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	keys := make([]string, 0, len(values))
	args := make([]interface{}, 0, len(values)+1)
	args = append(args, int64(ttl/time.Second))
	for key, value := range values {
		if err := validateKey(key); err != nil {
			return err
		}
		keys = append(keys, key)
		args = append(args, value)
	}
	_, err := s.scripts.EvalName(ctx, script.NameMultiSetTTL, keys, args...)
	return err
}

// GetMany returns the values for keys positionally: result[i] holds the
// value for keys[i], or nil when that key is absent.
func (s *Strings) GetMany(ctx context.Context, keys ...string) ([]*string, error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}
	var out []*string
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		raw, err := conn.MGet(ctx, keys...).Result()
		if err != nil {
			return errors.FromRedis(err, "MGET")
		}
		out = make([]*string, len(raw))
		for i, elem := range raw {
			switch v := elem.(type) {
			case nil:
			case string:
				val := v
				out[i] = &val
			default:
				return errors.DecodeErrorf("expected string reply at %d, got %T", i, elem)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IncrMany increments every key by one as one atomic server-side step
// and returns the post-increment values in key order.
func (s *Strings) IncrMany(ctx context.Context, keys ...string) ([]int64, error) {
	return s.IncrManyBy(ctx, 1, keys...)
}

// IncrManyBy increments every key by delta as one atomic server-side
// step and returns the post-increment values in key order.
func (s *Strings) IncrManyBy(ctx context.Context, delta int64, keys ...string) ([]int64, error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}
	res, err := s.scripts.EvalName(ctx, script.NameMultiCounter, keys, delta)
	if err != nil {
		return nil, err
	}
	raw, err := res.Slice()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(raw))
	for i, elem := range raw {
		n, ok := elem.(int64)
		if !ok {
			return nil, errors.DecodeErrorf("expected integer reply at %d, got %T", i, elem)
		}
		out[i] = n
	}
	return out, nil
}

// BatchGetPatternsFlat expands each glob pattern to its matching keys
// and fetches them all in one MGET. The flat result maps key to value;
// a pattern that matched nothing contributes an explicit nil entry
// keyed by the pattern itself, so callers can tell "pattern found no
// keys" apart from "key vanished between KEYS and MGET". An empty
// pattern list yields an empty map.
func (s *Strings) BatchGetPatternsFlat(ctx context.Context, patterns []string) (map[string]*string, error) {
	out := make(map[string]*string)
	if len(patterns) == 0 {
		return out, nil
	}
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		var allKeys []string
		for _, pattern := range patterns {
			if pattern == "" {
				return errors.InvalidArgument("pattern cannot be empty")
			}
			keys, err := conn.Keys(ctx, pattern).Result()
			if err != nil {
				return errors.FromRedis(err, "KEYS")
			}
			if len(keys) == 0 {
				out[pattern] = nil
				continue
			}
			allKeys = append(allKeys, keys...)
		}
		if len(allKeys) == 0 {
			return nil
		}
		raw, err := conn.MGet(ctx, allKeys...).Result()
		if err != nil {
			return errors.FromRedis(err, "MGET")
		}
		for i, elem := range raw {
			switch v := elem.(type) {
			case nil:
				out[allKeys[i]] = nil
			case string:
				val := v
				out[allKeys[i]] = &val
			default:
				return errors.DecodeErrorf("expected string reply at %d, got %T", i, elem)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BatchGetPatternsGrouped is BatchGetPatternsFlat with results grouped
// per pattern: each pattern maps to its own key/value map, empty when
// the pattern matched nothing.
func (s *Strings) BatchGetPatternsGrouped(ctx context.Context, patterns []string) (map[string]map[string]*string, error) {
	out := make(map[string]map[string]*string)
	if len(patterns) == 0 {
		return out, nil
	}
	err := s.source.WithConn(ctx, func(conn pool.Conn) error {
		for _, pattern := range patterns {
			if pattern == "" {
				return errors.InvalidArgument("pattern cannot be empty")
			}
			group := make(map[string]*string)
			out[pattern] = group

			keys, err := conn.Keys(ctx, pattern).Result()
			if err != nil {
				return errors.FromRedis(err, "KEYS")
			}
			if len(keys) == 0 {
				continue
			}
			raw, err := conn.MGet(ctx, keys...).Result()
			if err != nil {
				return errors.FromRedis(err, "MGET")
			}
			for i, elem := range raw {
				switch v := elem.(type) {
				case nil:
					group[keys[i]] = nil
				case string:
					val := v
					group[keys[i]] = &val
				default:
					return errors.DecodeErrorf("expected string reply at %d, got %T", i, elem)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
