package primitive

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pool"
)

// HashesConfig contains configuration for the Hashes module.
type HashesConfig struct {
	Pool pool.Source
}

// Validate validates the HashesConfig.
func (cfg *HashesConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Pool == nil {
		return errors.InvalidArgument("pool is required")
	}
	return nil
}

// Hashes exposes typed operations over field/value map values.
type Hashes struct {
	source pool.Source
}

// NewHashes creates a new Hashes module.
func NewHashes(cfg *HashesConfig) (*Hashes, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Hashes{source: cfg.Pool}, nil
}

func validateField(field string) error {
	if field == "" {
		return errors.InvalidArgument("field cannot be empty")
	}
	return nil
}

// Set stores value under field in the hash at key, creating the hash
// when absent. Returns true when the field was newly created, false
// when an existing field was overwritten.
func (h *Hashes) Set(ctx context.Context, key, field, value string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if err := validateField(field); err != nil {
		return false, err
	}
	var created bool
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		n, err := conn.HSet(ctx, key, field, value).Result()
		if err != nil {
			return errors.FromRedis(err, "HSET")
		}
		created = n > 0
		return nil
	})
	return created, err
}

// SetMany stores every field/value pair in one round trip.
func (h *Hashes) SetMany(ctx context.Context, key string, fields map[string]string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errors.InvalidArgument("fields cannot be empty")
	}
	args := make([]interface{}, 0, len(fields)*2)
	for field, value := range fields {
		if err := validateField(field); err != nil {
			return err
		}
		args = append(args, field, value)
	}
	return h.source.WithConn(ctx, func(conn pool.Conn) error {
		if err := conn.HSet(ctx, key, args...).Err(); err != nil {
			return errors.FromRedis(err, "HSET")
		}
		return nil
	})
}

// SetNX stores value under field only when the field does not already
// exist. Returns true when the value was written.
func (h *Hashes) SetNX(ctx context.Context, key, field, value string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if err := validateField(field); err != nil {
		return false, err
	}
	var set bool
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		ok, err := conn.HSetNX(ctx, key, field, value).Result()
		if err != nil {
			return errors.FromRedis(err, "HSETNX")
		}
		set = ok
		return nil
	})
	return set, err
}

// Get returns the value under field. The boolean reports presence; a
// missing hash and a missing field are both plain absence.
func (h *Hashes) Get(ctx context.Context, key, field string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	if err := validateField(field); err != nil {
		return "", false, err
	}
	var val string
	var found bool
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HGet(ctx, key, field).Result()
		if err != nil {
			if stderrors.Is(err, redis.Nil) {
				return nil
			}
			return errors.FromRedis(err, "HGET")
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

// GetMany returns the values for fields positionally: result[i] holds
// the value for fields[i], or nil when that field is absent.
func (h *Hashes) GetMany(ctx context.Context, key string, fields ...string) ([]*string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.InvalidArgument("at least one field is required")
	}
	for _, field := range fields {
		if err := validateField(field); err != nil {
			return nil, err
		}
	}
	var out []*string
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		raw, err := conn.HMGet(ctx, key, fields...).Result()
		if err != nil {
			return errors.FromRedis(err, "HMGET")
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

// GetAll returns every field/value pair in the hash. A missing hash
// yields an empty map.
func (h *Hashes) GetAll(ctx context.Context, key string) (map[string]string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var out map[string]string
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HGetAll(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "HGETALL")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the given fields and returns how many existed.
func (h *Hashes) Delete(ctx context.Context, key string, fields ...string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, errors.InvalidArgument("at least one field is required")
	}
	for _, field := range fields {
		if err := validateField(field); err != nil {
			return 0, err
		}
	}
	var n int64
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HDel(ctx, key, fields...).Result()
		if err != nil {
			return errors.FromRedis(err, "HDEL")
		}
		n = v
		return nil
	})
	return n, err
}

// Exists reports whether field is present in the hash at key.
func (h *Hashes) Exists(ctx context.Context, key, field string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if err := validateField(field); err != nil {
		return false, err
	}
	var found bool
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		ok, err := conn.HExists(ctx, key, field).Result()
		if err != nil {
			return errors.FromRedis(err, "HEXISTS")
		}
		found = ok
		return nil
	})
	return found, err
}

// Len returns the number of fields in the hash at key. A missing hash
// has zero fields.
func (h *Hashes) Len(ctx context.Context, key string) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var n int64
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HLen(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "HLEN")
		}
		n = v
		return nil
	})
	return n, err
}

// Fields returns the field names in the hash at key.
func (h *Hashes) Fields(ctx context.Context, key string) ([]string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var out []string
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HKeys(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "HKEYS")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Values returns the values in the hash at key.
func (h *Hashes) Values(ctx context.Context, key string) ([]string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var out []string
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HVals(ctx, key).Result()
		if err != nil {
			return errors.FromRedis(err, "HVALS")
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IncrBy increments the integer under field by delta, treating a
// missing field as zero, and returns the post-increment value.
func (h *Hashes) IncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	if err := validateField(field); err != nil {
		return 0, err
	}
	var n int64
	err := h.source.WithConn(ctx, func(conn pool.Conn) error {
		v, err := conn.HIncrBy(ctx, key, field, delta).Result()
		if err != nil {
			return errors.FromRedis(err, "HINCRBY")
		}
		n = v
		return nil
	})
	return n, err
}
