package script

import (
	"context"
	"time"

	"github.com/kvbridge/kvbridge/pkg/errors"
)

// RateLimiter is a fixed-window rate limiter backed by the rate_limiter
// builtin. All instances sharing a registry share window state through
// the store, so the limit holds across processes.
type RateLimiter struct {
	registry *Registry
}

// NewRateLimiter wraps registry. The rate_limiter script must be
// registered (RegisterBuiltins does this).
func NewRateLimiter(registry *Registry) (*RateLimiter, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("registry cannot be nil")
	}
	return &RateLimiter{registry: registry}, nil
}

// Allow reports whether one more event fits under limit events per
// window for key. The decision and the counter update are a single
// atomic step on the store. window truncates to whole seconds and must
// be at least one second.
func (rl *RateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	if key == "" {
		return false, errors.InvalidArgument("key cannot be empty")
	}
	if limit <= 0 {
		return false, errors.InvalidArgument("limit must be positive")
	}
	seconds := int64(window / time.Second)
	if seconds < 1 {
		return false, errors.InvalidArgument("window must be at least one second")
	}

	res, err := rl.registry.EvalName(ctx, NameRateLimiter, []string{key}, limit, seconds)
	if err != nil {
		return false, err
	}
	admitted, err := res.Int64()
	if err != nil {
		return false, err
	}
	return admitted == 1, nil
}
