package primitive

import (
	"time"

	"github.com/kvbridge/kvbridge/pkg/errors"
)

func validateKey(key string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	return nil
}

func validateKeys(keys []string) error {
	if len(keys) == 0 {
		return errors.InvalidArgument("at least one key is required")
	}
	for _, key := range keys {
		if key == "" {
			return errors.InvalidArgument("key cannot be empty")
		}
	}
	return nil
}

// validateTTL enforces whole-second expirations of at least one second.
// The store tracks expiry in seconds here, so finer durations would be
// silently rounded; rejecting them keeps behavior explicit.
func validateTTL(ttl time.Duration) error {
	if ttl < time.Second {
		return errors.InvalidArgumentf("ttl must be at least one second, got %s", ttl)
	}
	if ttl%time.Second != 0 {
		return errors.InvalidArgumentf("ttl must be a whole number of seconds, got %s", ttl)
	}
	return nil
}
