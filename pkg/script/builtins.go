package script

// Names of the scripts installed by RegisterBuiltins.
const (
	NameRateLimiter      = "rate_limiter"
	NameCompareAndSet    = "compare_and_set"
	NameCompareAndSetTTL = "compare_and_set_ttl"
	NameGetSet           = "get_set"
	NameSetIfAbsent      = "set_if_absent"
	NameMultiCounter     = "multi_counter"
	NameMultiSetTTL      = "multi_set_ttl"
)

// SourceRateLimiter implements a fixed-window counter. KEYS[1] is the
// window bucket, ARGV[1] the limit, ARGV[2] the window in whole
// seconds. Returns 1 when the call is admitted, 0 when denied. The
// first admitted call creates the bucket with the window TTL, so the
// window resets itself when the key expires.
const SourceRateLimiter = `local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = redis.call('GET', key)
if current == false then
    redis.call('SETEX', key, window, 1)
    return 1
end

local count = tonumber(current)
if count >= limit then
    return 0
end

redis.call('INCR', key)
return 1`

// SourceCompareAndSet sets KEYS[1] to ARGV[2] only when its current
// value equals ARGV[1]. Returns 1 on success, 0 otherwise. A missing
// key never matches.
const SourceCompareAndSet = `local current = redis.call('GET', KEYS[1])
if current == ARGV[1] then
    redis.call('SET', KEYS[1], ARGV[2])
    return 1
end
return 0`

// SourceCompareAndSetTTL is compare_and_set with ARGV[3] seconds of
// expiry applied on success.
const SourceCompareAndSetTTL = `local current = redis.call('GET', KEYS[1])
if current == ARGV[1] then
    redis.call('SETEX', KEYS[1], tonumber(ARGV[3]), ARGV[2])
    return 1
end
return 0`

// SourceGetSet atomically replaces KEYS[1] with ARGV[1] and returns the
// previous value, or nil when the key did not exist.
const SourceGetSet = `local current = redis.call('GET', KEYS[1])
redis.call('SET', KEYS[1], ARGV[1])
return current`

// SourceSetIfAbsent sets KEYS[1] to ARGV[1] only when the key does not
// exist, with optional ARGV[2] seconds of expiry. Returns 1 when the
// value was written, 0 when the key already existed.
const SourceSetIfAbsent = `if redis.call('EXISTS', KEYS[1]) == 1 then
    return 0
end
if ARGV[2] then
    redis.call('SETEX', KEYS[1], tonumber(ARGV[2]), ARGV[1])
else
    redis.call('SET', KEYS[1], ARGV[1])
end
return 1`

// SourceMultiCounter increments every key in KEYS by ARGV[1] and
// returns the post-increment values in key order.
const SourceMultiCounter = `local results = {}
for i, key in ipairs(KEYS) do
    results[i] = redis.call('INCRBY', key, tonumber(ARGV[1]))
end
return results`

// SourceMultiSetTTL writes KEYS[i] = ARGV[i+1] with ARGV[1] seconds of
// expiry on each, atomically, and returns the number of keys written.
const SourceMultiSetTTL = `local ttl = tonumber(ARGV[1])
for i, key in ipairs(KEYS) do
    redis.call('SETEX', key, ttl, ARGV[i + 1])
end
return #KEYS`

// RegisterBuiltins installs the stock scripts. Callers may re-register
// any name to override a builtin.
func RegisterBuiltins(r *Registry) error {
	builtins := []struct {
		name   string
		source string
	}{
		{NameRateLimiter, SourceRateLimiter},
		{NameCompareAndSet, SourceCompareAndSet},
		{NameCompareAndSetTTL, SourceCompareAndSetTTL},
		{NameGetSet, SourceGetSet},
		{NameSetIfAbsent, SourceSetIfAbsent},
		{NameMultiCounter, SourceMultiCounter},
		{NameMultiSetTTL, SourceMultiSetTTL},
	}
	for _, b := range builtins {
		if _, err := r.Register(b.name, b.source); err != nil {
			return err
		}
	}
	return nil
}
