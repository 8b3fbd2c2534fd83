package pipeline

import (
	stderrors "errors"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
)

// Result holds one command's decoded reply or its error. Absence
// (a nil reply from the store) is a value, not an error: IsNil reports
// it and the typed extractors return the type's zero value for it.
type Result struct {
	val interface{}
	err error
}

// NewResult builds a Result from a raw reply value and error, mapping
// the store's nil reply to typed absence and everything else through
// the adapter taxonomy. op names the originating command for context.
func NewResult(val interface{}, err error, op string) Result {
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return Result{}
		}
		return Result{err: errors.FromRedis(err, op)}
	}
	return Result{val: val}
}

// Err returns the command's error, if any.
func (r Result) Err() error {
	return r.err
}

// IsNil reports whether the store replied with nil (key or field absent).
func (r Result) IsNil() bool {
	return r.err == nil && r.val == nil
}

// Value returns the raw decoded reply.
func (r Result) Value() (interface{}, error) {
	return r.val, r.err
}

// Text decodes the reply as a string. Absence decodes to "".
func (r Result) Text() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.val == nil {
		return "", nil
	}
	switch v := r.val.(type) {
	case string:
		return v, nil
	default:
		return "", errors.DecodeErrorf("expected string reply, got %T", r.val)
	}
}

// Int64 decodes the reply as an integer. Absence decodes to 0.
func (r Result) Int64() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.val == nil {
		return 0, nil
	}
	switch v := r.val.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errors.DecodeErrorf("expected integer reply, got string %q", v)
		}
		return n, nil
	default:
		return 0, errors.DecodeErrorf("expected integer reply, got %T", r.val)
	}
}

// Bool decodes the reply as a boolean: integer replies by non-zero,
// the "OK" status as true. Absence decodes to false.
func (r Result) Bool() (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if r.val == nil {
		return false, nil
	}
	switch v := r.val.(type) {
	case int64:
		return v != 0, nil
	case string:
		if v == "OK" {
			return true, nil
		}
		return false, errors.DecodeErrorf("expected boolean reply, got string %q", v)
	default:
		return false, errors.DecodeErrorf("expected boolean reply, got %T", r.val)
	}
}

// Slice decodes the reply as an array. Absence decodes to nil.
func (r Result) Slice() ([]interface{}, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.val == nil {
		return nil, nil
	}
	switch v := r.val.(type) {
	case []interface{}:
		return v, nil
	default:
		return nil, errors.DecodeErrorf("expected array reply, got %T", r.val)
	}
}

// TextSlice decodes the reply as an array of strings. Nil elements
// decode to ""; integer elements are formatted.
func (r Result) TextSlice() ([]string, error) {
	raw, err := r.Slice()
	if err != nil || raw == nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, elem := range raw {
		switch v := elem.(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = v
		case int64:
			out[i] = strconv.FormatInt(v, 10)
		default:
			return nil, errors.DecodeErrorf("expected string element at %d, got %T", i, elem)
		}
	}
	return out, nil
}
