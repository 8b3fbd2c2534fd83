package errors

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"
)

// IsServerReply reports whether err is an error reply from the store
// rather than a transport failure. Note that redis.Nil is a reply.
func IsServerReply(err error) bool {
	var replyErr redis.Error
	return stderrors.As(err, &replyErr)
}

// IsTransport reports whether err indicates the connection itself failed
// (I/O error, timeout, cancellation) rather than the store replying with
// an error. A leased connection that saw a transport failure may have an
// unread reply pending and must be discarded, never recycled.
func IsTransport(err error) bool {
	if err == nil || stderrors.Is(err, redis.Nil) {
		return false
	}
	if IsServerReply(err) {
		return false
	}
	var adapterErr *Error
	if stderrors.As(err, &adapterErr) {
		return adapterErr.Code == CodeConnectionLost || adapterErr.Code == CodeConnectFailed
	}
	return true
}

// FromRedis translates a raw go-redis error into the adapter taxonomy,
// tagging it with the operation name. Adapter errors pass through
// unchanged. redis.Nil is deliberately not handled here: absence is a
// typed result, not an error, and each operation decides what absence
// means.
func FromRedis(err error, op string) *Error {
	if err == nil {
		return nil
	}

	var adapterErr *Error
	if stderrors.As(err, &adapterErr) {
		return adapterErr
	}

	switch {
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		return WrapWithCodef(err, CodeCanceled, "%s canceled", op).WithMeta("operation", op)
	case IsServerReply(err):
		return WrapWithCodef(err, CodeInternal, "%s rejected by store", op).WithMeta("operation", op)
	default:
		return WrapWithCodef(err, CodeConnectionLost, "%s failed mid-operation", op).WithMeta("operation", op)
	}
}
