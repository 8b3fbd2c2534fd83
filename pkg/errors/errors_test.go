package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kvbridge/kvbridge/pkg/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "pool exhausted error",
			code:     errors.CodePoolExhausted,
			message:  "no connection available",
			expected: "POOL_EXHAUSTED: no connection available",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "key cannot be empty",
			expected: "INVALID_ARGUMENT: key cannot be empty",
		},
		{
			name:     "aborted error",
			code:     errors.CodeAborted,
			message:  "watched key changed",
			expected: "ABORTED: watched key changed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.ConnectionLost("reset by peer")
	wrapped := errors.Wrap(base, "fetching key")

	s.Equal(errors.CodeConnectionLost, wrapped.Code)
	s.True(stderrors.Is(wrapped, base))
	s.True(errors.IsConnectionLost(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainErrorDefaultsToInternal() {
	wrapped := errors.Wrap(fmt.Errorf("boom"), "doing work")
	s.Equal(errors.CodeInternal, wrapped.Code)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("script missing").
		WithMeta("script", "rate_limiter")
	s.Equal("rate_limiter", errors.GetMeta(err)["script"])
}

func (s *ErrorsTestSuite) TestPredicates() {
	s.True(errors.IsPoolExhausted(errors.PoolExhausted("full")))
	s.True(errors.IsAborted(errors.Aborted("conflict")))
	s.True(errors.IsDecodeError(errors.DecodeErrorf("wanted %s", "int")))
	s.False(errors.IsAborted(errors.NotFound("nope")))
	s.False(errors.IsNotFound(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code   errors.Code
		status int
	}{
		{errors.CodePoolExhausted, http.StatusTooManyRequests},
		{errors.CodeAborted, http.StatusConflict},
		{errors.CodeConnectionLost, http.StatusBadGateway},
		{errors.CodeConnectFailed, http.StatusServiceUnavailable},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
	}
	for _, tc := range testCases {
		s.Equal(tc.status, tc.code.HTTPStatus(), "code %s", tc.code)
	}
}

func (s *ErrorsTestSuite) TestIsTransport() {
	s.Run("nil is not transport", func() {
		s.False(errors.IsTransport(nil))
	})

	s.Run("absence is not transport", func() {
		s.False(errors.IsTransport(redis.Nil))
	})

	s.Run("io failure is transport", func() {
		s.True(errors.IsTransport(fmt.Errorf("read tcp: connection reset by peer")))
	})

	s.Run("adapter connection errors are transport", func() {
		s.True(errors.IsTransport(errors.ConnectionLost("gone")))
		s.True(errors.IsTransport(errors.ConnectFailed("refused")))
	})

	s.Run("adapter domain errors are not transport", func() {
		s.False(errors.IsTransport(errors.InvalidArgument("bad key")))
		s.False(errors.IsTransport(errors.Aborted("conflict")))
	})
}

func (s *ErrorsTestSuite) TestFromRedis() {
	s.Run("passes adapter errors through", func() {
		base := errors.PoolExhausted("full")
		s.Same(base, errors.FromRedis(base, "GET"))
	})

	s.Run("maps context cancellation", func() {
		err := errors.FromRedis(context.Canceled, "GET")
		s.Equal(errors.CodeCanceled, err.Code)
	})

	s.Run("maps io failure to connection lost", func() {
		err := errors.FromRedis(fmt.Errorf("broken pipe"), "SET")
		s.Equal(errors.CodeConnectionLost, err.Code)
		s.Equal("SET", err.Meta["operation"])
	})
}
