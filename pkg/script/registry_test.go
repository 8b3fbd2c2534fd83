package script_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kvbridge/kvbridge/internal/redistest"
	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/script"
)

type RegistryTestSuite struct {
	suite.Suite
	ctx      context.Context
	mr       *miniredis.Miniredis
	registry *script.Registry
	client   *redis.Client
	cleanup  func()
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctx = context.Background()
	mr, closeMR := redistest.Run(s.T())
	p, closePool := redistest.NewPool(s.T(), mr, 2)
	client, closeClient := redistest.NewClient(s.T(), mr)

	registry, err := script.NewRegistry(&script.Config{Pool: p})
	s.Require().NoError(err)
	s.Require().NoError(script.RegisterBuiltins(registry))

	s.mr = mr
	s.registry = registry
	s.client = client
	s.cleanup = func() {
		closeClient()
		closePool()
		closeMR()
	}
}

func (s *RegistryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RegistryTestSuite) TestRegisterAndLookup() {
	sc, err := s.registry.Register("double", "return tonumber(ARGV[1]) * 2")
	s.Require().NoError(err)
	s.Equal("double", sc.Name)
	s.Len(sc.Sha, 40)

	got, ok := s.registry.Get("double")
	s.True(ok)
	s.Equal(sc.Sha, got.Sha)

	_, ok = s.registry.Get("missing")
	s.False(ok)

	s.Contains(s.registry.Names(), "double")
	s.Contains(s.registry.Names(), script.NameRateLimiter)
}

func (s *RegistryTestSuite) TestRegisterValidation() {
	_, err := s.registry.Register("", "return 1")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.registry.Register("x", "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegistryTestSuite) TestEvalFirstUseRegistersTransparently() {
	// Nothing is loaded yet, so the first evaluation hits the unknown
	// reference path and resubmits the source.
	res, err := s.registry.EvalName(s.ctx, script.NameSetIfAbsent, []string{"k"}, "v")
	s.Require().NoError(err)
	written, err := res.Bool()
	s.Require().NoError(err)
	s.True(written)

	got, err := s.mr.Get("k")
	s.Require().NoError(err)
	s.Equal("v", got)
}

func (s *RegistryTestSuite) TestEvalSurvivesScriptFlush() {
	_, err := s.registry.EvalName(s.ctx, script.NameCompareAndSet, []string{"k"}, "a", "b")
	s.Require().NoError(err)

	// The server forgets every cached script; the next evaluation must
	// re-register and retry without surfacing an error.
	s.Require().NoError(s.client.ScriptFlush(s.ctx).Err())

	res, err := s.registry.EvalName(s.ctx, script.NameCompareAndSet, []string{"k"}, "a", "b")
	s.Require().NoError(err)
	swapped, err := res.Bool()
	s.Require().NoError(err)
	s.False(swapped)
}

func (s *RegistryTestSuite) TestEvalUnregisteredName() {
	_, err := s.registry.EvalName(s.ctx, "nope", nil)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err), "expected NotFound, got %v", err)
}

func (s *RegistryTestSuite) TestEvalNilScript() {
	_, err := s.registry.Eval(s.ctx, nil, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegistryTestSuite) TestScriptErrorIsTyped() {
	_, err := s.registry.Register("boom", `return redis.error_reply("boom")`)
	s.Require().NoError(err)

	_, err = s.registry.EvalName(s.ctx, "boom", nil)
	s.Require().Error(err)
	s.True(errors.IsScriptFailure(err), "expected ScriptFailure, got %v", err)
}

func (s *RegistryTestSuite) TestEvalNilReply() {
	_, err := s.registry.Register("nothing", "return nil")
	s.Require().NoError(err)

	res, err := s.registry.EvalName(s.ctx, "nothing", nil)
	s.Require().NoError(err)
	s.True(res.IsNil())
}

func (s *RegistryTestSuite) TestLoad() {
	s.Require().NoError(s.registry.Load(s.ctx))

	sc, ok := s.registry.Get(script.NameRateLimiter)
	s.Require().True(ok)
	exists, err := s.client.ScriptExists(s.ctx, sc.Sha).Result()
	s.Require().NoError(err)
	s.Equal([]bool{true}, exists)
}

func (s *RegistryTestSuite) TestMultiCounterBuiltin() {
	res, err := s.registry.EvalName(s.ctx, script.NameMultiCounter, []string{"a", "b"}, 3)
	s.Require().NoError(err)
	raw, err := res.Slice()
	s.Require().NoError(err)
	s.Equal([]interface{}{int64(3), int64(3)}, raw)
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

type RateLimiterTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	limiter *script.RateLimiter
	cleanup func()
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.ctx = context.Background()
	mr, closeMR := redistest.Run(s.T())
	p, closePool := redistest.NewPool(s.T(), mr, 2)

	registry, err := script.NewRegistry(&script.Config{Pool: p})
	s.Require().NoError(err)
	s.Require().NoError(script.RegisterBuiltins(registry))

	limiter, err := script.NewRateLimiter(registry)
	s.Require().NoError(err)

	s.mr = mr
	s.limiter = limiter
	s.cleanup = func() {
		closePool()
		closeMR()
	}
}

func (s *RateLimiterTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RateLimiterTestSuite) TestWindowLimit() {
	const limit = 5
	window := 10 * time.Second

	for i := 0; i < limit; i++ {
		allowed, err := s.limiter.Allow(s.ctx, "rl:api", limit, window)
		s.Require().NoError(err)
		s.True(allowed, "call %d within the limit must be admitted", i+1)
	}

	allowed, err := s.limiter.Allow(s.ctx, "rl:api", limit, window)
	s.Require().NoError(err)
	s.False(allowed, "call over the limit must be denied")

	// The window key expires and the counter starts over.
	s.mr.FastForward(window)
	allowed, err = s.limiter.Allow(s.ctx, "rl:api", limit, window)
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *RateLimiterTestSuite) TestKeysAreIndependent() {
	allowed, err := s.limiter.Allow(s.ctx, "rl:a", 1, 10*time.Second)
	s.Require().NoError(err)
	s.True(allowed)

	allowed, err = s.limiter.Allow(s.ctx, "rl:a", 1, 10*time.Second)
	s.Require().NoError(err)
	s.False(allowed)

	allowed, err = s.limiter.Allow(s.ctx, "rl:b", 1, 10*time.Second)
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *RateLimiterTestSuite) TestValidation() {
	_, err := s.limiter.Allow(s.ctx, "", 1, time.Second)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.limiter.Allow(s.ctx, "k", 0, time.Second)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.limiter.Allow(s.ctx, "k", 1, 500*time.Millisecond)
	s.True(errors.IsInvalidArgument(err))
}

func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}
