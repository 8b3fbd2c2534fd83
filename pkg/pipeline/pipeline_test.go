package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kvbridge/kvbridge/internal/redistest"
	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pipeline"
	"github.com/kvbridge/kvbridge/pkg/pool"
)

type PipelineTestSuite struct {
	suite.Suite
	ctx     context.Context
	pool    *pool.Pool
	cleanup func()
	ttl     func(key string) time.Duration
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctx = context.Background()
	mr, closeMR := redistest.Run(s.T())
	p, closePool := redistest.NewPool(s.T(), mr, 2)

	s.pool = p
	s.ttl = mr.TTL
	s.cleanup = func() {
		closePool()
		closeMR()
	}
}

func (s *PipelineTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *PipelineTestSuite) TestResultsArePositional() {
	pipe := pipeline.New(s.pool).
		Set("a", "1").
		Incr("counter").
		Get("a").
		Get("missing").
		SAdd("tags", "go", "redis").
		SMembers("tags")
	s.Equal(6, pipe.Len())

	results, err := pipe.Execute(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 6)

	ok, err := results[0].Bool()
	s.Require().NoError(err)
	s.True(ok)

	n, err := results[1].Int64()
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	val, err := results[2].Text()
	s.Require().NoError(err)
	s.Equal("1", val)

	s.True(results[3].IsNil())

	added, err := results[4].Int64()
	s.Require().NoError(err)
	s.Equal(int64(2), added)

	members, err := results[5].TextSlice()
	s.Require().NoError(err)
	s.ElementsMatch([]string{"go", "redis"}, members)
}

func (s *PipelineTestSuite) TestPerCommandFailureDoesNotAbortTheBatch() {
	seed := pipeline.New(s.pool).Set("text", "abc").Set("n", "1")
	_, err := seed.Execute(s.ctx)
	s.Require().NoError(err)

	results, err := pipeline.New(s.pool).
		Incr("n").
		Incr("text"). // WRONGTYPE-style reply for this slot only
		Incr("n").
		Execute(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 3)

	n, err := results[0].Int64()
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	s.Require().Error(results[1].Err())
	s.False(errors.IsConnectionLost(results[1].Err()))

	n, err = results[2].Int64()
	s.Require().NoError(err)
	s.Equal(int64(3), n)
}

func (s *PipelineTestSuite) TestEmptyPipelineIsRejected() {
	_, err := pipeline.New(s.pool).Execute(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err), "expected InvalidArgument, got %v", err)
}

func (s *PipelineTestSuite) TestTTLAndHashCommands() {
	results, err := pipeline.New(s.pool).
		SetWithTTL("session", "tok", 30*time.Second).
		HSet("user:1", "name", "alice").
		HGet("user:1", "name").
		HDel("user:1", "name").
		Expire("session", 60*time.Second).
		Execute(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 5)

	name, err := results[2].Text()
	s.Require().NoError(err)
	s.Equal("alice", name)

	s.Equal(60*time.Second, s.ttl("session"))
}

func (s *PipelineTestSuite) TestReset() {
	pipe := pipeline.New(s.pool).Set("a", "1")
	s.Equal(1, pipe.Len())
	pipe.Reset()
	s.Equal(0, pipe.Len())
}

func (s *PipelineTestSuite) TestDecodeMismatchIsTyped() {
	results, err := pipeline.New(s.pool).
		SAdd("tags", "go").
		SMembers("tags").
		Execute(s.ctx)
	s.Require().NoError(err)

	_, err = results[1].Int64()
	s.Require().Error(err)
	s.True(errors.IsDecodeError(err), "expected DecodeError, got %v", err)
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
