package primitive_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/kvbridge/kvbridge/internal/redistest"
	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/primitive"
)

type SetsTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	sets    *primitive.Sets
	cleanup func()
}

func (s *SetsTestSuite) SetupTest() {
	s.ctx = context.Background()
	mr, closeMR := redistest.Run(s.T())
	p, closePool := redistest.NewPool(s.T(), mr, 2)

	sets, err := primitive.NewSets(&primitive.SetsConfig{Pool: p})
	s.Require().NoError(err)

	s.mr = mr
	s.sets = sets
	s.cleanup = func() {
		closePool()
		closeMR()
	}
}

func (s *SetsTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *SetsTestSuite) TestAddRemoveMembers() {
	n, err := s.sets.Add(s.ctx, "tags", "go", "redis", "go")
	s.Require().NoError(err)
	s.Equal(int64(2), n, "duplicate members count once")

	members, err := s.sets.Members(s.ctx, "tags")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"go", "redis"}, members)

	n, err = s.sets.Remove(s.ctx, "tags", "redis", "missing")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.sets.Cardinality(s.ctx, "tags")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *SetsTestSuite) TestValidation() {
	_, err := s.sets.Add(s.ctx, "", "a")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.sets.Add(s.ctx, "k")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.sets.Intersect(s.ctx)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SetsTestSuite) TestContains() {
	_, err := s.sets.Add(s.ctx, "tags", "go")
	s.Require().NoError(err)

	found, err := s.sets.Contains(s.ctx, "tags", "go")
	s.Require().NoError(err)
	s.True(found)

	found, err = s.sets.Contains(s.ctx, "tags", "rust")
	s.Require().NoError(err)
	s.False(found)
}

func (s *SetsTestSuite) TestPop() {
	_, err := s.sets.Add(s.ctx, "queue", "only")
	s.Require().NoError(err)

	member, popped, err := s.sets.Pop(s.ctx, "queue")
	s.Require().NoError(err)
	s.True(popped)
	s.Equal("only", member)

	_, popped, err = s.sets.Pop(s.ctx, "queue")
	s.Require().NoError(err)
	s.False(popped)
}

func (s *SetsTestSuite) TestMove() {
	_, err := s.sets.Add(s.ctx, "pending", "job1")
	s.Require().NoError(err)

	moved, err := s.sets.Move(s.ctx, "pending", "done", "job1")
	s.Require().NoError(err)
	s.True(moved)

	moved, err = s.sets.Move(s.ctx, "pending", "done", "job1")
	s.Require().NoError(err)
	s.False(moved)

	members, err := s.sets.Members(s.ctx, "done")
	s.Require().NoError(err)
	s.Equal([]string{"job1"}, members)
}

func (s *SetsTestSuite) TestAlgebra() {
	_, err := s.sets.Add(s.ctx, "a", "1", "2", "3")
	s.Require().NoError(err)
	_, err = s.sets.Add(s.ctx, "b", "2", "3", "4")
	s.Require().NoError(err)

	inter, err := s.sets.Intersect(s.ctx, "a", "b")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"2", "3"}, inter)

	union, err := s.sets.Union(s.ctx, "a", "b")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"1", "2", "3", "4"}, union)

	diff, err := s.sets.Difference(s.ctx, "a", "b")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"1"}, diff)

	// One key degenerates to the set's own members.
	solo, err := s.sets.Intersect(s.ctx, "a")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"1", "2", "3"}, solo)
}

func (s *SetsTestSuite) TestAlgebraStores() {
	_, err := s.sets.Add(s.ctx, "a", "1", "2", "3")
	s.Require().NoError(err)
	_, err = s.sets.Add(s.ctx, "b", "2", "3", "4")
	s.Require().NoError(err)

	n, err := s.sets.IntersectStore(s.ctx, "dst", "a", "b")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.sets.UnionStore(s.ctx, "dst", "a", "b")
	s.Require().NoError(err)
	s.Equal(int64(4), n)

	n, err = s.sets.DifferenceStore(s.ctx, "dst", "a", "b")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	members, err := s.sets.Members(s.ctx, "dst")
	s.Require().NoError(err)
	s.Equal([]string{"1"}, members)
}

func TestSetsTestSuite(t *testing.T) {
	suite.Run(t, new(SetsTestSuite))
}
