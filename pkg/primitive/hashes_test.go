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

type HashesTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	hashes  *primitive.Hashes
	cleanup func()
}

func (s *HashesTestSuite) SetupTest() {
	s.ctx = context.Background()
	mr, closeMR := redistest.Run(s.T())
	p, closePool := redistest.NewPool(s.T(), mr, 2)

	hashes, err := primitive.NewHashes(&primitive.HashesConfig{Pool: p})
	s.Require().NoError(err)

	s.mr = mr
	s.hashes = hashes
	s.cleanup = func() {
		closePool()
		closeMR()
	}
}

func (s *HashesTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *HashesTestSuite) TestSetGet() {
	created, err := s.hashes.Set(s.ctx, "user:1", "name", "alice")
	s.Require().NoError(err)
	s.True(created)

	created, err = s.hashes.Set(s.ctx, "user:1", "name", "bob")
	s.Require().NoError(err)
	s.False(created, "overwriting an existing field is not a create")

	val, found, err := s.hashes.Get(s.ctx, "user:1", "name")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("bob", val)

	_, found, err = s.hashes.Get(s.ctx, "user:1", "missing")
	s.Require().NoError(err)
	s.False(found)

	_, found, err = s.hashes.Get(s.ctx, "missing", "name")
	s.Require().NoError(err)
	s.False(found)
}

func (s *HashesTestSuite) TestValidation() {
	_, err := s.hashes.Set(s.ctx, "", "f", "v")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.hashes.Set(s.ctx, "k", "", "v")
	s.True(errors.IsInvalidArgument(err))

	err = s.hashes.SetMany(s.ctx, "k", nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.hashes.GetMany(s.ctx, "k")
	s.True(errors.IsInvalidArgument(err))
}

func (s *HashesTestSuite) TestSetNX() {
	set, err := s.hashes.SetNX(s.ctx, "user:1", "name", "alice")
	s.Require().NoError(err)
	s.True(set)

	set, err = s.hashes.SetNX(s.ctx, "user:1", "name", "bob")
	s.Require().NoError(err)
	s.False(set)

	val, _, err := s.hashes.Get(s.ctx, "user:1", "name")
	s.Require().NoError(err)
	s.Equal("alice", val)
}

func (s *HashesTestSuite) TestSetManyGetAll() {
	s.Require().NoError(s.hashes.SetMany(s.ctx, "user:1", map[string]string{
		"name": "alice",
		"role": "admin",
	}))

	all, err := s.hashes.GetAll(s.ctx, "user:1")
	s.Require().NoError(err)
	s.Equal(map[string]string{"name": "alice", "role": "admin"}, all)

	all, err = s.hashes.GetAll(s.ctx, "missing")
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *HashesTestSuite) TestGetManyPositional() {
	s.Require().NoError(s.hashes.SetMany(s.ctx, "user:1", map[string]string{
		"name": "alice",
		"role": "admin",
	}))

	vals, err := s.hashes.GetMany(s.ctx, "user:1", "role", "missing", "name")
	s.Require().NoError(err)
	s.Require().Len(vals, 3)
	s.Require().NotNil(vals[0])
	s.Equal("admin", *vals[0])
	s.Nil(vals[1])
	s.Require().NotNil(vals[2])
	s.Equal("alice", *vals[2])
}

func (s *HashesTestSuite) TestDeleteExistsLen() {
	s.Require().NoError(s.hashes.SetMany(s.ctx, "user:1", map[string]string{
		"name": "alice",
		"role": "admin",
	}))

	n, err := s.hashes.Len(s.ctx, "user:1")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	found, err := s.hashes.Exists(s.ctx, "user:1", "role")
	s.Require().NoError(err)
	s.True(found)

	n, err = s.hashes.Delete(s.ctx, "user:1", "role", "missing")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	found, err = s.hashes.Exists(s.ctx, "user:1", "role")
	s.Require().NoError(err)
	s.False(found)
}

func (s *HashesTestSuite) TestFieldsAndValues() {
	s.Require().NoError(s.hashes.SetMany(s.ctx, "user:1", map[string]string{
		"name": "alice",
		"role": "admin",
	}))

	fields, err := s.hashes.Fields(s.ctx, "user:1")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"name", "role"}, fields)

	values, err := s.hashes.Values(s.ctx, "user:1")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"alice", "admin"}, values)
}

func (s *HashesTestSuite) TestIncrBy() {
	n, err := s.hashes.IncrBy(s.ctx, "stats", "visits", 3)
	s.Require().NoError(err)
	s.Equal(int64(3), n)

	n, err = s.hashes.IncrBy(s.ctx, "stats", "visits", -1)
	s.Require().NoError(err)
	s.Equal(int64(2), n)
}

func TestHashesTestSuite(t *testing.T) {
	suite.Run(t, new(HashesTestSuite))
}
