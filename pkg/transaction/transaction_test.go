package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kvbridge/kvbridge/internal/redistest"
	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pool"
	"github.com/kvbridge/kvbridge/pkg/transaction"
)

type TransactionTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	pool    *pool.Pool
	writer  *redis.Client
	cleanup func()
}

func (s *TransactionTestSuite) SetupTest() {
	s.ctx = context.Background()
	mr, closeMR := redistest.Run(s.T())
	p, closePool := redistest.NewPool(s.T(), mr, 2)
	writer, closeWriter := redistest.NewClient(s.T(), mr)

	s.mr = mr
	s.pool = p
	s.writer = writer
	s.cleanup = func() {
		closeWriter()
		closePool()
		closeMR()
	}
}

func (s *TransactionTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *TransactionTestSuite) newTx() *transaction.Tx {
	tx, err := transaction.New(&transaction.Config{Pool: s.pool})
	s.Require().NoError(err)
	return tx
}

func (s *TransactionTestSuite) TestCommitAppliesEverything() {
	s.Require().NoError(s.mr.Set("balance", "100"))

	tx := s.newTx()
	s.Require().NoError(tx.Watch(s.ctx, "balance"))
	s.Equal(transaction.StateWatching, tx.State())

	balance, found, err := tx.Get(s.ctx, "balance")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("100", balance)

	s.Require().NoError(tx.IncrBy("balance", 50))
	s.Require().NoError(tx.Set("audit", "deposit"))
	s.Require().NoError(tx.SAdd("touched", "balance"))
	s.Equal(transaction.StateQueued, tx.State())
	s.Equal(3, tx.Len())

	results, err := tx.Exec(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal(transaction.StateCommitted, tx.State())

	n, err := results[0].Int64()
	s.Require().NoError(err)
	s.Equal(int64(150), n)

	got, err := s.mr.Get("audit")
	s.Require().NoError(err)
	s.Equal("deposit", got)

	s.Equal(0, s.pool.Stats().Leased, "lease must be released after commit")
}

func (s *TransactionTestSuite) TestConcurrentWriterAborts() {
	s.Require().NoError(s.mr.Set("balance", "100"))

	tx := s.newTx()
	s.Require().NoError(tx.Watch(s.ctx, "balance"))

	balance, _, err := tx.Get(s.ctx, "balance")
	s.Require().NoError(err)
	s.Equal("100", balance)

	// Another client writes the watched key before we commit.
	s.Require().NoError(s.writer.Set(s.ctx, "balance", "999", 0).Err())

	s.Require().NoError(tx.IncrBy("balance", 50))
	s.Require().NoError(tx.Set("audit", "deposit"))

	_, err = tx.Exec(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsAborted(err), "expected Aborted, got %v", err)
	s.Equal(transaction.StateAborted, tx.State())

	// Nothing from the queued batch was applied.
	got, err := s.mr.Get("balance")
	s.Require().NoError(err)
	s.Equal("999", got)
	s.False(s.mr.Exists("audit"))

	s.Equal(0, s.pool.Stats().Leased, "lease must be released after abort")
}

func (s *TransactionTestSuite) TestStateMachineMisuse() {
	tx := s.newTx()

	err := tx.Set("k", "v")
	s.True(errors.IsFailedPrecondition(err), "queue before watch: %v", err)

	_, err = tx.Exec(s.ctx)
	s.True(errors.IsFailedPrecondition(err), "exec before watch: %v", err)

	_, _, err = tx.Get(s.ctx, "k")
	s.True(errors.IsFailedPrecondition(err), "read before watch: %v", err)

	err = tx.Watch(s.ctx)
	s.True(errors.IsInvalidArgument(err), "watch with no keys: %v", err)

	s.Require().NoError(tx.Watch(s.ctx, "k"))
	err = tx.Watch(s.ctx, "other")
	s.True(errors.IsFailedPrecondition(err), "watch twice: %v", err)

	s.Require().NoError(tx.Set("k", "v"))
	_, err = tx.Exec(s.ctx)
	s.Require().NoError(err)

	err = tx.Set("k", "again")
	s.True(errors.IsFailedPrecondition(err), "queue after commit: %v", err)
}

func (s *TransactionTestSuite) TestDiscard() {
	s.Require().NoError(s.mr.Set("k", "v"))

	tx := s.newTx()
	s.Require().NoError(tx.Watch(s.ctx, "k"))
	s.Require().NoError(tx.Set("k", "changed"))

	s.Require().NoError(tx.Discard(s.ctx))
	s.Equal(transaction.StateAborted, tx.State())
	s.Equal(0, s.pool.Stats().Leased)

	got, err := s.mr.Get("k")
	s.Require().NoError(err)
	s.Equal("v", got)

	// Discard is safe to repeat and safe on terminal states.
	s.Require().NoError(tx.Discard(s.ctx))

	_, err = tx.Exec(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *TransactionTestSuite) TestQueuedCommandVariety() {
	tx := s.newTx()
	s.Require().NoError(tx.Watch(s.ctx, "k"))

	s.Require().NoError(tx.Set("k", "v"))
	s.Require().NoError(tx.SetWithTTL("session", "tok", 30*time.Second))
	s.Require().NoError(tx.Incr("hits"))
	s.Require().NoError(tx.HSet("user:1", "name", "alice"))
	s.Require().NoError(tx.Expire("k", 60*time.Second))
	s.Require().NoError(tx.Command("append", "k", "!"))
	s.Require().NoError(tx.Delete("gone"))
	s.Require().NoError(tx.SRem("tags", "old"))

	results, err := tx.Exec(s.ctx)
	s.Require().NoError(err)
	s.Len(results, 8)

	s.Equal(30*time.Second, s.mr.TTL("session"))
	got, err := s.mr.Get("k")
	s.Require().NoError(err)
	s.Equal("v!", got)
}

func (s *TransactionTestSuite) TestQueueValidation() {
	tx := s.newTx()
	s.Require().NoError(tx.Watch(s.ctx, "k"))

	s.True(errors.IsInvalidArgument(tx.Set("", "v")))
	s.True(errors.IsInvalidArgument(tx.SetWithTTL("k", "v", 500*time.Millisecond)))
	s.True(errors.IsInvalidArgument(tx.HSet("k", "", "v")))
	s.True(errors.IsInvalidArgument(tx.SAdd("k")))
	s.True(errors.IsInvalidArgument(tx.Command("")))

	s.Require().NoError(tx.Discard(s.ctx))
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}
