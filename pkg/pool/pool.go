// Package pool manages a bounded collection of store connections and hands
// them out as exclusive leases.
package pool

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kvbridge/kvbridge/pkg/errors"
)

const (
	defaultSize           = 10
	defaultAcquireTimeout = 5 * time.Second
	defaultProbeAfter     = 30 * time.Second
)

// Config contains configuration for a connection pool.
type Config struct {
	// Dial establishes one new connection. Required.
	Dial func(ctx context.Context) (Conn, error)

	// Size bounds leased + idle connections. Defaults to 10.
	Size int

	// AcquireTimeout bounds how long Acquire blocks waiting for a free
	// slot before failing with PoolExhausted. Defaults to 5s.
	AcquireTimeout time.Duration

	// ProbeAfter is how long a connection may sit idle before it is
	// PINGed on its next acquisition. A probe failure drops the
	// connection and dials a replacement under the same acquisition.
	// Negative means probe on every acquisition. Defaults to 30s.
	ProbeAfter time.Duration

	// Logger receives connection lifecycle events at debug level.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Dial == nil {
		return errors.InvalidArgument("dial function is required")
	}
	if cfg.Size < 0 {
		return errors.InvalidArgument("pool size cannot be negative")
	}
	return nil
}

type idleConn struct {
	conn     Conn
	lastUsed time.Time
}

// Pool is a bounded pool of store connections. Acquiring returns an
// exclusive Lease; at most Size connections exist between idle and leased.
type Pool struct {
	dial           func(ctx context.Context) (Conn, error)
	size           int
	acquireTimeout time.Duration
	probeAfter     time.Duration
	logger         *slog.Logger

	// tokens is a counting semaphore: one token per lease the pool may
	// still grant. Idle connections do not hold tokens; an acquisition
	// consumes a token whether it recycles an idle connection or dials.
	tokens chan struct{}

	mu     sync.Mutex
	idle   []idleConn
	leased int
	closed bool
}

// New creates a connection pool. No connections are dialed up front; the
// pool fills lazily as leases are taken.
func New(cfg *Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := cfg.Size
	if size == 0 {
		size = defaultSize
	}
	acquireTimeout := cfg.AcquireTimeout
	if acquireTimeout == 0 {
		acquireTimeout = defaultAcquireTimeout
	}
	probeAfter := cfg.ProbeAfter
	if probeAfter == 0 {
		probeAfter = defaultProbeAfter
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tokens := make(chan struct{}, size)
	for i := 0; i < size; i++ {
		tokens <- struct{}{}
	}

	return &Pool{
		dial:           cfg.Dial,
		size:           size,
		acquireTimeout: acquireTimeout,
		probeAfter:     probeAfter,
		logger:         logger,
		tokens:         tokens,
	}, nil
}

// Acquire blocks until a connection is available or the acquisition
// timeout elapses, then returns an exclusive lease. The caller must call
// Release exactly once on every returned lease.
func (p *Pool) Acquire(ctx context.Context) (*Lease, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errors.FailedPrecondition("pool is closed")
	}
	p.mu.Unlock()

	timer := time.NewTimer(p.acquireTimeout)
	defer timer.Stop()

	select {
	case <-p.tokens:
	case <-timer.C:
		return nil, errors.PoolExhaustedf("no connection available within %s", p.acquireTimeout)
	case <-ctx.Done():
		return nil, errors.Canceled("acquire canceled").WithMeta("cause", ctx.Err().Error())
	}

	conn, err := p.takeConn(ctx)
	if err != nil {
		p.returnToken()
		return nil, err
	}

	p.mu.Lock()
	p.leased++
	p.mu.Unlock()

	return &Lease{pool: p, conn: conn}, nil
}

// takeConn recycles an idle connection (probing it if it sat idle too
// long) or dials a fresh one. The caller holds a token.
func (p *Pool) takeConn(ctx context.Context) (Conn, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errors.FailedPrecondition("pool is closed")
	}
	var recycled *idleConn
	if n := len(p.idle); n > 0 {
		ic := p.idle[n-1]
		p.idle = p.idle[:n-1]
		recycled = &ic
	}
	p.mu.Unlock()

	if recycled != nil {
		if time.Since(recycled.lastUsed) < p.probeAfter {
			return recycled.conn, nil
		}
		if err := recycled.conn.Ping(ctx).Err(); err == nil {
			return recycled.conn, nil
		}
		p.logger.Debug("idle connection failed liveness probe, replacing")
		_ = recycled.conn.Close()
	}

	conn, err := p.dial(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeConnectFailed, "failed to establish connection")
	}
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, errors.WrapWithCode(err, errors.CodeConnectFailed, "new connection failed liveness probe")
	}
	return conn, nil
}

func (p *Pool) returnToken() {
	select {
	case p.tokens <- struct{}{}:
	default:
		// Size tokens exist in total; this cannot overflow unless
		// Release is called twice, which Lease prevents.
	}
}

// release is called by Lease exactly once.
func (p *Pool) release(conn Conn, broken bool) {
	p.mu.Lock()
	p.leased--
	if p.closed || broken {
		p.mu.Unlock()
		_ = conn.Close()
		if broken {
			p.logger.Debug("discarded broken connection")
		}
		p.returnToken()
		return
	}
	p.idle = append(p.idle, idleConn{conn: conn, lastUsed: time.Now()})
	p.mu.Unlock()
	p.returnToken()
}

// WithConn leases a connection, runs fn, and releases on every exit path,
// including panics. If fn saw a transport failure, or the caller's context
// ended while a command may still be in flight, the connection is
// discarded rather than recycled so no later borrower can read a stale
// pending reply.
func (p *Pool) WithConn(ctx context.Context, fn func(Conn) error) error {
	lease, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer lease.Release()

	if err := fn(lease.Conn()); err != nil {
		if errors.IsTransport(err) || ctx.Err() != nil {
			lease.MarkBroken()
		}
		return err
	}
	if ctx.Err() != nil {
		lease.MarkBroken()
	}
	return nil
}

// Stats is a point-in-time snapshot of pool occupancy.
type Stats struct {
	Idle   int
	Leased int
	Size   int
}

// Stats reports current pool occupancy.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{Idle: len(p.idle), Leased: p.leased, Size: p.size}
}

// Close shuts the pool down: idle connections are closed immediately,
// outstanding leases are closed as they are released, and further
// acquisitions fail.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	for _, ic := range idle {
		_ = ic.conn.Close()
	}
	return nil
}

var _ Source = (*Pool)(nil)

// Lease is a temporary exclusive borrow of one pooled connection.
type Lease struct {
	pool *Pool
	conn Conn

	mu       sync.Mutex
	broken   bool
	released bool
}

// Conn returns the leased connection. The connection must not be used
// after Release.
func (l *Lease) Conn() Conn {
	return l.conn
}

// MarkBroken flags the connection so Release closes it instead of
// returning it to the pool. Call it after a transport failure or whenever
// a reply may still be unread on the wire.
func (l *Lease) MarkBroken() {
	l.mu.Lock()
	l.broken = true
	l.mu.Unlock()
}

// Release returns the connection to the pool. Safe to call more than
// once; only the first call has an effect.
func (l *Lease) Release() {
	l.mu.Lock()
	if l.released {
		l.mu.Unlock()
		return
	}
	l.released = true
	broken := l.broken
	l.mu.Unlock()

	l.pool.release(l.conn, broken)
}
