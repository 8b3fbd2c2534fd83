// Package script holds named server-side scripts and evaluates them
// atomically with positional key/argument binding. Scripts are addressed
// by a cached content-hash reference; when the store no longer knows the
// reference (restart, SCRIPT FLUSH) the registry transparently resubmits
// the source and retries exactly once.
package script

import (
	"context"
	"crypto/sha1" // #nosec G505 // the store identifies scripts by SHA1
	"encoding/hex"
	stderrors "errors"
	"sort"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/kvbridge/kvbridge/pkg/errors"
	"github.com/kvbridge/kvbridge/pkg/pipeline"
	"github.com/kvbridge/kvbridge/pkg/pool"
)

// Script is a named piece of server-evaluated logic. Sha is the
// content-hash reference the store computes for the same source.
type Script struct {
	Name   string
	Source string
	Sha    string
}

// New computes the server-side reference for source locally.
func New(name, source string) *Script {
	sum := sha1.Sum([]byte(source)) // #nosec G401
	return &Script{
		Name:   name,
		Source: source,
		Sha:    hex.EncodeToString(sum[:]),
	}
}

// Config contains configuration for a script registry.
type Config struct {
	Pool pool.Source
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Pool == nil {
		return errors.InvalidArgument("pool is required")
	}
	return nil
}

// Registry is a per-adapter-instance script cache. Two adapters never
// share a registry, so tests cannot leak cached state into each other.
type Registry struct {
	source pool.Source

	mu      sync.Mutex
	scripts map[string]*Script
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		source:  cfg.Pool,
		scripts: make(map[string]*Script),
	}, nil
}

// Register adds a named script, replacing any previous script with the
// same name. Registration is local; the source reaches the store on
// first evaluation or via Load.
func (r *Registry) Register(name, source string) (*Script, error) {
	if name == "" {
		return nil, errors.InvalidArgument("script name cannot be empty")
	}
	if source == "" {
		return nil, errors.InvalidArgument("script source cannot be empty")
	}

	s := New(name, source)
	r.mu.Lock()
	r.scripts[name] = s
	r.mu.Unlock()
	return s, nil
}

// Get returns the script registered under name.
func (r *Registry) Get(name string) (*Script, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scripts[name]
	return s, ok
}

// Names lists registered script names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load submits every registered script's source to the store so first
// evaluations skip the re-register round trip.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	scripts := make([]*Script, 0, len(r.scripts))
	for _, s := range r.scripts {
		scripts = append(scripts, s)
	}
	r.mu.Unlock()

	return r.source.WithConn(ctx, func(conn pool.Conn) error {
		for _, s := range scripts {
			if err := conn.ScriptLoad(ctx, s.Source).Err(); err != nil {
				return errors.WrapWithCodef(err, errors.CodeScriptFailure,
					"failed to load script %s", s.Name).WithMeta("script", s.Name)
			}
		}
		return nil
	})
}

// EvalName evaluates the script registered under name.
func (r *Registry) EvalName(ctx context.Context, name string, keys []string, args ...interface{}) (pipeline.Result, error) {
	s, ok := r.Get(name)
	if !ok {
		return pipeline.Result{}, errors.NotFoundf("script %s is not registered", name)
	}
	return r.Eval(ctx, s, keys, args...)
}

// Eval executes the script atomically on the store: EVALSHA by cached
// reference first, then one transparent re-register and retry if the
// store reports the reference unknown. That retry is the only automatic
// retry in the core; it is idempotent resubmission of source, nothing
// more.
func (r *Registry) Eval(ctx context.Context, s *Script, keys []string, args ...interface{}) (pipeline.Result, error) {
	if s == nil {
		return pipeline.Result{}, errors.InvalidArgument("script cannot be nil")
	}

	var res pipeline.Result
	err := r.source.WithConn(ctx, func(conn pool.Conn) error {
		val, err := conn.EvalSha(ctx, s.Sha, keys, args...).Result()
		if err != nil && redis.HasErrorPrefix(err, "NOSCRIPT") {
			if loadErr := conn.ScriptLoad(ctx, s.Source).Err(); loadErr != nil {
				return errors.WrapWithCodef(loadErr, errors.CodeScriptFailure,
					"failed to re-register script %s", s.Name).WithMeta("script", s.Name)
			}
			val, err = conn.EvalSha(ctx, s.Sha, keys, args...).Result()
		}
		if err != nil {
			if stderrors.Is(err, redis.Nil) {
				res = pipeline.Result{}
				return nil
			}
			if errors.IsServerReply(err) {
				return errors.WrapWithCodef(err, errors.CodeScriptFailure,
					"script %s failed", s.Name).WithMeta("script", s.Name)
			}
			return errors.FromRedis(err, "EVALSHA")
		}
		res = pipeline.NewResult(val, nil, "EVALSHA")
		return nil
	})
	if err != nil {
		return pipeline.Result{}, err
	}
	return res, nil
}
