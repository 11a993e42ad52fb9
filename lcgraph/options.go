// File: options.go
// Role: Loader configuration via functional options.

package lcgraph

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/ustiugov/Galois/nhood"
)

// Option configures a graph loader.
type Option func(*config)

// config is shared by every layout; zero fields get defaults in newConfig.
type config struct {
	mgr     nhood.Manager
	workers int
	log     zerolog.Logger
	audit   func()
	logSet  bool
}

// newConfig applies opts over the defaults: GOMAXPROCS workers, a fresh
// PtrManager sized to them, a no-op logger, no write audit.
func newConfig(opts []Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.mgr == nil {
		cfg.mgr = nhood.NewPtrManager(cfg.workers)
	}
	if !cfg.logSet {
		cfg.log = zerolog.Nop()
	}

	return cfg
}

// WithManager routes the graph's conflict acquisition through m instead
// of a graph-private PtrManager. Use it to share one phase-scoped record
// registry across graphs, or to substitute the map-indexed variant.
func WithManager(m nhood.Manager) Option {
	return func(c *config) {
		if m != nil {
			c.mgr = m
		}
	}
}

// WithWorkers fixes the worker count used for partitioning and local
// iteration. Non-positive values fall back to runtime.GOMAXPROCS(0).
func WithWorkers(w int) Option {
	return func(c *config) { c.workers = w }
}

// WithLogger attaches a logger to the load path. Library code is silent
// by default; loaders emit one debug line per completed load and error
// context on fatal construction failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
		c.logSet = true
	}
}

// WithWriteAudit registers a hook fired on every WriteIntent access.
func WithWriteAudit(fn func()) Option {
	return func(c *config) { c.audit = fn }
}

// auditWrite feeds the write-auditing layer for WriteIntent accesses.
func (c *config) auditWrite(p ConflictPolicy) {
	if p.writes() {
		writeIntents.Inc()
		if c.audit != nil {
			c.audit()
		}
	}
}
