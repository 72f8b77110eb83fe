// SPDX-License-Identifier: MIT

package samples

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults.
const (
	DefaultSeed int64 = 42
	DefaultSize       = 10
	DefaultMin        = 1
	DefaultMax        = 99
)

// Option customizes a generator by mutating its config.
type Option func(*config)

// config aggregates every generator knob. Later options override earlier ones.
type config struct {
	rng      *rand.Rand
	size     int
	sized    bool // WithSize was given
	min, max int
	idFn     IDFn
	weightFn WeightFn
}

func newConfig(opts ...Option) config {
	cfg := config{
		size:     DefaultSize,
		min:      DefaultMin,
		max:      DefaultMax,
		idFn:     ExcelColumnIDFn,
		weightFn: UniformWeightFn(1, 9),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return cfg
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("samples: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSize sets the element or node count. Panics if n < 0.
func WithSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("samples: WithSize(%d)", n))
	}
	return func(c *config) {
		c.size = n
		c.sized = true
	}
}

// WithRange bounds generated values to [lo, hi]. Panics if hi < lo.
func WithRange(lo, hi int) Option {
	if hi < lo {
		panic(fmt.Sprintf("samples: WithRange(%d, %d)", lo, hi))
	}
	return func(c *config) {
		c.min, c.max = lo, hi
	}
}

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("samples: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("samples: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}
