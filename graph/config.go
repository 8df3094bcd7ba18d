// SPDX-License-Identifier: MIT
package graph

import "github.com/algorithm-ninja/konig/rng"

// Option customizes a Graph at construction time, following the
// functional-options pattern: a panic-on-nil variant (see DESIGN.md for
// why the softer no-op-on-nil alternative was set aside).
type Option func(cfg *config)

// config holds the resolved construction-time settings for a Graph.
type config struct {
	src      *rng.Source
	labeler  Labeler
	weighter Weighter
}

// newConfig resolves defaults, then applies opts in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		src:     rng.Global(),
		labeler: DefaultLabeler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed seeds a dedicated *rng.Source for this graph, overriding any
// previously set source. Prefer this over the process-wide rng.Srand for
// testability: a seeded source makes a graph's output reproducible
// independent of global PRNG state.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.src = rng.New(seed)
	}
}

// WithSource injects an explicit *rng.Source. Panics on nil: a construction
// option receiving a meaningless value is a programmer error.
func WithSource(src *rng.Source) Option {
	if src == nil {
		panic("graph: WithSource(nil)")
	}

	return func(cfg *config) {
		cfg.src = src
	}
}

// WithLabeler overrides the default decimal labeler. Panics on nil.
func WithLabeler(labeler Labeler) Option {
	if labeler == nil {
		panic("graph: WithLabeler(nil)")
	}

	return func(cfg *config) {
		cfg.labeler = labeler
	}
}

// WithWeighter installs a weighter, enabling weighted serialization. A
// Graph constructed without this option serializes with no weight column.
// Unlike WithSource and WithLabeler it does not panic on nil: a nil
// weighter also leaves the output unweighted.
func WithWeighter(weighter Weighter) Option {
	return func(cfg *config) {
		cfg.weighter = weighter
	}
}
