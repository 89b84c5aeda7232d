// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options resolved into an immutable builderConfig.
// Last option wins; nil arguments are ignored.

package builder

import (
	"math/rand"
	"strconv"
)

// Option customizes fixture generation.
type Option func(*builderConfig)

type builderConfig struct {
	// Description strategy: 1-based node index -> text.
	descFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn func(*rand.Rand) int64
}

const defaultConstWeight = int64(1)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		descFn:   defaultDescription,
		rng:      nil,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultDescription names node i "node i".
func defaultDescription(i int) string {
	return "node " + strconv.Itoa(i)
}

// WithDescriptionFn sets how node i (1-based) is described.
func WithDescriptionFn(fn func(int) string) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.descFn = fn
		}
	}
}

// WithRand uses r for every stochastic decision.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. It receives the configured RNG
// (possibly nil) and should return a positive weight; non-positive weights
// are emitted as-is so fixtures can exercise rejection paths.
func WithWeightFn(fn func(*rand.Rand) int64) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithConstantWeight emits every edge with weight w.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}

// UniformWeightFn draws integer weights uniformly from [min, max].
// Falls back to min when rng is nil or max <= min.
func UniformWeightFn(min, max int64) func(*rand.Rand) int64 {
	return func(rng *rand.Rand) int64 {
		if rng == nil || max <= min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
