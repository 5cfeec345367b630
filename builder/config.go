// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates the knobs constructors read.
// It is passed by value so constructors cannot leak changes into each other.
type builderConfig struct {
	// idFn maps a zero-based index to a vertex ID.
	idFn IDFn
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
