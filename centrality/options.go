// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/routegraph/dfs"
)

var (
	// ErrSnapshotNil is returned by the context-aware entry points for a nil snapshot.
	ErrSnapshotNil = errors.New("centrality: snapshot is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// PairMode selects which source/target pairs betweenness accumulates over.
type PairMode int

const (
	// OrderedPairs iterates (s,t) and (t,s) separately, so every undirected pair
	// contributes twice before normalization.
	OrderedPairs PairMode = iota

	// UnorderedPairs iterates each undirected pair once; scores stay within [0,1].
	UnorderedPairs
)

// Option configures betweenness computation.
type Option func(*Options)

// Options holds betweenness parameters.
type Options struct {
	// Workers is the number of goroutines sharing source nodes. Defaults to GOMAXPROCS.
	Workers int

	// StepBudget caps path-expansion steps per source node; dfs.Unlimited means no cap.
	StepBudget int

	// Pairs selects ordered or unordered pair accumulation. Defaults to OrderedPairs.
	Pairs PairMode

	err error
}

// DefaultOptions returns GOMAXPROCS workers, no step budget and ordered pairs.
func DefaultOptions() Options {
	return Options{
		Workers:    runtime.GOMAXPROCS(0),
		StepBudget: dfs.Unlimited,
		Pairs:      OrderedPairs,
	}
}

// WithWorkers sets the worker count (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStepBudget caps path-expansion steps per source node (n > 0, or dfs.Unlimited).
// Exceeding it fails the computation with dfs.ErrStepBudgetExceeded.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n == 0 || n < dfs.Unlimited {
			o.err = fmt.Errorf("%w: StepBudget must be > 0 or Unlimited (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithPairMode selects ordered or unordered pair accumulation.
func WithPairMode(m PairMode) Option {
	return func(o *Options) {
		if m != OrderedPairs && m != UnorderedPairs {
			o.err = fmt.Errorf("%w: unknown PairMode %d", ErrOptionViolation, m)
			return
		}
		o.Pairs = m
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
