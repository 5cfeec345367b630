// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

var (
	// ErrSnapshotNil is returned when a nil *core.Snapshot is passed.
	ErrSnapshotNil = errors.New("dfs: snapshot is nil")

	// ErrVertexNotFound indicates an endpoint NodeID outside the snapshot.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStepBudgetExceeded is returned when a walk needs more expansion steps than allowed.
	ErrStepBudgetExceeded = errors.New("dfs: step budget exceeded")

	// ErrStopWalk may be returned by a visit callback to end a walk without error.
	ErrStopWalk = errors.New("dfs: stop walk")
)

// Unlimited disables the MaxIntermediate bound and the step budget.
const Unlimited = -1

// VisitFunc receives each simple path as a node sequence, endpoints included.
// The slice is reused by the walker; copy it to retain it.
type VisitFunc func(path []core.NodeID) error

// Option configures a walk.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MinIntermediate is the minimum number of interior nodes a reported path must have.
	MinIntermediate int

	// MaxIntermediate bounds the number of interior nodes; Unlimited means no bound.
	MaxIntermediate int

	// StepBudget caps the number of expansion steps; Unlimited means no cap.
	StepBudget int

	err error
}

// DefaultOptions returns background context, no length bounds and no step budget.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		MinIntermediate: 0,
		MaxIntermediate: Unlimited,
		StepBudget:      Unlimited,
	}
}

// WithContext sets the context checked at every expansion step. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinIntermediate reports only paths with at least n interior nodes (n ≥ 0).
func WithMinIntermediate(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinIntermediate cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinIntermediate = n
	}
}

// WithMaxIntermediate limits paths to at most n interior nodes (n ≥ 0, or Unlimited).
func WithMaxIntermediate(n int) Option {
	return func(o *Options) {
		if n < Unlimited {
			o.err = fmt.Errorf("%w: MaxIntermediate must be >= 0 or Unlimited (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIntermediate = n
	}
}

// WithStepBudget aborts a walk with ErrStepBudgetExceeded after n expansion steps
// (n > 0, or Unlimited).
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n == 0 || n < Unlimited {
			o.err = fmt.Errorf("%w: StepBudget must be > 0 or Unlimited (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// resolve applies opts over the defaults and validates the combination.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MaxIntermediate != Unlimited && o.MinIntermediate > o.MaxIntermediate {
		return o, fmt.Errorf("%w: MinIntermediate %d > MaxIntermediate %d",
			ErrOptionViolation, o.MinIntermediate, o.MaxIntermediate)
	}

	return o, nil
}
