// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// frame is one stack entry: the neighbor list of a path node and the next entry to try.
type frame struct {
	nbrs []core.NodeID
	next int
}

// walker holds the state of one path enumeration.
type walker struct {
	snap   *core.Snapshot
	opts   Options
	visit  VisitFunc
	path   []core.NodeID
	onPath []bool
	stack  []frame
	steps  int
}

func newWalker(s *core.Snapshot, opts Options, visit VisitFunc) *walker {
	return &walker{
		snap:   s,
		opts:   opts,
		visit:  visit,
		path:   make([]core.NodeID, 0, s.Len()),
		onPath: make([]bool, s.Len()),
		stack:  make([]frame, 0, s.Len()),
	}
}

// push appends v to the current path and opens its frame.
func (w *walker) push(v core.NodeID) {
	w.path = append(w.path, v)
	w.onPath[v] = true
	w.stack = append(w.stack, frame{nbrs: w.snap.Neighbors(v)})
}

// pop removes the last path node and its frame.
func (w *walker) pop() {
	last := len(w.path) - 1
	w.onPath[w.path[last]] = false
	w.path = w.path[:last]
	w.stack = w.stack[:len(w.stack)-1]
}

// tick accounts one expansion step, honoring cancellation and the step budget.
func (w *walker) tick() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	w.steps++
	if w.opts.StepBudget != Unlimited && w.steps > w.opts.StepBudget {
		return fmt.Errorf("%w: %d steps", ErrStepBudgetExceeded, w.opts.StepBudget)
	}

	return nil
}

// emit hands the path (optionally extended by tail) to the visit callback.
func (w *walker) emit(tail ...core.NodeID) error {
	p := append(w.path, tail...)
	if err := w.visit(p); err != nil {
		return err
	}

	return nil
}

// interiorOK reports whether a path of n nodes satisfies the intermediate-node bounds.
func (w *walker) interiorOK(n int) bool {
	interior := n - 2
	if interior < w.opts.MinIntermediate {
		return false
	}

	return w.opts.MaxIntermediate == Unlimited || interior <= w.opts.MaxIntermediate
}

// canExtend reports whether a path of n nodes may grow by one more interior node and
// still reach a target within MaxIntermediate.
func (w *walker) canExtend(n int) bool {
	return w.opts.MaxIntermediate == Unlimited || n-1 < w.opts.MaxIntermediate
}

// WalkSimplePaths calls visit for every simple path from → to.
//
// Implementation:
//   - Stage 1: Validate inputs and options; from == to yields no paths.
//   - Stage 2: Push from, then repeatedly take the next neighbor entry of the top frame:
//     the target closes a path (reported, not entered), an on-path node is skipped, any
//     other node is pushed. An exhausted frame is popped.
//
// Every neighbor entry is one edge instance, so parallel edges produce distinct paths.
func WalkSimplePaths(s *core.Snapshot, from, to core.NodeID, visit VisitFunc, opts ...Option) error {
	if s == nil {
		return ErrSnapshotNil
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if !s.Valid(from) || !s.Valid(to) {
		return fmt.Errorf("%w: %d→%d", ErrVertexNotFound, from, to)
	}
	if from == to {
		return nil
	}

	w := newWalker(s, o, visit)
	w.push(from)
	for len(w.stack) > 0 {
		if err = w.tick(); err != nil {
			return err
		}
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbrs) {
			w.pop()
			continue
		}
		child := top.nbrs[top.next]
		top.next++

		switch {
		case child == to:
			if w.interiorOK(len(w.path) + 1) {
				if err = w.emit(to); err != nil {
					return finish(err)
				}
			}
		case w.onPath[child]:
		case w.canExtend(len(w.path)):
			w.push(child)
		}
	}

	return nil
}

// WalkFrom calls visit for every simple path that starts at from and has at least one edge.
// Each path is reported when its last node is appended, before the walk extends it.
func WalkFrom(s *core.Snapshot, from core.NodeID, visit VisitFunc, opts ...Option) error {
	if s == nil {
		return ErrSnapshotNil
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if !s.Valid(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}

	w := newWalker(s, o, visit)
	w.push(from)
	for len(w.stack) > 0 {
		if err = w.tick(); err != nil {
			return err
		}
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbrs) {
			w.pop()
			continue
		}
		child := top.nbrs[top.next]
		top.next++

		if w.onPath[child] || !w.canExtend(len(w.path)-1) {
			continue
		}
		w.push(child)
		if w.interiorOK(len(w.path)) {
			if err = w.emit(); err != nil {
				return finish(err)
			}
		}
	}

	return nil
}

// SimplePaths collects every simple path from → to.
func SimplePaths(s *core.Snapshot, from, to core.NodeID, opts ...Option) ([][]core.NodeID, error) {
	var out [][]core.NodeID
	err := WalkSimplePaths(s, from, to, func(p []core.NodeID) error {
		cp := make([]core.NodeID, len(p))
		copy(cp, p)
		out = append(out, cp)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CountSimplePaths returns the number of simple paths from → to.
func CountSimplePaths(s *core.Snapshot, from, to core.NodeID, opts ...Option) (int, error) {
	var n int
	err := WalkSimplePaths(s, from, to, func([]core.NodeID) error {
		n++
		return nil
	}, opts...)

	return n, err
}

// finish maps a visit error to the walk result.
func finish(err error) error {
	if errors.Is(err, ErrStopWalk) {
		return nil
	}

	return fmt.Errorf("dfs: visit: %w", err)
}
