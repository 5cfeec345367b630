// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start NodeID is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrSnapshotNil is returned if a nil snapshot is passed.
	ErrSnapshotNil = errors.New("bfs: snapshot is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Unreached marks Depth entries of nodes the search did not reach.
const Unreached = -1

// NoParent marks Parent entries of the start node and of unreached nodes.
const NoParent core.NodeID = -1

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called when a node is dequeued and visited. Returning an error aborts BFS.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(core.NodeID, int) {},
		OnVisit:   func(core.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; an error stops the search.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal. Depth and Parent are indexed by NodeID.
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  []int
	Parent []core.NodeID
}

// Reached reports whether id was reached from the start node.
func (r *Result) Reached(id core.NodeID) bool {
	return id >= 0 && int(id) < len(r.Depth) && r.Depth[id] != Unreached
}

// DistanceSum returns the sum of hop distances from the start to every reached node.
// The start contributes 0; unreached nodes contribute nothing.
func (r *Result) DistanceSum() int {
	var sum int
	for _, id := range r.Order {
		sum += r.Depth[id]
	}

	return sum
}

// PathTo reconstructs the node sequence from the start to dest.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to node %d", ErrNoPath, dest)
	}
	path := make([]core.NodeID, 0, r.Depth[dest]+1)
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
