// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// Closeness returns 1 / (sum of hop distances to every reachable node) per node label.
// Unreachable nodes are left out of the sum; a node that reaches nothing scores 0.
// A nil or empty snapshot yields an empty map.
// Complexity: O(V·(V+E)).
func Closeness(s *core.Snapshot) map[string]float64 {
	if s == nil {
		return map[string]float64{}
	}
	// Background context and valid start nodes: BFS has no failure path here.
	out, _ := ClosenessContext(context.Background(), s)

	return out
}

// ClosenessContext is Closeness with cancellation checked inside every BFS.
func ClosenessContext(ctx context.Context, s *core.Snapshot) (map[string]float64, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}
	out := make(map[string]float64, s.Len())
	for v := 0; v < s.Len(); v++ {
		id := core.NodeID(v)
		res, err := bfs.BFS(s, id, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("centrality: closeness of %q: %w", s.Label(id), err)
		}
		out[s.Label(id)] = reciprocal(res.DistanceSum())
	}

	return out, nil
}

// reciprocal returns 1/sum, or 0 when sum is not positive.
func reciprocal(sum int) float64 {
	if sum <= 0 {
		return 0
	}

	return 1 / float64(sum)
}
