// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dfs"
)

// Betweenness returns the all-simple-paths betweenness score of every node, keyed by NodeID.
//
// For every ordered pair (s,t) with s≠t, let P(s,t) be the set of simple s→t paths. Each
// interior node of each path in P(s,t) gains 1/|P(s,t)|. Totals are divided by
// (N-1)(N-2)/2. For N < 3 every node scores 0.
//
// A nil snapshot yields an empty map. The cost is exponential in graph density; see
// BetweennessContext for cancellation and step budgets.
func Betweenness(s *core.Snapshot) map[core.NodeID]float64 {
	if s == nil {
		return map[core.NodeID]float64{}
	}
	// Background context and no budget: the walk cannot fail.
	out, _ := BetweennessContext(context.Background(), s)

	return out
}

// BetweennessContext is Betweenness with cancellation, a per-source step budget, a worker
// count and a pair mode. Any failure aborts the whole computation; no partial scores are
// returned.
//
// Errors: ErrSnapshotNil, ErrOptionViolation, dfs.ErrStepBudgetExceeded, ctx.Err().
func BetweennessContext(ctx context.Context, s *core.Snapshot, opts ...Option) (map[core.NodeID]float64, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := s.Len()
	out := make(map[core.NodeID]float64, n)
	if n < 3 {
		// No node can be interior to a path, and the normalizer is not positive.
		for v := 0; v < n; v++ {
			out[core.NodeID(v)] = 0
		}

		return out, nil
	}

	partials := make([][]float64, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for src := 0; src < n; src++ {
		src := core.NodeID(src)
		g.Go(func() error {
			acc, err := fromSource(gctx, s, src, o)
			if err != nil {
				return fmt.Errorf("centrality: betweenness from %q: %w", s.Label(src), err)
			}
			partials[src] = acc

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Summation in source order keeps the result independent of scheduling.
	total := make([]float64, n)
	for _, acc := range partials {
		for v, x := range acc {
			total[v] += x
		}
	}
	norm := float64(n-1) * float64(n-2) / 2
	for v, x := range total {
		out[core.NodeID(v)] = x / norm
	}

	return out, nil
}

// fromSource enumerates every simple path leaving src once and returns the unnormalized
// contribution of all pairs (src,t) to each node.
func fromSource(ctx context.Context, s *core.Snapshot, src core.NodeID, o Options) ([]float64, error) {
	n := s.Len()
	paths := make([]int, n)     // paths[t] = |P(src,t)|
	through := make([]int, n*n) // through[t*n+v] = paths in P(src,t) with v interior

	err := dfs.WalkFrom(s, src, func(p []core.NodeID) error {
		t := p[len(p)-1]
		if o.Pairs == UnorderedPairs && t < src {
			return nil
		}
		paths[t]++
		row := int(t) * n
		for _, v := range p[1 : len(p)-1] {
			through[row+int(v)]++
		}

		return nil
	}, dfs.WithContext(ctx), dfs.WithStepBudget(o.StepBudget))
	if err != nil {
		return nil, err
	}

	acc := make([]float64, n)
	for t := 0; t < n; t++ {
		if paths[t] == 0 {
			continue
		}
		total := float64(paths[t])
		row := t * n
		for v := 0; v < n; v++ {
			if c := through[row+v]; c > 0 {
				acc[v] += float64(c) / total
			}
		}
	}

	return acc, nil
}
