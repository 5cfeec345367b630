// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routegraph/core"
)

// Scores bundles the three measures computed over one snapshot.
type Scores struct {
	Snapshot    *core.Snapshot
	Degree      map[string]int
	Closeness   map[string]float64
	Betweenness map[core.NodeID]float64
}

// Compute runs degree, closeness and betweenness concurrently over s.
// opts configure the betweenness pass. The first failure cancels the other measures.
func Compute(ctx context.Context, s *core.Snapshot, opts ...Option) (*Scores, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}
	if _, err := resolve(opts); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sc := &Scores{Snapshot: s}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sc.Degree = Degree(s)
		return nil
	})
	g.Go(func() error {
		var err error
		sc.Closeness, err = ClosenessContext(gctx, s)
		return err
	})
	g.Go(func() error {
		var err error
		sc.Betweenness, err = BetweennessContext(gctx, s, opts...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sc, nil
}

// BetweennessByLabel returns the betweenness scores keyed by node label.
func (sc *Scores) BetweennessByLabel() map[string]float64 {
	out := make(map[string]float64, len(sc.Betweenness))
	for id, x := range sc.Betweenness {
		out[sc.Snapshot.Label(id)] = x
	}

	return out
}

// Ranking is one entry of a ranked measure.
type Ranking struct {
	Label string
	Score float64
}

// Number is the set of score types Rank accepts.
type Number interface {
	~int | ~float64
}

// Rank orders a label-keyed measure by score descending, ties broken by label ascending.
func Rank[T Number](m map[string]T) []Ranking {
	out := make([]Ranking, 0, len(m))
	for label, x := range m {
		out = append(out, Ranking{Label: label, Score: float64(x)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Label < out[j].Label
	})

	return out
}
