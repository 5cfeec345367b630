// SPDX-License-Identifier: MIT

// Package centrality computes degree, closeness and betweenness centrality over a frozen
// core.Snapshot of an undirected route graph.
//
// Measures
//
//	Degree(s)       map[label]int          incident edge-ends, counting parallel edges; a
//	                                       self-loop contributes two ends.
//	Closeness(s)    map[label]float64      1 / Σ hop distances to every reachable node;
//	                                       0 when nothing is reachable.
//	Betweenness(s)  map[core.NodeID]float64
//	                                       for every ordered pair (s,t), s≠t, every interior
//	                                       node of every simple s→t path gains 1/|P(s,t)|;
//	                                       totals are divided by (N-1)(N-2)/2. N < 3 → all 0.
//
// Betweenness is keyed by NodeID; resolve labels with Snapshot.Label or
// Scores.BetweennessByLabel.
//
// Betweenness follows all simple paths, not only shortest ones, so its cost is exponential
// in graph density. It is intended for small graphs (tens of nodes). For anything larger use
// BetweennessContext with a deadline and WithStepBudget: exhausting either is reported as an
// error, never as a partial result.
//
// Concurrency
//
//	Every function is a pure read of the snapshot. Compute runs the three measures in
//	parallel; BetweennessContext shards source nodes over WithWorkers goroutines, each
//	producing its own partial vector, and sums the partials in source order so results are
//	bit-identical for any worker count.
package centrality
