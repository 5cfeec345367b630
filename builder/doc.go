// SPDX-License-Identifier: MIT

// Package builder assembles core.Graph fixtures and route graphs from composable Constructors.
//
// BuildGraph creates a graph with the given core options, resolves BuilderOptions into an
// immutable configuration and applies each Constructor in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithMultiEdges()},
//		nil,
//		builder.Routes([]string{"CA", "OR", "WA"}, []string{"CA", "AZ", "NM", "TX"}),
//	)
//
// Constructors
//
//	Routes(routes...)      link consecutive regions of every route; parallel routes add
//	                       parallel edges on a multigraph.
//	Path(n), Cycle(n)      P_n (n ≥ 2), C_n (n ≥ 3).
//	Star(n)                hub "Center" plus n-1 leaves (n ≥ 2).
//	Complete(n)            K_n (n ≥ 1).
//	RandomSparse(n, p)     each pair joined with probability p; requires WithSeed or WithRand.
//
// Vertex IDs come from the configured IDFn (DefaultIDFn unless WithIDScheme is given).
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the constructor name; core errors pass through with %w.
// Option constructors panic on nil arguments; constructors never panic.
package builder
