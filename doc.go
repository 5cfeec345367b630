// SPDX-License-Identifier: MIT

// Package routegraph ranks the regions of a route network by centrality.
//
// Regions that share a route segment are joined by an edge; every route adds its own edges, so
// two highways crossing the same border give a multigraph. Over that graph routegraph computes:
//
//	• Degree      incident edge-ends, parallel edges counted separately
//	• Closeness   reciprocal of the summed hop distances to every reachable region
//	• Betweenness share of all simple paths between other regions that pass through a region
//
// Layout:
//
//	core/          thread-safe mutable Graph and its frozen, index-based Snapshot
//	bfs/           breadth-first search over snapshots (hop distances, parents)
//	dfs/           simple-path enumeration with cancellation and step budgets
//	centrality/    Degree, Closeness, Betweenness, Compute, Rank
//	builder/       composable graph constructors, including Routes for region sequences
//	internal/      CSV ingestion, configuration, reporting and metrics for the CLI
//	cmd/routegraph the command-line tool
//	examples/      runnable walkthroughs
//
// Quick example:
//
//	g, _ := builder.BuildGraph(
//		[]core.GraphOption{core.WithMultiEdges()},
//		nil,
//		builder.Routes([]string{"CA", "OR", "WA"}, []string{"CA", "AZ", "NM"}),
//	)
//	sc, _ := centrality.Compute(ctx, g.Snapshot())
//	for _, r := range centrality.Rank(sc.BetweennessByLabel()) {
//		fmt.Println(r.Label, r.Score)
//	}
//
// Betweenness enumerates all simple paths, which is exponential in graph density. It suits
// graphs of tens of regions; bound larger runs with a context deadline and
// centrality.WithStepBudget.
package routegraph
