// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Snapshot, returning unweighted
// shortest-path distances (hop counts), parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per NodeID (Unreached for nodes outside the start's component)
//   - Parent: predecessor per NodeID in the BFS tree (NoParent for the start and unreached nodes)
//   - Hooks: OnEnqueue (before a node is enqueued) and OnVisit (when visiting; may abort).
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E): every edge costs exactly one hop, so BFS gives
//     the same distances as Dijkstra with unit weights at a fraction of the cost.
//   - Closeness centrality runs one BFS per node and sums Result.DistanceSum().
//
// Determinism
//
//	Snapshot neighbor lists are ordered by edge creation, so the visit sequence is
//	reproducible. Parallel edges repeat a neighbor entry but never enqueue it twice.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(s, start)
//	res, err := bfs.BFS(s, start, bfs.WithContext(ctx), bfs.WithMaxDepth(3))
//
// Errors
//
//   - ErrSnapshotNil          if the snapshot pointer is nil.
//   - ErrStartVertexNotFound  if start is not a valid NodeID.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is cancelled.
//   - Wrapped errors returned by OnVisit.
package bfs
