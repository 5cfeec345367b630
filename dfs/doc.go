// SPDX-License-Identifier: MIT

// Package dfs enumerates simple paths (no repeated node) over a core.Snapshot with an
// explicit-stack depth-first search.
//
// Key features:
//   - WalkSimplePaths(s, from, to, visit, opts...): every simple path from → to.
//   - WalkFrom(s, from, visit, opts...): every simple path that starts at from, reported
//     once when its last node is appended. A single WalkFrom covers all targets at once.
//   - SimplePaths / CountSimplePaths: collecting and counting conveniences.
//   - Multigraph semantics: paths are distinguished by the edge instances they use, so two
//     parallel edges A=B yield two A→B paths with the same node sequence.
//   - Self-loops never appear in a path (a loop returns to a node already on the path).
//
// Memory is bounded by the current path length: the stack holds one frame per path node
// and the on-path set is scoped to the path, not to the whole search.
//
// Complexity:
//
//	The number of simple paths grows exponentially with density and cycle count. Use these
//	walks on small graphs (tens of nodes) and guard them with WithContext and
//	WithStepBudget; both are checked at every expansion step.
//
// Options:
//
//   - WithContext(ctx)            cooperative cancellation.
//   - WithMinIntermediate(n)      skip paths with fewer than n interior nodes.
//   - WithMaxIntermediate(n)      never build paths with more than n interior nodes.
//   - WithStepBudget(n)           abort with ErrStepBudgetExceeded after n expansion steps.
//
// Errors:
//
//   - ErrSnapshotNil, ErrVertexNotFound, ErrOptionViolation.
//   - ErrStepBudgetExceeded when the budget runs out (results are never silently truncated).
//   - ctx.Err() when cancelled.
//   - errors returned by the visit callback, wrapped; ErrStopWalk ends the walk cleanly.
package dfs
