// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, undirected route graph and its frozen,
// index-addressed Snapshot form consumed by the traversal and centrality packages.
//
// The Graph G = (V,E) is built incrementally by upstream collaborators:
//
//   - Vertices are region labels (non-empty strings, unique per label).
//   - Edges are unordered, unweighted pairs with stable textual IDs ("e1", "e2", …).
//   - Parallel edges (multi-graphs) are opt-in via WithMultiEdges and are never collapsed:
//     two routes that both connect the same pair of regions produce two edges.
//   - Self-loops are opt-in via WithLoops.
//   - Nested-map adjacency: adjacencyList[from][to][edgeID] = struct{}{}, mirrored for the
//     opposite endpoint, so membership checks and incident-edge scans are O(1)/O(deg).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj); lock
//     order is always muVert -> muEdgeAdj.
//
// Snapshot
//
//	Graph.Snapshot() freezes the current topology into an arena: labels are sorted
//	ascending and assigned stable NodeIDs 0..N-1, every node gets a neighbor list with one
//	entry per incident edge instance (ordered by edge ID), and an explicit index→label
//	table is kept alongside. A Snapshot is immutable and safe for any number of concurrent
//	readers; algorithms in bfs, dfs and centrality operate on it exclusively.
//
// Degree policy
//
//	Degree counts edge-ends: every parallel edge counts separately and a self-loop
//	contributes two ends. Self-loops are kept out of Snapshot neighbor lists, so they
//	never take part in traversals or simple paths.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)
//	RemoveEdge(edgeID string) error          // O(1)
//	HasEdge(from, to string) bool            // O(1)
//
//	// Queries
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), parallel edges repeated
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Degree(id string) (int, error)           // O(d)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//
//	// Freezing
//	Snapshot() *Snapshot                     // O(V·log V + E·log E)
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
