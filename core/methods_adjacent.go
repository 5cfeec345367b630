// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, NeighborIDs) and the private helpers that keep
//       adjacencyList consistent.
// Invariants:
//   - For every non-loop edge e: adjacencyList[e.From][e.To][e.ID] and
//     adjacencyList[e.To][e.From][e.ID] both exist.
//   - For a loop: only adjacencyList[v][v][e.ID].
//   - Empty inner buckets are removed eagerly.

package core

import "sort"

// Neighbors returns every edge incident to id in creation order.
// Parallel edges appear once each; a self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			if e, ok := g.edges[eid]; ok {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted ascending.
// A self-loop makes id its own neighbor.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjID bootstraps the outer adjacency bucket for id. Caller holds muEdgeAdj.
func ensureAdjID(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency bootstraps adjacencyList[from][to]. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	ensureAdjID(g, from)
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from both directions and drops empty buckets.
// Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(u, v string) {
		bucket, ok := g.adjacencyList[u][v]
		if !ok {
			return
		}
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(g.adjacencyList[u], v)
		}
	}
	unlink(e.From, e.To)
	if e.From != e.To {
		unlink(e.To, e.From)
	}
}
