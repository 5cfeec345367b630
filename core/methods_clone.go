// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so new edges on the clone never collide with copied IDs.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: flags, vertices, edges and adjacency.
// Vertex Metadata maps are shared, not copied.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.adjacencyList)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		ensureAdjID(clone, id)
	}
	for eid, e := range g.edges {
		ce := &Edge{ID: eid, From: e.From, To: e.To}
		clone.edges[eid] = ce
		ensureAdjacency(clone, ce.From, ce.To)
		clone.adjacencyList[ce.From][ce.To][eid] = struct{}{}
		if ce.From != ce.To {
			ensureAdjacency(clone, ce.To, ce.From)
			clone.adjacencyList[ce.To][ce.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear removes all vertices and edges and resets the edge ID counter.
// Flags are preserved.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
