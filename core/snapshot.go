// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable, index-addressed view of a Graph used by every algorithm package.
// Determinism:
//   - NodeIDs follow ascending label order.
//   - Neighbor lists follow edge creation order.
// Concurrency:
//   - A Snapshot is never mutated after construction; concurrent readers need no locks.

package core

// NodeID is the stable index of a node inside a Snapshot.
type NodeID int

// Snapshot is a frozen arena of nodes with an explicit index→label table.
//
// neighbors[v] holds one entry per non-loop edge instance incident to v, so parallel
// edges appear as repeated entries. Self-loops are counted in loops[v] only.
type Snapshot struct {
	labels    []string
	index     map[string]NodeID
	neighbors [][]NodeID
	loops     []int
	edgeCount int
}

// Snapshot freezes the current topology of g.
//
// Implementation:
//   - Stage 1: Under read locks, sort labels and assign NodeIDs.
//   - Stage 2: Walk edges in creation order and append both endpoints' neighbor entries.
//
// Complexity: O(V log V + E log E) time, O(V + E) space.
func (g *Graph) Snapshot() *Snapshot {
	labels := g.Vertices()
	edges := g.Edges()

	s := &Snapshot{
		labels:    labels,
		index:     make(map[string]NodeID, len(labels)),
		neighbors: make([][]NodeID, len(labels)),
		loops:     make([]int, len(labels)),
	}
	for i, label := range labels {
		s.index[label] = NodeID(i)
	}

	for _, e := range edges {
		u, okU := s.index[e.From]
		v, okV := s.index[e.To]
		// An edge added between the two reads above references a vertex this snapshot
		// does not know about; leave it for the next snapshot.
		if !okU || !okV {
			continue
		}
		s.edgeCount++
		if u == v {
			s.loops[u]++
			continue
		}
		s.neighbors[u] = append(s.neighbors[u], v)
		s.neighbors[v] = append(s.neighbors[v], u)
	}

	return s
}

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.labels) }

// EdgeCount returns the number of edges, including parallel edges and self-loops.
func (s *Snapshot) EdgeCount() int { return s.edgeCount }

// Valid reports whether id addresses a node of s.
func (s *Snapshot) Valid(id NodeID) bool { return id >= 0 && int(id) < len(s.labels) }

// Label returns the label of id, or "" if id is out of range.
func (s *Snapshot) Label(id NodeID) string {
	if !s.Valid(id) {
		return ""
	}

	return s.labels[id]
}

// Labels returns a copy of the index→label table.
func (s *Snapshot) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)

	return out
}

// Index resolves a label to its NodeID.
func (s *Snapshot) Index(label string) (NodeID, bool) {
	id, ok := s.index[label]

	return id, ok
}

// Neighbors returns the neighbor entries of id, one per incident non-loop edge.
// The slice is owned by the snapshot and must not be modified.
func (s *Snapshot) Neighbors(id NodeID) []NodeID {
	if !s.Valid(id) {
		return nil
	}

	return s.neighbors[id]
}

// Degree returns the number of edge-ends incident to id (self-loops count twice).
func (s *Snapshot) Degree(id NodeID) int {
	if !s.Valid(id) {
		return 0
	}

	return len(s.neighbors[id]) + 2*s.loops[id]
}
