// SPDX-License-Identifier: MIT

package centrality

import "github.com/katalvlaran/routegraph/core"

// Degree returns the number of incident edge-ends per node label.
// Parallel edges count separately; a self-loop contributes two ends.
// A nil or empty snapshot yields an empty map.
// Complexity: O(V).
func Degree(s *core.Snapshot) map[string]int {
	if s == nil {
		return map[string]int{}
	}
	out := make(map[string]int, s.Len())
	for v := 0; v < s.Len(); v++ {
		id := core.NodeID(v)
		out[s.Label(id)] = s.Degree(id)
	}

	return out
}
