// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

const methodRoutes = "Routes"

// Routes returns a Constructor that adds every region of every route as a vertex and joins
// consecutive regions with one edge per step. Routes are applied in argument order, regions
// in route order, so edge IDs are deterministic.
//
// A single-region route adds only its vertex. Two routes sharing a step add two parallel
// edges; on a graph without core.WithMultiEdges that fails with core.ErrMultiEdgeNotAllowed.
// A route repeating a region back to back needs core.WithLoops.
// IDFn is not consulted: region labels are the vertex IDs.
//
// Complexity: O(Σ len(route)).
func Routes(routes ...[]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for ri, regions := range routes {
			for _, r := range regions {
				if err := g.AddVertex(r); err != nil {
					return fmt.Errorf("%s: route %d: AddVertex(%q): %w", methodRoutes, ri, r, err)
				}
			}
			for i := 1; i < len(regions); i++ {
				from, to := regions[i-1], regions[i]
				if _, err := g.AddEdge(from, to); err != nil {
					return fmt.Errorf("%s: route %d: AddEdge(%s–%s): %w", methodRoutes, ri, from, to, err)
				}
			}
		}

		return nil
	}
}
