// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dfs"
)

// ExampleSimplePaths lists every simple route between two regions of a small loop.
func ExampleSimplePaths() {
	g := core.NewGraph()
	_, _ = g.AddEdge("OR", "CA")
	_, _ = g.AddEdge("CA", "NV")
	_, _ = g.AddEdge("NV", "ID")
	_, _ = g.AddEdge("ID", "OR")
	s := g.Snapshot()

	from, _ := s.Index("CA")
	to, _ := s.Index("ID")
	paths, err := dfs.SimplePaths(s, from, to)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		hops := make([]string, len(p))
		for i, v := range p {
			hops[i] = s.Label(v)
		}
		fmt.Println(strings.Join(hops, " → "))
	}
	// Output:
	// CA → OR → ID
	// CA → NV → ID
}
