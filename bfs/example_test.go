// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// ExampleBFS finds hop distances along two overlapping interstate corridors.
func ExampleBFS() {
	g := core.NewGraph(core.WithMultiEdges())
	for _, leg := range [][2]string{
		{"CA", "OR"}, {"OR", "WA"}, // I-5
		{"CA", "AZ"}, {"AZ", "NM"}, {"NM", "TX"}, // I-10
	} {
		_, _ = g.AddEdge(leg[0], leg[1])
	}
	s := g.Snapshot()
	ca, _ := s.Index("CA")

	res, err := bfs.BFS(s, ca)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	hops := make([]string, 0, len(res.Order))
	for _, v := range res.Order {
		hops = append(hops, fmt.Sprintf("%s:%d", s.Label(v), res.Depth[v]))
	}
	fmt.Println(strings.Join(hops, " "))
	fmt.Println("sum:", res.DistanceSum())
	// Output:
	// CA:0 OR:1 AZ:1 WA:2 NM:2 TX:3
	// sum: 9
}
