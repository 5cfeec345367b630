// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%05d", i), fmt.Sprintf("v%05d", i+1))
	}
	s := g.Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, 0)
	}
}
