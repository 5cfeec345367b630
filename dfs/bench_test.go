// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dfs"
)

// BenchmarkWalkFrom_K8 enumerates every simple path leaving one node of K8 (13699 paths).
func BenchmarkWalkFrom_K8(b *testing.B) {
	s := complete(b, 8)
	visit := func([]core.NodeID) error { return nil }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.WalkFrom(s, 0, visit)
	}
}
