// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
)

// TestConcurrentAddEdgeAndSnapshot mixes writers and snapshot readers; every snapshot must be
// internally consistent (degree sum equals twice the edge count on a loop-free graph).
func TestConcurrentAddEdgeAndSnapshot(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const writers = 100

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	snaps := make(chan *core.Snapshot, writers)
	wg.Add(2 * writers)
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge("Hub", fmt.Sprintf("R%d", id%10)); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			snaps <- g.Snapshot()
		}()
	}
	wg.Wait()
	close(errs)
	close(snaps)

	for err := range errs {
		require.NoError(t, err)
	}
	for s := range snaps {
		var sum int
		for v := 0; v < s.Len(); v++ {
			sum += s.Degree(core.NodeID(v))
		}
		assert.Equal(t, 2*s.EdgeCount(), sum)
	}

	assert.Equal(t, writers, g.EdgeCount())
	deg, err := g.Degree("Hub")
	require.NoError(t, err)
	assert.Equal(t, writers, deg)
}
