// SPDX-License-Identifier: MIT

package centrality_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/routegraph/centrality"
	"github.com/katalvlaran/routegraph/core"
)

func ExampleCompute() {
	g := core.NewGraph(core.WithMultiEdges())
	for _, p := range [][2]string{{"WA", "OR"}, {"OR", "CA"}, {"CA", "AZ"}} {
		_, _ = g.AddEdge(p[0], p[1])
	}

	sc, err := centrality.Compute(context.Background(), g.Snapshot())
	if err != nil {
		fmt.Println(err)
		return
	}

	show := func(name string, r []centrality.Ranking, format string) {
		parts := make([]string, len(r))
		for i, e := range r {
			parts[i] = e.Label + "=" + fmt.Sprintf(format, e.Score)
		}
		fmt.Printf("%s: %s\n", name, strings.Join(parts, " "))
	}
	show("degree", centrality.Rank(sc.Degree), "%.0f")
	show("closeness", centrality.Rank(sc.Closeness), "%.4f")
	show("betweenness", centrality.Rank(sc.BetweennessByLabel()), "%.4f")

	// Output:
	// degree: CA=2 OR=2 AZ=1 WA=1
	// closeness: CA=0.2500 OR=0.2500 AZ=0.1667 WA=0.1667
	// betweenness: CA=1.3333 OR=1.3333 AZ=0.0000 WA=0.0000
}
