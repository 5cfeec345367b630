// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routegraph/centrality"
	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/internal/report"
)

func scoresOf(t *testing.T, pairs ...[2]string) *centrality.Scores {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	sc, err := centrality.Compute(context.Background(), g.Snapshot())
	require.NoError(t, err)

	return sc
}

func westCoast(t *testing.T) *report.Report {
	sc := scoresOf(t, [2]string{"WA", "OR"}, [2]string{"OR", "CA"}, [2]string{"CA", "AZ"})

	return report.New(sc, report.Meta{RunID: "run-1", Input: "routes.csv", Routes: 2, PairMode: "ordered"}, 2)
}

func TestNew_RankingAndSummary(t *testing.T) {
	r := westCoast(t)

	assert.Equal(t, 4, r.Vertices)
	assert.Equal(t, 3, r.Edges)
	require.Len(t, r.Measures, 3)

	deg := r.Measures[0]
	assert.Equal(t, report.MeasureDegree, deg.Name)
	assert.Equal(t, []report.Entry{
		{Rank: 1, Region: "CA", Score: 2},
		{Rank: 2, Region: "OR", Score: 2},
	}, deg.Ranking)
	assert.Equal(t, 4, deg.Summary.Count)
	assert.InDelta(t, 1.5, deg.Summary.Mean, 1e-12)
	assert.InDelta(t, 0.5, deg.Summary.StdDev, 1e-12)
	assert.Equal(t, 1.0, deg.Summary.Min)
	assert.Equal(t, 2.0, deg.Summary.Max)

	bc := r.Measures[2]
	assert.Equal(t, report.MeasureBetweenness, bc.Name)
	assert.InDelta(t, 4.0/3, bc.Ranking[0].Score, 1e-12)
	assert.InDelta(t, 2.0/3, bc.Summary.Mean, 1e-12)
}

func TestNew_MedianAndTopZero(t *testing.T) {
	sc := scoresOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	r := report.New(sc, report.Meta{}, 0)

	deg := r.Measures[0]
	assert.Len(t, deg.Ranking, 3)
	assert.Equal(t, 1.0, deg.Summary.Median)
	assert.Equal(t, "B", deg.Ranking[0].Region)
}

func TestNew_EmptyGraph(t *testing.T) {
	sc, err := centrality.Compute(context.Background(), core.NewGraph().Snapshot())
	require.NoError(t, err)

	r := report.New(sc, report.Meta{RunID: "empty"}, 5)
	for _, m := range r.Measures {
		assert.Empty(t, m.Ranking)
		assert.Equal(t, report.Summary{}, m.Summary)
	}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, report.FormatJSON))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, westCoast(t).Write(&buf, report.FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, float64(4), got["vertices"])
	measures := got["measures"].([]any)
	first := measures[0].(map[string]any)
	assert.Equal(t, "degree", first["name"])
	assert.Contains(t, first, "summary")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, westCoast(t).Write(&buf, report.FormatYAML))

	var got report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, "ordered", got.PairMode)
	require.Len(t, got.Measures, 3)
	assert.Equal(t, "closeness", got.Measures[1].Name)
	assert.Equal(t, "CA", got.Measures[1].Ranking[0].Region)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, westCoast(t).Write(&buf, report.FormatText))

	out := buf.String()
	assert.Contains(t, out, "run run-1\n")
	assert.Contains(t, out, "input: routes.csv (2 routes)\n")
	assert.Contains(t, out, "graph: 4 vertices, 3 edges\n")
	assert.Contains(t, out, "degree: mean 1.5000, std 0.5000, min 1.0000, median ")
	assert.Contains(t, out, "RANK  REGION  SCORE\n")

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "1 ") {
			rows = append(rows, strings.Join(strings.Fields(line), " "))
		}
	}
	assert.Equal(t, []string{"1 CA 2.0000", "1 CA 0.2500", "1 CA 1.3333"}, rows)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := westCoast(t).Write(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
