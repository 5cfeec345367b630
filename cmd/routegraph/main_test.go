// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/dfs"
	"github.com/katalvlaran/routegraph/internal/config"
	"github.com/katalvlaran/routegraph/internal/report"
)

const highwaysCSV = `street_name,states,formed,removed,length_mi,southern_or_western_terminus,northern_or_eastern_terminus
I-5,"[""CA"", ""OR"", ""WA""]",1957,,1381.29,San Diego,Blaine
I-10,"[""CA"", ""AZ"", ""NM"", ""TX""]",1957,,2460.34,Santa Monica,Jacksonville
US 99,"[""CA"", ""OR""]",1926,1972,1543,Calexico,Blaine
broken,"[]",19x0,,1,A,B
`

// writeInput stores data in a fresh temp dir and isolates the run from user config files.
func writeInput(t *testing.T, data string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "routes.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestGraphCommand(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	out, err := run(t, "graph", "--input", in, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "routes: 2\nvertices: 6\nedges: 5\n", out)

	out, err = run(t, "graph", "-i", in, "--include-removed", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "routes: 3\nvertices: 6\nedges: 6\n", out)
}

func TestCentralityCommand_JSON(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	out, err := run(t, "centrality", "-i", in, "-f", "json", "--top", "2", "--workers", "2", "--log-level", "error")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 2, rep.Routes)
	assert.Equal(t, 6, rep.Vertices)
	assert.Equal(t, 5, rep.Edges)
	require.Len(t, rep.Measures, 3)

	bc := rep.Measures[2]
	require.Len(t, bc.Ranking, 2)
	assert.Equal(t, "AZ", bc.Ranking[0].Region)
	assert.Equal(t, "CA", bc.Ranking[1].Region)
	assert.InDelta(t, 1.2, bc.Ranking[0].Score, 1e-12)
	assert.Equal(t, 6, bc.Summary.Count)
}

func TestCentralityCommand_UnorderedPairs(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	out, err := run(t, "centrality", "-i", in, "-f", "json", "--pair-mode", "unordered", "--log-level", "error")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "unordered", rep.PairMode)
	assert.InDelta(t, 0.6, rep.Measures[2].Ranking[0].Score, 1e-12)
}

func TestCentralityCommand_Text(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	out, err := run(t, "centrality", "-i", in, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "graph: 6 vertices, 5 edges\n")
	assert.Contains(t, out, "\nbetweenness: ")
}

func TestCentralityCommand_StepBudget(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	_, err := run(t, "centrality", "-i", in, "--step-budget", "1", "--log-level", "error")
	assert.ErrorIs(t, err, dfs.ErrStepBudgetExceeded)
}

func TestCentralityCommand_MetricsFile(t *testing.T) {
	in := writeInput(t, highwaysCSV)
	prom := filepath.Join(t.TempDir(), "routegraph.prom")

	_, err := run(t, "centrality", "-i", in, "--metrics-file", prom, "--log-level", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "routegraph_graph_vertices 6")
	assert.Contains(t, string(data), "routegraph_rows_skipped_total 1")
	assert.Contains(t, string(data), `routegraph_runs_total{outcome="ok"} 1`)
}

func TestRoutesCommand(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	out, err := run(t, "routes", "-i", in, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Street Name: I-5\n")
	assert.Contains(t, out, "Street Name: I-10\n")
	assert.NotContains(t, out, "US 99")

	out, err = run(t, "routes", "-i", in, "-f", "yaml", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "street_name: I-10")
}

func TestConfigFileAndEnv(t *testing.T) {
	in := writeInput(t, highwaysCSV)
	cfgPath := filepath.Join(t.TempDir(), "rg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+in+"\nformat: yaml\nlog_level: error\n"), 0o600))

	out, err := run(t, "centrality", "--config", cfgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "run_id: "), out)

	t.Setenv("ROUTEGRAPH_FORMAT", "json")
	out, err = run(t, "centrality", "--config", cfgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)

	_, err = run(t, "graph", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidationErrors(t *testing.T) {
	writeInput(t, highwaysCSV)

	_, err := run(t, "graph")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "input is required")

	_, err = run(t, "centrality", "-i", "x.csv", "-f", "xml")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "format must be one of")

	_, err = run(t, "graph", "-i", filepath.Join(t.TempDir(), "nope.csv"), "--log-level", "error")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// syncBuffer guards a buffer written by the watch loop and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCentralityCommand_Watch(t *testing.T) {
	in := writeInput(t, highwaysCSV)

	var out syncBuffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"centrality", "-i", in, "--watch", "--log-level", "error"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "graph: 6 vertices, 5 edges")
	}, 5*time.Second, 20*time.Millisecond)

	extra := highwaysCSV + "I-40,\"[\"\"TX\"\", \"\"OK\"\"]\",1957,,2555,Barstow,Wilmington\n"
	require.NoError(t, os.WriteFile(in, []byte(extra), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "graph: 7 vertices, 6 edges")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}
