// SPDX-License-Identifier: MIT

// Package report renders ranked centrality tables with summary statistics as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routegraph/centrality"
)

// ErrUnknownFormat is returned by Write for a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Measure names, in report order.
const (
	MeasureDegree      = "degree"
	MeasureCloseness   = "closeness"
	MeasureBetweenness = "betweenness"
)

// Report is the rendered result of one centrality run.
type Report struct {
	RunID    string    `json:"run_id" yaml:"run_id"`
	Input    string    `json:"input,omitempty" yaml:"input,omitempty"`
	Routes   int       `json:"routes" yaml:"routes"`
	Vertices int       `json:"vertices" yaml:"vertices"`
	Edges    int       `json:"edges" yaml:"edges"`
	PairMode string    `json:"pair_mode" yaml:"pair_mode"`
	Measures []Measure `json:"measures" yaml:"measures"`
}

// Measure is one ranked centrality table.
type Measure struct {
	Name    string  `json:"name" yaml:"name"`
	Summary Summary `json:"summary" yaml:"summary"`
	Ranking []Entry `json:"ranking" yaml:"ranking"`
}

// Summary describes the distribution of a measure over all nodes.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Min    float64 `json:"min" yaml:"min"`
	Median float64 `json:"median" yaml:"median"`
	Max    float64 `json:"max" yaml:"max"`
}

// Entry is one ranked node.
type Entry struct {
	Rank   int     `json:"rank" yaml:"rank"`
	Region string  `json:"region" yaml:"region"`
	Score  float64 `json:"score" yaml:"score"`
}

// Meta carries the run details that are not part of the scores.
type Meta struct {
	RunID    string
	Input    string
	Routes   int
	PairMode string
}

// New builds a Report from sc. top limits each ranking; 0 keeps every node.
func New(sc *centrality.Scores, meta Meta, top int) *Report {
	r := &Report{
		RunID:    meta.RunID,
		Input:    meta.Input,
		Routes:   meta.Routes,
		PairMode: meta.PairMode,
	}
	if sc.Snapshot != nil {
		r.Vertices = sc.Snapshot.Len()
		r.Edges = sc.Snapshot.EdgeCount()
	}
	r.Measures = []Measure{
		measure(MeasureDegree, centrality.Rank(sc.Degree), top),
		measure(MeasureCloseness, centrality.Rank(sc.Closeness), top),
		measure(MeasureBetweenness, centrality.Rank(sc.BetweennessByLabel()), top),
	}

	return r
}

func measure(name string, ranked []centrality.Ranking, top int) Measure {
	m := Measure{Name: name, Summary: summarize(ranked)}
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	m.Ranking = make([]Entry, len(ranked))
	for i, e := range ranked {
		m.Ranking[i] = Entry{Rank: i + 1, Region: e.Label, Score: e.Score}
	}

	return m
}

// summarize returns the zero Summary for an empty ranking.
func summarize(ranked []centrality.Ranking) Summary {
	if len(ranked) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(ranked))
	for i, e := range ranked {
		xs[i] = e.Score
	}
	sort.Float64s(xs)

	mean, std := stat.PopMeanStdDev(xs, nil)

	return Summary{
		Count:  len(xs),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(xs),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Max:    floats.Max(xs),
	}
}

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return r.writeText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", r.RunID)
	if r.Input != "" {
		fmt.Fprintf(tw, "input: %s (%d routes)\n", r.Input, r.Routes)
	}
	fmt.Fprintf(tw, "graph: %d vertices, %d edges\n", r.Vertices, r.Edges)
	fmt.Fprintf(tw, "pairs: %s\n", r.PairMode)
	for _, m := range r.Measures {
		s := m.Summary
		fmt.Fprintf(tw, "\n%s: mean %.4f, std %.4f, min %.4f, median %.4f, max %.4f\n",
			m.Name, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
		fmt.Fprintln(tw, "RANK\tREGION\tSCORE")
		for _, e := range m.Ranking {
			fmt.Fprintf(tw, "%d\t%s\t%.4f\n", e.Rank, e.Region, e.Score)
		}
	}

	return tw.Flush()
}
