// SPDX-License-Identifier: MIT

// Package metrics records routegraph run statistics in a private Prometheus registry and
// writes them in the text exposition format for node_exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns one registry and the collectors of a single CLI process.
type Recorder struct {
	reg *prometheus.Registry

	runs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	vertices     prometheus.Gauge
	edges        prometheus.Gauge
	routes       prometheus.Gauge
	skippedTotal prometheus.Counter
}

// NewRecorder creates a Recorder with every collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routegraph_runs_total",
				Help: "Number of centrality runs by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routegraph_stage_duration_seconds",
				Help:    "Time spent per pipeline stage.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routegraph_graph_vertices",
			Help: "Vertices in the last analysed graph.",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routegraph_graph_edges",
			Help: "Edges in the last analysed graph.",
		}),
		routes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routegraph_routes_loaded",
			Help: "Routes kept by the last load.",
		}),
		skippedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routegraph_rows_skipped_total",
			Help: "Malformed CSV rows skipped.",
		}),
	}
	r.reg.MustRegister(r.runs, r.duration, r.vertices, r.edges, r.routes, r.skippedTotal)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveStage records how long stage took since start.
func (r *Recorder) ObserveStage(stage string, start time.Time) {
	r.duration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// SetGraph records the size of the analysed graph.
func (r *Recorder) SetGraph(routes, vertices, edges int) {
	r.routes.Set(float64(routes))
	r.vertices.Set(float64(vertices))
	r.edges.Set(float64(edges))
}

// RowSkipped counts one malformed input row.
func (r *Recorder) RowSkipped() { r.skippedTotal.Inc() }

// RunFinished counts a run as "ok" or "error".
func (r *Recorder) RunFinished(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.runs.WithLabelValues(outcome).Inc()
}

// WriteTextfile atomically writes every metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
