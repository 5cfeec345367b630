// SPDX-License-Identifier: MIT

// Package routes loads route rows from CSV and turns their region sequences into a route graph.
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/routegraph/builder"
	"github.com/katalvlaran/routegraph/core"
)

var (
	// ErrMissingColumn is returned when the CSV header lacks a required column.
	ErrMissingColumn = errors.New("routes: missing column")

	// ErrBadRegions indicates a states field that is not a JSON array of strings.
	ErrBadRegions = errors.New("routes: malformed region list")
)

// Route is one CSV row.
type Route struct {
	StreetName string   `json:"street_name" yaml:"street_name"`
	States     string   `json:"states" yaml:"states"`
	Formed     *float64 `json:"formed,omitempty" yaml:"formed,omitempty"`
	Removed    *float64 `json:"removed,omitempty" yaml:"removed,omitempty"`
	LengthMi   float64  `json:"length_mi" yaml:"length_mi"`
	SouthWest  string   `json:"southern_or_western_terminus" yaml:"southern_or_western_terminus"`
	NorthEast  string   `json:"northern_or_eastern_terminus" yaml:"northern_or_eastern_terminus"`
}

// Regions decodes States, a JSON array such as ["CA", "OR", "WA"].
func (r Route) Regions() ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(r.States), &out); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadRegions, r.StreetName, err)
	}

	return out, nil
}

// Active reports whether the route has no removal year.
func (r Route) Active() bool { return r.Removed == nil }

// Describe renders the route as a multi-line summary.
func (r Route) Describe() string {
	var b strings.Builder
	b.WriteString("Route Information:\n")
	fmt.Fprintf(&b, "Street Name: %s\n", r.StreetName)
	fmt.Fprintf(&b, "States: %s\n", r.States)
	fmt.Fprintf(&b, "Year Formed: %s\n", year(r.Formed))
	fmt.Fprintf(&b, "Year Removed: %s\n", year(r.Removed))
	fmt.Fprintf(&b, "Length (miles): %.2f\n", r.LengthMi)
	fmt.Fprintf(&b, "Southern/Western Terminus: %s\n", r.SouthWest)
	fmt.Fprintf(&b, "Northern/Eastern Terminus: %s", r.NorthEast)

	return b.String()
}

func year(v *float64) string {
	if v == nil {
		return "N/A"
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// RegionLists decodes the region sequence of every route, failing on the first malformed one.
func RegionLists(rs []Route) ([][]string, error) {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		regions, err := r.Regions()
		if err != nil {
			return nil, err
		}
		out = append(out, regions)
	}

	return out, nil
}

// BuildGraph links consecutive regions of every route into an undirected multigraph with
// self-loops permitted, so repeated segments and back-to-back regions are all kept.
func BuildGraph(rs []Route) (*core.Graph, error) {
	lists, err := RegionLists(rs)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithMultiEdges(), core.WithLoops()},
		nil,
		builder.Routes(lists...),
	)
}
