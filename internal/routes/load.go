// SPDX-License-Identifier: MIT

package routes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV column names.
const (
	ColStreetName = "street_name"
	ColStates     = "states"
	ColFormed     = "formed"
	ColRemoved    = "removed"
	ColLengthMi   = "length_mi"
	ColSouthWest  = "southern_or_western_terminus"
	ColNorthEast  = "northern_or_eastern_terminus"
)

var columns = []string{ColStreetName, ColStates, ColFormed, ColRemoved, ColLengthMi, ColSouthWest, ColNorthEast}

// Option configures Load.
type Option func(*Options)

// Options holds loader parameters.
type Options struct {
	// IncludeRemoved keeps rows that carry a removal year.
	IncludeRemoved bool

	// OnSkip receives the 1-based line and cause of every malformed row. Defaults to a no-op.
	OnSkip func(line int, err error)
}

// DefaultOptions drops removed routes and ignores malformed rows silently.
func DefaultOptions() Options {
	return Options{
		IncludeRemoved: false,
		OnSkip:         func(int, error) {},
	}
}

// WithIncludeRemoved keeps rows with a non-empty removed column.
func WithIncludeRemoved(keep bool) Option {
	return func(o *Options) {
		o.IncludeRemoved = keep
	}
}

// WithOnSkip installs a callback for malformed rows. Panics on nil.
func WithOnSkip(fn func(line int, err error)) Option {
	if fn == nil {
		panic("routes: WithOnSkip(nil)")
	}
	return func(o *Options) {
		o.OnSkip = fn
	}
}

// Load reads routes from CSV with a header row. Columns are matched by name and may appear
// in any order; extra columns are ignored. Malformed rows are reported to OnSkip and left
// out; rows with a removal year are dropped unless WithIncludeRemoved(true).
//
// Errors: ErrMissingColumn for an incomplete header, or the underlying read error.
func Load(r io.Reader, opts ...Option) ([]Route, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("routes: header: %w", err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var out []Route
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			o.OnSkip(pe.Line, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("routes: read: %w", err)
		}

		route, err := parseRecord(rec, idx)
		if err != nil {
			line, _ := cr.FieldPos(0)
			o.OnSkip(line, err)
			continue
		}
		if !o.IncludeRemoved && !route.Active() {
			continue
		}
		out = append(out, route)
	}

	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}

	return idx, nil
}

func parseRecord(rec []string, idx map[string]int) (Route, error) {
	field := func(name string) (string, error) {
		i := idx[name]
		if i >= len(rec) {
			return "", fmt.Errorf("routes: row has %d fields, %q is column %d", len(rec), name, i+1)
		}
		return strings.TrimSpace(rec[i]), nil
	}

	var (
		r   Route
		err error
		raw string
	)
	if r.StreetName, err = field(ColStreetName); err != nil {
		return Route{}, err
	}
	if r.States, err = field(ColStates); err != nil {
		return Route{}, err
	}
	if r.SouthWest, err = field(ColSouthWest); err != nil {
		return Route{}, err
	}
	if r.NorthEast, err = field(ColNorthEast); err != nil {
		return Route{}, err
	}
	if raw, err = field(ColLengthMi); err != nil {
		return Route{}, err
	}
	if r.LengthMi, err = strconv.ParseFloat(raw, 64); err != nil {
		return Route{}, fmt.Errorf("routes: %s: %w", ColLengthMi, err)
	}
	if r.Formed, err = optionalFloat(field, ColFormed); err != nil {
		return Route{}, err
	}
	if r.Removed, err = optionalFloat(field, ColRemoved); err != nil {
		return Route{}, err
	}

	return r, nil
}

func optionalFloat(field func(string) (string, error), name string) (*float64, error) {
	raw, err := field(name)
	if err != nil || raw == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("routes: %s: %w", name, err)
	}

	return &v, nil
}
