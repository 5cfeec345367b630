// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved configuration.
// Constructors validate their parameters first and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies cons in order.
// The first constructor error is wrapped as "BuildGraph: %w" and returned; the partially
// built graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel, or core errors such as core.ErrMultiEdgeNotAllowed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
