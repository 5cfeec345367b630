// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/internal/routes"
)

func (a *app) graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the size of the region graph built from --input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := a.loadRoutes(a.log, nil)
			if err != nil {
				return err
			}
			g, err := routes.BuildGraph(rs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "routes: %d\n", len(rs))
			fmt.Fprintf(out, "vertices: %d\n", g.VertexCount())
			fmt.Fprintf(out, "edges: %d\n", g.EdgeCount())

			return nil
		},
	}
}
