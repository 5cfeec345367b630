// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routegraph/internal/report"
	"github.com/katalvlaran/routegraph/internal/routes"
)

func (a *app) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Describe every route kept from --input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := a.loadRoutes(a.log, nil)
			if err != nil {
				return err
			}

			return writeRoutes(cmd.OutOrStdout(), rs, a.cfg.Format)
		},
	}
}

func writeRoutes(w io.Writer, rs []routes.Route, format string) error {
	switch format {
	case report.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	case report.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, r := range rs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, r.Describe())
		}
		return nil
	}
}
