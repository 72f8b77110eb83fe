// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/dispatch"
	"github.com/katalvlaran/lvtrace/step"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			family, _ := cmd.Flags().GetString("family")
			asJSON, _ := cmd.Flags().GetBool("json")

			var algos []dispatch.Algorithm
			for _, a := range dispatch.Catalog() {
				if family == "" || a.Family == step.Family(family) {
					algos = append(algos, a)
				}
			}
			if len(algos) == 0 {
				return fmt.Errorf("no algorithms in family %q", family)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(algos)
			}

			out := termenv.NewOutput(cmd.OutOrStdout())
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			var last step.Family
			for _, a := range algos {
				if a.Family != last {
					fmt.Fprintln(tw, out.String(strings.ToUpper(string(a.Family))).Bold())
					last = a.Family
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.ID, a.Name, strings.Join(a.Params, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("family", "", "Only list one family: sorting, searching, graph, dp or string")
	cmd.Flags().Bool("json", false, "Print the catalog as JSON")

	return cmd
}
