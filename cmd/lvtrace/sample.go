// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/dispatch"
	"github.com/katalvlaran/lvtrace/samples"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <algorithm>",
		Short: "Print a sample input for an algorithm as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := dispatch.Lookup(args[0]); err != nil {
				return err
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			size, _ := cmd.Flags().GetInt("size")
			opts := []samples.Option{samples.WithSeed(seed)}
			if size > 0 {
				opts = append(opts, samples.WithSize(size))
			}
			input, err := samples.For(args[0], opts...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(input)
		},
	}
	cmd.Flags().Int64("seed", samples.DefaultSeed, "Random seed for generated inputs")
	cmd.Flags().Int("size", 0, "Element or node count; graphs become random when set")

	return cmd
}
