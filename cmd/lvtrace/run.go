// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/execution"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/step"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Run an algorithm and print its step trace",
		Example: `  lvtrace run binary-search --input '{"array":[1,3,5,7,9,11],"target":7}'
  lvtrace run dijkstra --sample --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			log, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			maxSteps, _ := cmd.Flags().GetInt("max-steps")
			asJSON, _ := cmd.Flags().GetBool("json")

			svc := execution.NewService(execution.NewMemoryStore(), execution.WithLogger(log))
			exec, err := svc.Execute(cmd.Context(), execution.Request{
				Algorithm: args[0],
				Input:     input,
				MaxSteps:  maxSteps,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(exec)
			}
			printTrace(cmd.OutOrStdout(), exec)
			return nil
		},
	}
	cmd.Flags().String("input", "", "Algorithm input as a JSON object, or @file to read one")
	cmd.Flags().Bool("sample", false, "Use the built-in sample input")
	cmd.Flags().Int("max-steps", 0, "Truncate the trace after N steps (0 keeps every step)")
	cmd.Flags().Bool("json", false, "Print the execution as JSON")

	return cmd
}

// readInput resolves --sample or --input into an input map.
func readInput(cmd *cobra.Command, id string) (map[string]any, error) {
	useSample, _ := cmd.Flags().GetBool("sample")
	raw, _ := cmd.Flags().GetString("input")

	switch {
	case useSample && raw != "":
		return nil, errors.New("--sample and --input are mutually exclusive")
	case useSample:
		return samples.For(id)
	case raw == "":
		return nil, errors.New("one of --input or --sample is required")
	}

	data := []byte(raw)
	if raw[0] == '@' {
		var err error
		if data, err = os.ReadFile(raw[1:]); err != nil {
			return nil, err
		}
	}
	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("decoding --input: %w", err)
	}

	return input, nil
}

// kindColor picks an ANSI colour per transition class.
func kindColor(k step.Kind) string {
	switch k {
	case step.KindComplete, step.KindFound, step.KindSorted, step.KindAddEdge, step.KindMatch:
		return "2"
	case step.KindNotFound, step.KindSkipEdge, step.KindNegativeCycle, step.KindMismatch, step.KindSpuriousHit:
		return "1"
	case step.KindCompare, step.KindCheckEdge, step.KindCalculateMid, step.KindProbe:
		return "3"
	case step.KindSwap, step.KindRelax, step.KindUpdate, step.KindFill, step.KindPlace, step.KindShift:
		return "5"
	}
	return "6"
}

func printTrace(w io.Writer, exec *execution.Execution) {
	out := termenv.NewOutput(w)
	for i, s := range exec.Steps {
		kind := out.String(fmt.Sprintf("%-14s", s.Kind())).Foreground(out.Color(kindColor(s.Kind())))
		fmt.Fprintf(w, "%4d  %s  %s\n", i+1, kind, s.Describe())
	}

	summary := fmt.Sprintf("%s: %d steps", exec.Algorithm, exec.TotalSteps)
	switch {
	case exec.Truncated:
		summary += fmt.Sprintf(", truncated to %d", len(exec.Steps))
	case !exec.Completed:
		summary += ", ended without completing"
	}
	fmt.Fprintln(w, out.String(summary).Faint())
}
