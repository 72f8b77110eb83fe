// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvtrace",
		Short: "lvtrace runs algorithms and records every step they take",
		Long: `lvtrace executes sorting, searching, graph, dynamic-programming and
string-matching algorithms and records an ordered trace of snapshots that a
visualizer can replay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newListCmd(),
		newRunCmd(),
		newSampleCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loggerFor builds the process logger from the --log-level flag.
func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}

	return logging.New(level), nil
}
