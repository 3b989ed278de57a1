// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "probctl",
		Short:        "Drive MCMC inference over the probabilistic-go example computations",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRunCmd(), newPlotCmd(), newListCmd())
	return cmd
}

// newLogger builds the CLI's structured logger, matching the
// timestamp+level console texture jhkimqd-chaos-utils'
// reporting.Logger uses.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
