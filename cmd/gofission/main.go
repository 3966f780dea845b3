/*
 * main.go, part of gofission.
 *
 *
 * Copyright 2024 The gofission Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Command gofission builds reaction-network fission entries from GEF event files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  *zap.Logger
	verbose bool
	output  string
)

var rootCmd = &cobra.Command{
	Use:   "gofission",
	Short: "Fission channels for reaction-network input files",
	Long: `gofission reads GEF list-mode event files, keeps the dominant
fragmentation channels and writes them as entries of the
reaction-network input format.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default: standard output)")
	rootCmd.AddCommand(channelsCmd, batchCmd, completeCmd, yieldsCmd, betaCmd)
}

//openOutput returns the writer for the --output flag, and the function that closes it.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if output == "" || output == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(os.ExpandEnv(output))
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

//closeOutput closes the output and reports its error through err, unless an
//earlier error is already there. Meant to be deferred with a named result.
func closeOutput(closer func() error, err *error) {
	if cerr := closer(); *err == nil {
		*err = cerr
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
