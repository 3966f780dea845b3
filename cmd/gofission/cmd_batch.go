/*
 * cmd_batch.go, part of gofission.
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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nucastro/gofission/batch"
	"github.com/nucastro/gofission/netfile"
)

var (
	batchConfig string
	batchDir    string
	batchWorker int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Write fission entries for a whole (Z, A) grid",
	Long: `Builds the fission entry of every nuclide in the configured grid that
has an event file, processing several files at once.

Example:
  gofission batch --config sf.yaml -o sf_reactions.txt`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

var completeCmd = &cobra.Command{
	Use:   "complete FILE",
	Short: "Add the channels to the fission entries of a network file",
	Long: `Reads fission entries that lack their channel lines and fills them in
from the event files of the fissioning nuclei.

Example:
  gofission complete --dir $HOME/out sf_reactions.txt -o sf_reactions_complete.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	for _, c := range []*cobra.Command{batchCmd, completeCmd} {
		c.Flags().StringVarP(&batchConfig, "config", "c", "", "YAML configuration file")
		c.Flags().StringVar(&batchDir, "dir", "", "directory with the event files (overrides the configuration)")
		c.Flags().IntVarP(&batchWorker, "workers", "j", 0, "files processed at once (overrides the configuration)")
	}
}

func processor() (*batch.Processor, error) {
	cfg := batch.DefaultConfig()
	if batchConfig != "" {
		var err error
		cfg, err = batch.LoadConfig(batchConfig)
		if err != nil {
			return nil, err
		}
	}
	if batchDir != "" {
		cfg.Dir = batchDir
	}
	if batchWorker > 0 {
		cfg.Workers = batchWorker
	}
	logger.Debug("batch configuration", zap.Any("config", cfg))
	return batch.New(cfg, logger)
}

//commandContext returns the context of cmd, which is nil when cmd wasn't started by Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	P, err := processor()
	if err != nil {
		return err
	}
	entries, err := P.Run(commandContext(cmd))
	if err != nil {
		return err
	}
	logger.Info("batch done", zap.Int("entries", len(entries)))
	w, closer, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)
	return netfile.Write(w, entries...)
}

func runComplete(cmd *cobra.Command, args []string) (err error) {
	P, err := processor()
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	entries, err := netfile.ReadFission(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	n, err := P.Complete(commandContext(cmd), entries)
	if err != nil {
		return err
	}
	logger.Info("entries completed", zap.Int("completed", n), zap.Int("total", len(entries)))
	w, closer, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)
	return netfile.Write(w, entries...)
}
