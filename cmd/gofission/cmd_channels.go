/*
 * cmd_channels.go, part of gofission.
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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/channels"
	"github.com/nucastro/gofission/halflife"
	"github.com/nucastro/gofission/netfile"
)

var (
	chZ, chA       int
	chInduced      bool
	chBare         bool
	chSource       string
	chRateModel    string
	chRate         float64
	chThreshold    float64
	chPruneOptions = channels.DefaultOptions()
)

var channelsCmd = &cobra.Command{
	Use:   "channels FILE",
	Short: "Write the fission entry for one event file",
	Long: `Counts the fragmentation channels in an lmd event file, keeps the
dominant ones and writes the fission entry for the nucleus (Z, A).

Example:
  gofission channels --z 100 --a 260 Z100_A260_sf_E0MeV.lmd
  gofission channels --z 95 --a 260 --induced --threshold 0.019 260Am_nf.lmd`,
	Args: cobra.ExactArgs(1),
	RunE: runChannels,
}

func init() {
	f := channelsCmd.Flags()
	f.IntVar(&chZ, "z", 0, "proton number of the fissioning nucleus")
	f.IntVar(&chA, "a", 0, "mass number of the fissioning nucleus (target, for induced fission)")
	f.BoolVar(&chInduced, "induced", false, "neutron-induced fission (rate_table entry)")
	f.BoolVar(&chBare, "bare", false, "write only the channel lines")
	f.StringVar(&chSource, "source", "", "source line of the entry (default depends on the fission type)")
	f.StringVar(&chRateModel, "rate-model", halflife.FixedName, "fixed, exp or systematics")
	f.Float64Var(&chRate, "rate", 10000, "rate for the fixed model (1/s)")
	f.Float64Var(&chThreshold, "threshold", 0, "single relative-frequency threshold, disables the adaptive pruning")
	f.Float64Var(&chPruneOptions.Start, "start", chPruneOptions.Start, "first adaptive threshold")
	f.Float64Var(&chPruneOptions.Step, "step", chPruneOptions.Step, "adaptive threshold step")
	f.Float64Var(&chPruneOptions.Stop, "stop", chPruneOptions.Stop, "adaptive thresholds stay below this")
	f.IntVar(&chPruneOptions.MaxChannels, "max", chPruneOptions.MaxChannels, "maximum number of channels")
	_ = channelsCmd.MarkFlagRequired("z")
	_ = channelsCmd.MarkFlagRequired("a")
}

func runChannels(cmd *cobra.Command, args []string) (err error) {
	n := fission.Nuclide{Z: chZ, A: chA}
	if !n.Valid() {
		return fmt.Errorf("invalid nuclide Z=%d A=%d", chZ, chA)
	}
	C, err := channels.CountFile(args[0])
	if err != nil {
		return err
	}
	var P *channels.Pruned
	if chThreshold > 0 {
		P, err = C.PruneFixed(chThreshold)
	} else {
		P, err = C.Prune(chPruneOptions)
	}
	if err != nil {
		return err
	}
	s, err := channels.Summarize(n, C, P, chInduced)
	if err != nil {
		return err
	}
	logger.Info("channels pruned", zap.String("summary", s.String()))
	if !P.Converged {
		logger.Warn("no threshold brought the channels under the cap", zap.Int("kept", P.Len()))
	}
	reactions, err := P.Reactions(n.A, chInduced)
	if err != nil {
		return err
	}

	w, closer, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)
	if chBare {
		for _, r := range reactions {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return err
			}
		}
		return nil
	}
	var e *netfile.Entry
	if chInduced {
		src := chSource
		if src == "" {
			src = "GEF neutron induced"
		}
		e = netfile.NewInducedEntry(src, n, nil, reactions)
	} else {
		src := chSource
		if src == "" {
			src = "GEF spontaneous"
		}
		m, err := halflife.ByName(chRateModel, chRate)
		if err != nil {
			return err
		}
		rate, err := m.Rate(n)
		if err != nil {
			return err
		}
		e = netfile.NewFissionEntry(src, n, rate, reactions)
	}
	return netfile.Write(w, e)
}
