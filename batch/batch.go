/*
 * batch.go, part of gofission.
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

//Package batch builds fission entries for many nuclides at once, reading their
//event files concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/channels"
	"github.com/nucastro/gofission/halflife"
	"github.com/nucastro/gofission/netfile"
)

//ErrNoEventFile is returned by Processor.Entry when the nuclide has no event file.
var ErrNoEventFile = errors.New("gofission/batch: no event file")

//Processor turns event files into network entries.
type Processor struct {
	cfg   Config
	model halflife.Model
	log   *zap.Logger
}

//New returns a processor for the configuration cfg. If log is nil, nothing is logged.
func New(cfg Config, log *zap.Logger) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	P := &Processor{cfg: cfg, log: log}
	if !cfg.Induced {
		m, err := halflife.ByName(cfg.RateModel, cfg.Rate)
		if err != nil {
			return nil, err
		}
		P.model = m
	}
	if P.cfg.Workers < 1 {
		P.cfg.Workers = 1
	}
	return P, nil
}

//SetModel replaces the rate model, e.g. with a halflife.BetaDelayed table.
func (P *Processor) SetModel(m halflife.Model) {
	P.model = m
}

//Path returns the event file for the nuclide n: InducedPattern is used for
//neutron-induced fission, Pattern otherwise.
func (P *Processor) Path(n fission.Nuclide) string {
	pattern := P.cfg.Pattern
	if P.cfg.Induced {
		pattern = P.cfg.InducedPattern
	}
	return filepath.Join(os.ExpandEnv(P.cfg.Dir), fmt.Sprintf(pattern, n.Z, n.A))
}

//Grid returns the nuclides of the configured Z and A ranges, Z-major.
func (P *Processor) Grid() []fission.Nuclide {
	ret := make([]fission.Nuclide, 0, (P.cfg.Z.Max-P.cfg.Z.Min+1)*(P.cfg.A.Max-P.cfg.A.Min+1))
	for z := P.cfg.Z.Min; z <= P.cfg.Z.Max; z++ {
		for a := P.cfg.A.Min; a <= P.cfg.A.Max; a++ {
			ret = append(ret, fission.Nuclide{Z: z, A: a})
		}
	}
	return ret
}

//Channels reads the event file of n and returns its pruned, renormalized channels.
//It returns an error wrapping ErrNoEventFile if the file doesn't exist.
func (P *Processor) Channels(n fission.Nuclide) ([]netfile.Channel, error) {
	path := P.Path(n)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for %v: %s", ErrNoEventFile, n, path)
		}
		return nil, err
	}
	C, err := channels.CountFile(path)
	if err != nil {
		return nil, err
	}
	var pr *channels.Pruned
	if P.cfg.FixedThreshold > 0 {
		pr, err = C.PruneFixed(P.cfg.FixedThreshold)
	} else {
		pr, err = C.Prune(P.cfg.Prune)
	}
	if err != nil {
		return nil, fmt.Errorf("%v (%s): %w", n, path, err)
	}
	s, err := channels.Summarize(n, C, pr, P.cfg.Induced)
	if err != nil {
		return nil, err
	}
	if !pr.Converged {
		P.log.Warn("pruning did not reach the channel cap",
			zap.Stringer("nuclide", n),
			zap.Int("kept", s.Retained),
			zap.Int("cap", P.cfg.Prune.MaxChannels),
			zap.Float64("threshold", s.Threshold))
	}
	P.log.Debug("channels", zap.String("summary", s.String()))
	return pr.Reactions(n.A, P.cfg.Induced)
}

//Entry builds the network entry for n.
func (P *Processor) Entry(n fission.Nuclide) (*netfile.Entry, error) {
	chs, err := P.Channels(n)
	if err != nil {
		return nil, err
	}
	if P.cfg.Induced {
		return netfile.NewInducedEntry(P.cfg.Source, n, P.cfg.Table, chs), nil
	}
	rate, err := P.model.Rate(n)
	if err != nil {
		return nil, err
	}
	return netfile.NewFissionEntry(P.cfg.Source, n, rate, chs), nil
}

//Run builds the entries of every nuclide in the grid that has an event file, using
//up to Workers goroutines. The entries keep the grid order. The first error
//cancels the remaining work.
func (P *Processor) Run(ctx context.Context) ([]*netfile.Entry, error) {
	grid := P.Grid()
	results := make([]*netfile.Entry, len(grid))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(P.cfg.Workers)
	for i, n := range grid {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := P.Entry(n)
			if errors.Is(err, ErrNoEventFile) {
				P.log.Debug("skip", zap.Stringer("nuclide", n))
				return nil
			}
			if err != nil {
				return err
			}
			P.log.Info("entry built", zap.Stringer("nuclide", n), zap.Int("channels", len(e.Channels)))
			results[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	ret := make([]*netfile.Entry, 0, len(results))
	for _, e := range results {
		if e != nil {
			ret = append(ret, e)
		}
	}
	return ret, nil
}

//Complete fills in the channels of the fission entries that lack them, from the
//event file of their fissioning nucleus. rate_table entries are read as
//neutron-induced fission, from the files named by InducedPattern. Entries with
//channels, or without an event file, are left as they are. If any entry fails,
//none is modified. It returns the number of entries completed.
func (P *Processor) Complete(ctx context.Context, entries []*netfile.Entry) (int, error) {
	found := make([][]netfile.Channel, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(P.cfg.Workers)
	for i, e := range entries {
		if len(e.Channels) > 0 || e.Standard() {
			continue
		}
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := e.Fissioning()
			if err != nil {
				return err
			}
			chs, err := P.channelsFor(n, e.Kind == netfile.RateTable)
			if errors.Is(err, ErrNoEventFile) {
				P.log.Warn("no event file, entry left incomplete", zap.Stringer("nuclide", n))
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = chs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	c := 0
	for i, chs := range found {
		if chs != nil {
			entries[i].Channels = chs
			c++
		}
	}
	return c, nil
}

//channelsFor is Channels with the induced flag set for this call only.
func (P *Processor) channelsFor(n fission.Nuclide, induced bool) ([]netfile.Channel, error) {
	if induced == P.cfg.Induced {
		return P.Channels(n)
	}
	Q := *P
	Q.cfg.Induced = induced
	return Q.Channels(n)
}
