/*
 * emit.go, part of gofission.
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

package channels

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/netfile"
)

//Len returns the number of retained channels.
func (P *Pruned) Len() int {
	return len(P.Channels)
}

//Frequencies returns count/total for each retained channel.
func (P *Pruned) Frequencies() []float64 {
	f := make([]float64, len(P.Channels))
	for i, r := range P.Channels {
		f[i] = float64(r.Count) / float64(P.Total)
	}
	return f
}

//Mass returns the fraction of all the events that went through the retained channels.
func (P *Pruned) Mass() float64 {
	return floats.Sum(P.Frequencies())
}

//Probabilities returns the frequency of each retained channel divided by the
//retained mass, so they add up to 1.
func (P *Pruned) Probabilities() []float64 {
	f := P.Frequencies()
	m := floats.Sum(f)
	if m == 0 {
		return f
	}
	floats.Scale(1/m, f)
	return f
}

//neutrons returns the free neutrons left by r when a nucleus of mass number a fissions.
//For neutron-induced fission the compound nucleus has one extra nucleon.
func neutrons(r Retained, a int, induced bool) (int, error) {
	n := a - r.A1 - r.A2
	if induced {
		n++
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %v from A=%d", ErrNegativeNeutrons, r.Channel, a)
	}
	return n, nil
}

//Reactions returns the network channel lines for the retained channels of the
//fission of a nucleus with mass number a, with renormalized probabilities.
//The fragments are written in the order of the event file.
func (P *Pruned) Reactions(a int, induced bool) ([]netfile.Channel, error) {
	probs := P.Probabilities()
	ret := make([]netfile.Channel, 0, len(P.Channels))
	for i, r := range P.Channels {
		n, err := neutrons(r, a, induced)
		if err != nil {
			return nil, err
		}
		f1, f2 := r.Fragments()
		ret = append(ret, netfile.Channel{F1: f1, F2: f2, Neutrons: n, Prob: probs[i]})
	}
	return ret, nil
}

//MeanNeutrons returns the probability-weighted mean number of free neutrons
//over the retained channels.
func (P *Pruned) MeanNeutrons(a int, induced bool) (float64, error) {
	x := make([]float64, len(P.Channels))
	for i, r := range P.Channels {
		n, err := neutrons(r, a, induced)
		if err != nil {
			return 0, err
		}
		x[i] = float64(n)
	}
	return stat.Mean(x, P.Probabilities()), nil
}

//Summary holds a few numbers describing a pruning.
type Summary struct {
	Parent       fission.Nuclide
	Events       int
	Distinct     int
	Retained     int
	Threshold    float64
	Converged    bool
	Mass         float64
	MeanNeutrons float64
}

//Summarize describes the pruning P of the counts C, for the parent nucleus.
func Summarize(parent fission.Nuclide, C *Counts, P *Pruned, induced bool) (Summary, error) {
	mn, err := P.MeanNeutrons(parent.A, induced)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Parent:       parent,
		Events:       C.Total(),
		Distinct:     C.Len(),
		Retained:     P.Len(),
		Threshold:    P.Threshold,
		Converged:    P.Converged,
		Mass:         P.Mass(),
		MeanNeutrons: mn,
	}, nil
}

func (S Summary) String() string {
	return fmt.Sprintf("%v: %d events, %d channels, %d kept at threshold %.3f (converged: %v), retained mass %.3f, <n>=%.2f",
		S.Parent, S.Events, S.Distinct, S.Retained, S.Threshold, S.Converged, S.Mass, S.MeanNeutrons)
}
