/*
 * prune.go, part of gofission.
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
	"math"
)

//Options controls the adaptive pruning. Thresholds Start, Start+Step, ... are
//tried while they stay below Stop, until at most MaxChannels channels survive.
type Options struct {
	Start       float64 `yaml:"start"`
	Step        float64 `yaml:"step"`
	Stop        float64 `yaml:"stop"`
	MaxChannels int     `yaml:"max_channels"`
}

//DefaultOptions returns the usual pruning: 0.5% to 3% in steps of 0.1%, at most 5 channels.
func DefaultOptions() Options {
	return Options{Start: 0.005, Step: 0.001, Stop: 0.030, MaxChannels: 5}
}

//Validate returns an error wrapping ErrBadOptions if the options can't be used.
func (O Options) Validate() error {
	switch {
	case O.Start < 0:
		return fmt.Errorf("%w: negative start threshold %g", ErrBadOptions, O.Start)
	case O.Step <= 0:
		return fmt.Errorf("%w: non-positive step %g", ErrBadOptions, O.Step)
	case O.Stop <= O.Start:
		return fmt.Errorf("%w: stop threshold %g not above start %g", ErrBadOptions, O.Stop, O.Start)
	case O.MaxChannels < 1:
		return fmt.Errorf("%w: at least one channel must be allowed", ErrBadOptions)
	}
	return nil
}

//Retained is a channel that survived the pruning, with its count.
type Retained struct {
	Channel
	Count int
}

//Pruned is the set of channels kept after pruning.
type Pruned struct {
	Channels  []Retained //first-seen order
	Total     int        //number of events before pruning
	Threshold float64    //last threshold applied
	Converged bool       //false if no threshold brought the set under the cap.
}

//retain returns the channels with more than threshold*total occurrences.
//The comparison is made on the relative frequency: count/total is correctly
//rounded, so a channel exactly on the limit is never kept, while
//threshold*total can round below the integer count.
func (C *Counts) retain(threshold float64) []Retained {
	total := float64(C.total)
	ret := make([]Retained, 0, 8)
	for _, ch := range C.order {
		if v := C.n[ch]; float64(v)/total > threshold {
			ret = append(ret, Retained{ch, v})
		}
	}
	return ret
}

//thresholdDigits is the number of decimals kept in the adaptive thresholds.
const thresholdDigits = 1e12

func snap(t float64) float64 {
	return math.Round(t*thresholdDigits) / thresholdDigits
}

//Prune raises the relative-frequency threshold from O.Start in steps of O.Step
//until no more than O.MaxChannels channels are above it. If that doesn't happen
//before O.Stop, the set for the last threshold tried is returned, with Converged
//set to false. An error wrapping ErrNoChannels is returned if the final set is empty.
func (C *Counts) Prune(O Options) (*Pruned, error) {
	if err := O.Validate(); err != nil {
		return nil, err
	}
	if C.total == 0 {
		return nil, ErrNoEvents
	}
	P := &Pruned{Total: C.total}
	//computed from k rather than accumulated, and snapped to the decimal grid,
	//so 0.005+6*0.001 is the same float64 as 0.011.
	for k := 0; ; k++ {
		t := snap(O.Start + float64(k)*O.Step)
		if t >= O.Stop {
			break
		}
		P.Threshold = t
		P.Channels = C.retain(t)
		if len(P.Channels) <= O.MaxChannels {
			P.Converged = true
			break
		}
	}
	if len(P.Channels) == 0 {
		return nil, fmt.Errorf("%w (threshold %g, %d events)", ErrNoChannels, P.Threshold, C.total)
	}
	return P, nil
}

//PruneFixed keeps every channel with more than threshold*total occurrences, with no cap.
func (C *Counts) PruneFixed(threshold float64) (*Pruned, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: negative threshold %g", ErrBadOptions, threshold)
	}
	if C.total == 0 {
		return nil, ErrNoEvents
	}
	P := &Pruned{Total: C.total, Threshold: threshold, Converged: true}
	P.Channels = C.retain(threshold)
	if len(P.Channels) == 0 {
		return nil, fmt.Errorf("%w (threshold %g, %d events)", ErrNoChannels, threshold, C.total)
	}
	return P, nil
}
