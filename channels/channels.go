/*
 * channels.go, part of gofission.
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

//Package channels aggregates fission events into fragmentation channels, prunes
//them to the statistically significant ones and renormalizes their probabilities
//for the reaction-network file.
package channels

import (
	"errors"
	"fmt"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/lmd"
)

var (
	ErrNoEvents         = errors.New("gofission/channels: no events")
	ErrNoChannels       = errors.New("gofission/channels: no channel above the threshold")
	ErrBadOptions       = errors.New("gofission/channels: invalid pruning options")
	ErrNegativeNeutrons = errors.New("gofission/channels: fragments heavier than the fissioning nucleus")
)

//Channel is a fragmentation channel: the proton and mass numbers of both fragments,
//in the order they appear in the event file.
type Channel struct {
	Z1, Z2 int
	A1, A2 int
}

//FromEvent returns the channel of a fission event.
func FromEvent(e lmd.Event) Channel {
	return Channel{Z1: e.Z1, Z2: e.Z2, A1: e.A1, A2: e.A2}
}

//Fragments returns both fragments as nuclides.
func (C Channel) Fragments() (fission.Nuclide, fission.Nuclide) {
	return fission.Nuclide{Z: C.Z1, A: C.A1}, fission.Nuclide{Z: C.Z2, A: C.A2}
}

func (C Channel) String() string {
	f1, f2 := C.Fragments()
	return f1.String() + "+" + f2.String()
}

//Counts is the frequency of each channel in a set of events.
//Channels are kept in the order in which they were first seen.
type Counts struct {
	order []Channel
	n     map[Channel]int
	total int
}

//NewCounts returns an empty Counts.
func NewCounts() *Counts {
	return &Counts{n: make(map[Channel]int)}
}

//Count returns the channel frequencies of the given events.
func Count(events []lmd.Event) *Counts {
	C := NewCounts()
	for _, e := range events {
		C.Add(FromEvent(e))
	}
	return C
}

//CountReader counts all the remaining events of an lmd reader.
func CountReader(L *lmd.LMDR) (*Counts, error) {
	C := NewCounts()
	for {
		e, err := L.Next()
		if err != nil {
			if lmd.IsLastEvent(err) {
				break
			}
			return nil, fission.ErrDecorate(err, "CountReader")
		}
		C.Add(FromEvent(e))
	}
	return C, nil
}

//CountFile opens the lmd file name and counts its events.
func CountFile(name string) (*Counts, error) {
	L, err := lmd.New(name)
	if err != nil {
		return nil, fission.ErrDecorate(err, "CountFile")
	}
	defer L.Close()
	C, err := CountReader(L)
	if err != nil {
		return nil, fission.ErrDecorate(err, "CountFile")
	}
	return C, nil
}

//Add adds one occurrence of ch.
func (C *Counts) Add(ch Channel) {
	C.AddN(ch, 1)
}

//AddN adds n occurrences of ch. It panics if n is negative.
func (C *Counts) AddN(ch Channel, n int) {
	if n < 0 {
		panic("gofission/channels.Counts.AddN: negative count")
	}
	if n == 0 {
		return
	}
	if _, ok := C.n[ch]; !ok {
		C.order = append(C.order, ch)
	}
	C.n[ch] += n
	C.total += n
}

//Total returns the number of events counted.
func (C *Counts) Total() int {
	return C.total
}

//Len returns the number of distinct channels.
func (C *Counts) Len() int {
	return len(C.order)
}

//Get returns the number of occurrences of ch.
func (C *Counts) Get(ch Channel) int {
	return C.n[ch]
}

//Frequency returns the fraction of the events that went through ch.
func (C *Counts) Frequency(ch Channel) float64 {
	if C.total == 0 {
		return 0
	}
	return float64(C.n[ch]) / float64(C.total)
}

//Channels returns the distinct channels, in first-seen order.
func (C *Counts) Channels() []Channel {
	ret := make([]Channel, len(C.order))
	copy(ret, C.order)
	return ret
}

//Merge adds all the counts in o to the receiver.
func (C *Counts) Merge(o *Counts) {
	for _, ch := range o.order {
		C.AddN(ch, o.n[ch])
	}
}

func (C *Counts) String() string {
	return fmt.Sprintf("%d events in %d channels", C.total, len(C.order))
}
