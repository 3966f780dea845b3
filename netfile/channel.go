/*
 * channel.go, part of gofission.
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

package netfile

import (
	"fmt"
	"strconv"
	"strings"

	fission "github.com/nucastro/gofission"
)

//Channel is a fission outcome: two fragments, a number of free neutrons
//and its probability.
type Channel struct {
	F1, F2   fission.Nuclide
	Neutrons int
	Prob     float64
}

//String returns the network line for the channel: "Z1 A1 Z2 A2", then
//"0 1" once per free neutron, then the probability.
func (C Channel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d %d", C.F1.Z, C.F1.A, C.F2.Z, C.F2.A)
	for i := 0; i < C.Neutrons; i++ {
		b.WriteString(" 0 1")
	}
	b.WriteString(" ")
	b.WriteString(formatFloat(C.Prob))
	return b.String()
}

//ParseChannel parses a line written by Channel.String.
func ParseChannel(line string) (Channel, error) {
	f := strings.Fields(line)
	if len(f) < 5 || (len(f)-5)%2 != 0 {
		return Channel{}, fmt.Errorf("netfile: bad channel line %q", line)
	}
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(f[i])
		if err != nil {
			return Channel{}, fmt.Errorf("netfile: bad channel line %q: %w", line, err)
		}
		v[i] = n
	}
	c := Channel{F1: fission.Nuclide{Z: v[0], A: v[1]}, F2: fission.Nuclide{Z: v[2], A: v[3]}}
	for i := 4; i < len(f)-1; i += 2 {
		if f[i] != "0" || f[i+1] != "1" {
			return Channel{}, fmt.Errorf("netfile: expected neutron '0 1' in channel line %q", line)
		}
		c.Neutrons++
	}
	p, err := strconv.ParseFloat(f[len(f)-1], 64)
	if err != nil {
		return Channel{}, fmt.Errorf("netfile: bad probability in %q: %w", line, err)
	}
	c.Prob = p
	return c, nil
}
