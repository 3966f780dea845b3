/*
 * beta.go, part of gofission.
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

//Package decays writes standard-layout network entries for beta decays from
//tabulated half-lives.
package decays

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/netfile"
)

//DefaultMaxZ is the heaviest parent with tabulated data.
const DefaultMaxZ = 111

//Leptons emitted in a beta-minus decay, as named in the network.
var betaLeptons = []string{"electron", "anti-neutrino_e"}

//Row is a tabulated beta-minus half-life.
type Row struct {
	Parent   fission.Nuclide
	HalfLife float64 //seconds
}

//ReadTable reads rows of "Z N half-life" from r. Numbers may be written as
//floats ("26.0"). Blank lines and lines starting with '#' are skipped.
func ReadTable(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	var rows []Row
	line := 0
	for sc.Scan() {
		line++
		l := strings.TrimSpace(sc.Text())
		if l == "" || l[0] == '#' {
			continue
		}
		f := strings.Fields(l)
		if len(f) < 3 {
			return nil, fmt.Errorf("gofission/decays: line %d: 3 columns needed, got %d", line, len(f))
		}
		var v [3]float64
		for i := range v {
			x, err := strconv.ParseFloat(f[i], 64)
			if err != nil {
				return nil, fmt.Errorf("gofission/decays: line %d: %w", line, err)
			}
			v[i] = x
		}
		z, n := int(math.Round(v[0])), int(math.Round(v[1]))
		rows = append(rows, Row{Parent: fission.Nuclide{Z: z, A: z + n}, HalfLife: v[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

//BetaEntries returns one entry per row: parent -> daughter + electron + antineutrino,
//with rate ln2/half-life. Rows with parents above maxZ are skipped. It returns an
//error for non-positive half-lives or nuclides without a name.
func BetaEntries(rows []Row, source string, maxZ int) ([]*netfile.Entry, error) {
	if maxZ >= fission.MaxZ {
		maxZ = fission.MaxZ - 1 //the daughter needs a symbol too.
	}
	ret := make([]*netfile.Entry, 0, len(rows))
	for _, r := range rows {
		if r.Parent.Z > maxZ {
			continue
		}
		if r.HalfLife <= 0 {
			return nil, fmt.Errorf("gofission/decays: non-positive half-life for %v", r.Parent)
		}
		parent, err := r.Parent.Name()
		if err != nil {
			return nil, err
		}
		daughter, err := fission.Nuclide{Z: r.Parent.Z + 1, A: r.Parent.A}.Name()
		if err != nil {
			return nil, err
		}
		ret = append(ret, &netfile.Entry{
			Kind:      netfile.SingleRate,
			Source:    source,
			Reactants: []string{parent},
			Products:  append([]string{daughter}, betaLeptons...),
			Rate:      fission.RateFromHalfLife(r.HalfLife),
		})
	}
	return ret, nil
}
