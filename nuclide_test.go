/*
 * nuclide_test.go, part of gofission.
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

package fission

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuclideNames(Te *testing.T) {
	u := Nuclide{Z: 92, A: 235}
	assert.Equal(Te, 143, u.N())
	assert.Equal(Te, "92  235", u.Pair())
	assert.Equal(Te, "235U", u.String())
	name, err := u.Name()
	require.NoError(Te, err)
	assert.Equal(Te, "u235", name)

	name, err = Nuclide{Z: 0, A: 1}.Name()
	require.NoError(Te, err)
	assert.Equal(Te, "n", name)

	_, err = Nuclide{Z: 130, A: 330}.Name()
	assert.Error(Te, err)
	assert.Equal(Te, "Z130_A330", Nuclide{Z: 130, A: 330}.String())
}

func TestParse(Te *testing.T) {
	n, err := ParsePair("98  252")
	require.NoError(Te, err)
	assert.Equal(Te, Nuclide{Z: 98, A: 252}, n)

	n, err = ParsePair("\t100 260 ")
	require.NoError(Te, err)
	assert.Equal(Te, Nuclide{Z: 100, A: 260}, n)

	for _, bad := range []string{"98", "98 252 1", "x 252", "98 y", "98 50"} {
		_, err = ParsePair(bad)
		assert.Error(Te, err, bad)
	}

	n, err = ParseName("Cf252")
	require.NoError(Te, err)
	assert.Equal(Te, Nuclide{Z: 98, A: 252}, n)
	n, err = ParseName("n")
	require.NoError(Te, err)
	assert.Equal(Te, Nuclide{Z: 0, A: 1}, n)
	_, err = ParseName("252")
	assert.Error(Te, err)
	_, err = ParseName("xx12")
	assert.Error(Te, err)
}

func TestElements(Te *testing.T) {
	s, err := Symbol(1)
	require.NoError(Te, err)
	assert.Equal(Te, "H", s)
	s, err = Symbol(MaxZ)
	require.NoError(Te, err)
	assert.Equal(Te, "Og", s)
	_, err = Symbol(0)
	assert.Error(Te, err)
	for z := 1; z <= MaxZ; z++ {
		s, _ := Symbol(z)
		back, err := Z(s)
		require.NoError(Te, err)
		assert.Equal(Te, z, back)
	}
}

func TestRateFromHalfLife(Te *testing.T) {
	assert.InDelta(Te, math.Ln2/10, RateFromHalfLife(10), 1e-15)
	assert.Zero(Te, RateFromHalfLife(0))
	assert.Zero(Te, RateFromHalfLife(-1))
	assert.Zero(Te, RateFromHalfLife(math.Inf(1)))
}

type decoError struct{ deco []string }

func (E *decoError) Error() string { return "deco" }
func (E *decoError) Decorate(d string) []string {
	if d != "" {
		E.deco = append(E.deco, d)
	}
	return E.deco
}

func TestErrDecorate(Te *testing.T) {
	assert.Nil(Te, ErrDecorate(nil, "x"))
	e := &decoError{}
	err := ErrDecorate(e, "Caller")
	assert.Equal(Te, []string{"Caller"}, err.(Error).Decorate(""))
}
