/*
 * nuclide.go, part of gofission.
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
	"fmt"
	"strconv"
	"strings"
)

//Nuclide is a nucleus given by its proton number Z and mass number A.
type Nuclide struct {
	Z int
	A int
}

//N returns the neutron number.
func (n Nuclide) N() int {
	return n.A - n.Z
}

//Valid returns true if the nuclide has a non-negative proton number and
//at least as many nucleons as protons.
func (n Nuclide) Valid() bool {
	return n.Z >= 0 && n.A > 0 && n.A >= n.Z
}

//Pair returns the "Z  A" form (two spaces) used for reactants in fission entries.
func (n Nuclide) Pair() string {
	return fmt.Sprintf("%d  %d", n.Z, n.A)
}

//Name returns the network name of the nuclide, i.e. lowercase element symbol plus mass number ("u235").
//The free neutron is "n". An error is returned if Z is outside the element table.
func (n Nuclide) Name() (string, error) {
	if n.Z == NeutronZ && n.A == NeutronA {
		return "n", nil
	}
	s, err := Symbol(n.Z)
	if err != nil {
		return "", err
	}
	return strings.ToLower(s) + strconv.Itoa(n.A), nil
}

func (n Nuclide) String() string {
	s, err := Symbol(n.Z)
	if err != nil {
		return fmt.Sprintf("Z%d_A%d", n.Z, n.A)
	}
	return fmt.Sprintf("%d%s", n.A, s)
}

//ParsePair parses the "Z  A" form, with any amount of whitespace between the numbers.
func ParsePair(s string) (Nuclide, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return Nuclide{}, fmt.Errorf("gofission: %q is not a 'Z A' pair", s)
	}
	z, err := strconv.Atoi(f[0])
	if err != nil {
		return Nuclide{}, fmt.Errorf("gofission: bad Z in %q: %w", s, err)
	}
	a, err := strconv.Atoi(f[1])
	if err != nil {
		return Nuclide{}, fmt.Errorf("gofission: bad A in %q: %w", s, err)
	}
	n := Nuclide{Z: z, A: a}
	if !n.Valid() {
		return Nuclide{}, fmt.Errorf("gofission: invalid nuclide Z=%d A=%d", z, a)
	}
	return n, nil
}

//ParseName parses a network name such as "u235" or "Cf252". The element
//part is case-insensitive.
func ParseName(s string) (Nuclide, error) {
	s = strings.TrimSpace(s)
	if s == "n" {
		return Nuclide{Z: NeutronZ, A: NeutronA}, nil
	}
	i := strings.IndexAny(s, "0123456789")
	if i <= 0 {
		return Nuclide{}, fmt.Errorf("gofission: %q is not a nuclide name", s)
	}
	z, err := Z(s[:i])
	if err != nil {
		return Nuclide{}, err
	}
	a, err := strconv.Atoi(s[i:])
	if err != nil {
		return Nuclide{}, fmt.Errorf("gofission: bad mass number in %q: %w", s, err)
	}
	n := Nuclide{Z: z, A: a}
	if !n.Valid() {
		return Nuclide{}, fmt.Errorf("gofission: invalid nuclide %q", s)
	}
	return n, nil
}
