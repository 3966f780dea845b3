/*
 * atomicdata.go, part of gofission.
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
	"strings"
)

//MaxZ is the largest proton number in the element table.
const MaxZ = 118

//Element symbols, indexed by Z. The empty string at index 0 stands for the neutron.
var symbols = [MaxZ + 1]string{
	"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", //1-10
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca", //11-20
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", //21-30
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr", //31-40
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", //41-50
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd", //51-60
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", //61-70
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", //71-80
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th", //81-90
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", //91-100
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", //101-110
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og", //111-118
}

//Lowercase symbol to Z, built on init.
var symbolZ = make(map[string]int, MaxZ)

func init() {
	for z, s := range symbols {
		if z == 0 {
			continue
		}
		symbolZ[strings.ToLower(s)] = z
	}
}

//Symbol returns the element symbol for the proton number z.
func Symbol(z int) (string, error) {
	if z < 1 || z > MaxZ {
		return "", fmt.Errorf("gofission: no element with Z=%d", z)
	}
	return symbols[z], nil
}

//Z returns the proton number for an element symbol. The symbol is case-insensitive.
func Z(symbol string) (int, error) {
	z, ok := symbolZ[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return 0, fmt.Errorf("gofission: unknown element %q", symbol)
	}
	return z, nil
}
