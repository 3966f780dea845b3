/*
 * conversion.go, part of gofission.
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

import "math"

//This provides useful conversion factors and other constants

//Conversions
const (
	Ln2    = math.Ln2
	Minute = 60.0 //seconds
	Hour   = 60 * Minute
	Day    = 24 * Hour
	Year   = 365.25 * Day //Julian year, as used in the half-life fits
	T9     = 1e9          //Kelvin per T9 unit
)

//Others
const (
	NeutronA = 1 //neutrons are written as "0 1" (Z, A) in the network format
	NeutronZ = 0
)

//RateFromHalfLife returns the decay constant (1/s) for a half-life given in seconds.
//It returns 0 for non-positive or infinite half-lives.
func RateFromHalfLife(t12 float64) float64 {
	if t12 <= 0 || math.IsInf(t12, 1) || math.IsNaN(t12) {
		return 0
	}
	return Ln2 / t12
}
