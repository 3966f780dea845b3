/*
 * halflife.go, part of gofission.
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

//Package halflife evaluates theoretical fission half-lives and turns them into
//rates for single_rate network entries.
package halflife

import (
	"fmt"
	"math"

	fission "github.com/nucastro/gofission"
)

//Coefficients of the exponential spontaneous-fission fit.
const (
	expC0 = -195.09227
	expC1 = 3.10156
	expC2 = -0.04386
	expC3 = 1.4030e-6
	expC4 = -0.03199
)

//Coefficients of the log10(years) systematics fit in Z^2/A and (N-Z)/(N+Z).
const (
	sysA = -43.25203
	sysB = 0.49192
	sysC = 3674.3927
	sysD = -9360.6
	sysE = 580.75058
)

//ExpSF returns the spontaneous-fission half-life, in seconds, from the exponential
//fit in A, Z^2, Z^4, (N-Z)^2 and the Coulomb term Z^2/A^(1/3).
func ExpSF(n fission.Nuclide) float64 {
	z := float64(n.Z)
	a := float64(n.A)
	nz := float64(n.N() - n.Z)
	coul := 0.13323*(z*z/math.Cbrt(a)) - 11.64
	return math.Exp(2 * math.Pi * (expC0 + expC1*a + expC2*z*z + expC3*math.Pow(z, 4) + expC4*nz*nz - coul))
}

//SystematicsSF returns the spontaneous-fission half-life, in seconds, from the
//systematics fit, which gives log10 of the half-life in years.
func SystematicsSF(n fission.Nuclide) float64 {
	z := float64(n.Z)
	a := float64(n.A)
	x := z * z / a
	y := float64(n.N()-n.Z) / a
	years := math.Pow(10, sysA*x+sysB*x*x+sysC*y+sysD*y*y+sysE)
	return years * fission.Year
}

//Model gives the fission rate (1/s) of a nuclide.
type Model interface {
	Rate(n fission.Nuclide) (float64, error)
}

//Fixed is a model that returns the same rate for every nuclide.
type Fixed float64

func (F Fixed) Rate(fission.Nuclide) (float64, error) {
	if F < 0 {
		return 0, fmt.Errorf("gofission/halflife: negative rate %g", float64(F))
	}
	return float64(F), nil
}

//Formula is a model from a half-life formula.
type Formula func(fission.Nuclide) float64

func (F Formula) Rate(n fission.Nuclide) (float64, error) {
	if !n.Valid() {
		return 0, fmt.Errorf("gofission/halflife: invalid nuclide %v", n)
	}
	t := F(n)
	if math.IsNaN(t) || t <= 0 {
		return 0, fmt.Errorf("gofission/halflife: no meaningful half-life for %v", n)
	}
	return fission.RateFromHalfLife(t), nil
}

//BetaDelayed gives rates from known beta-decay half-lives (s), as beta-delayed
//fission proceeds at the pace of the preceding decay.
type BetaDelayed map[fission.Nuclide]float64

func (B BetaDelayed) Rate(n fission.Nuclide) (float64, error) {
	t, ok := B[n]
	if !ok || t <= 0 {
		return 0, fmt.Errorf("gofission/halflife: no beta-decay half-life for %v", n)
	}
	return fission.RateFromHalfLife(t), nil
}

//Model names accepted by ByName.
const (
	FixedName       = "fixed"
	ExpName         = "exp"
	SystematicsName = "systematics"
)

//ByName returns the model called name. fixed is only used by the "fixed" model.
func ByName(name string, fixed float64) (Model, error) {
	switch name {
	case FixedName, "":
		return Fixed(fixed), nil
	case ExpName:
		return Formula(ExpSF), nil
	case SystematicsName:
		return Formula(SystematicsSF), nil
	}
	return nil, fmt.Errorf("gofission/halflife: unknown rate model %q", name)
}
