package channels

import (
	"github.com/nucastro/gofission/histo"
)

//MassYields returns the normalized fragment mass yields: for each A the fraction
//of all fragments (two per event) with that mass number. The histogram covers
//the mass numbers present in the counts.
func (C *Counts) MassYields() *histo.Data {
	return C.yields(func(ch Channel) (int, int) { return ch.A1, ch.A2 })
}

//ChargeYields is like MassYields, for the fragment proton numbers.
func (C *Counts) ChargeYields() *histo.Data {
	return C.yields(func(ch Channel) (int, int) { return ch.Z1, ch.Z2 })
}

func (C *Counts) yields(pick func(Channel) (int, int)) *histo.Data {
	lo, hi := 0, 0
	for i, ch := range C.order {
		a, b := pick(ch)
		if a > b {
			a, b = b, a
		}
		if i == 0 || a < lo {
			lo = a
		}
		if i == 0 || b > hi {
			hi = b
		}
	}
	d := histo.NewData(histo.IntegerDividers(lo, hi), nil, nil)
	for _, ch := range C.order {
		a, b := pick(ch)
		w := float64(C.n[ch])
		d.AddWeighted(float64(a), w)
		d.AddWeighted(float64(b), w)
	}
	d.Normalize()
	return d
}
