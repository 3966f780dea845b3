//Package histo provides binned yield distributions (fragment mass or charge yields)
//with optional per-point weights, normalization and JSON output.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i spans [dividers[i], dividers[i+1]).
type Data struct {
	id         int
	normalized bool
	total      float64 //total weight added, including points out of range.
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      float64   `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("gofission/histo: ill-formed histogram in JSON data")
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//IntegerDividers returns dividers for one bin per integer from lo to hi, both
//included, each bin centered on its integer.
func IntegerDividers(lo, hi int) []float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	d := make([]float64, 0, hi-lo+2)
	for i := lo; i <= hi+1; i++ {
		d = append(d, float64(i)-0.5)
	}
	return d
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//weights can be nil, in which case every point weights 1. Otherwise it must have
//the same length as rawdata. If an ID for the histogram is given, it will be set.
//If not, the ID will be set to -1. NewData panics if there are less than 2 dividers
//or they are not sorted.
func NewData(dividers, rawdata, weights []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("gofission/histo.NewData: at least 2 sorted dividers are needed")
	}
	d := new(Data)
	//copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata, weights)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//Total returns the total weight added to the histogram.
func (D *Data) Total() float64 {
	return D.total
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, Total: %g\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.1f-%4.1f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3g", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//AddData adds the given data point(s) to the histogram, each with weight 1.
func (D *Data) AddData(point ...float64) {
	for _, v := range point {
		D.AddWeighted(v, 1)
	}
}

//AddWeighted adds a data point with weight w. Values out of the range of
//the dividers are not binned, but count for the total.
func (D *Data) AddWeighted(v, w float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	if i := D.bin(v); i >= 0 {
		D.histo[i] += w
	}
	D.total += w
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//bin returns the bin index of v, or -1 if v is out of range.
func (D *Data) bin(v float64) int {
	if v < D.dividers[0] || v >= D.dividers[len(D.dividers)-1] {
		return -1
	}
	//first divider larger than v
	i := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
	return i - 1
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides each bin by the total weight.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := D.total
	if normalize {
		n = 1 / D.total
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Copy copies the bin values of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the bin values, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Centers returns the center of each bin.
func (D *Data) Centers() []float64 {
	c := make([]float64, len(D.histo))
	for i := range c {
		c[i] = (D.dividers[i] + D.dividers[i+1]) / 2
	}
	return c
}

//Sum returns the sum of the bin values.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Add adds the histograms a and b putting the result in the receiver.
//It panics if the dividers don't match.
func (D *Data) Add(a, b *Data) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("gofission/histo.Data.Add: Dividers must match in added histograms")
	}
	if a.normalized != b.normalized {
		panic("gofission/histo.Data.Add: can't add a normalized and a non-normalized histogram")
	}
	D.dividers = a.CopyDividers(D.dividers)
	if len(D.histo) != len(a.histo) {
		D.histo = make([]float64, len(a.histo))
	}
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
	D.normalized = a.normalized
}

//ReHisto bins rawdata, with the given weights (or 1 for each point, if nil), on
//the given dividers, replacing the current contents of the histogram.
func (D *Data) ReHisto(dividers, rawdata, weights []float64) {
	if weights != nil && len(weights) != len(rawdata) {
		panic("gofission/histo.Data.ReHisto: weights and data must have the same length")
	}
	x := make([]float64, len(rawdata))
	copy(x, rawdata)
	var w []float64
	D.total = float64(len(x))
	if weights != nil {
		w = make([]float64, len(weights))
		copy(w, weights)
		D.total = floats.Sum(w)
		sort.Sort(byX{x, w})
	} else {
		sort.Float64s(x)
	}
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(x, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(x, dividers[0])
	x = x[mini:maxi]
	if w != nil {
		w = w[mini:maxi]
	}
	D.dividers = dividers
	D.normalized = false
	D.histo = stat.Histogram(nil, dividers, x, w)
}

type byX struct {
	x, w []float64
}

func (b byX) Len() int           { return len(b.x) }
func (b byX) Less(i, j int) bool { return b.x[i] < b.x[j] }
func (b byX) Swap(i, j int) {
	b.x[i], b.x[j] = b.x[j], b.x[i]
	b.w[i], b.w[j] = b.w[j], b.w[i]
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
	} else {
		d = make([]float64, N)
	}
	return d
}
