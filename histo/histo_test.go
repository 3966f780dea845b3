package histo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerDividers(Te *testing.T) {
	assert.Equal(Te, []float64{99.5, 100.5, 101.5, 102.5}, IntegerDividers(100, 102))
	assert.Equal(Te, IntegerDividers(100, 102), IntegerDividers(102, 100))
}

func TestHistoBinning(Te *testing.T) {
	d := NewData(IntegerDividers(1, 4), []float64{1, 2, 2, 3, 4, 4, 4, 9, -3}, nil, 7)
	assert.Equal(Te, 7, d.ID())
	assert.Equal(Te, []float64{1, 2, 1, 3}, d.View())
	assert.Equal(Te, 9.0, d.Total())
	assert.Equal(Te, []float64{1, 2, 3, 4}, d.Centers())

	d.Normalize()
	assert.True(Te, d.Normalized())
	assert.InDelta(Te, 7.0/9.0, d.Sum(), 1e-12)
	d.AddData(1)
	assert.True(Te, d.Normalized())
	assert.InDelta(Te, 2.0/10.0, d.View()[0], 1e-12)
	d.UnNormalize()
	assert.InDelta(Te, 2.0, d.View()[0], 1e-12)
}

func TestHistoWeights(Te *testing.T) {
	d := NewData(IntegerDividers(116, 118), []float64{118, 116, 200}, []float64{3, 1, 5})
	assert.Equal(Te, []float64{1, 0, 3}, d.View())
	assert.Equal(Te, 9.0, d.Total())
	assert.Equal(Te, -1, d.ID())

	e := NewData(IntegerDividers(116, 118), nil, nil)
	e.AddWeighted(117, 2)
	sum := NewData(IntegerDividers(116, 118), nil, nil)
	sum.Add(d, e)
	assert.Equal(Te, []float64{1, 2, 3}, sum.View())
	assert.Equal(Te, 11.0, sum.Total())

	assert.Panics(Te, func() { NewData([]float64{1}, nil, nil) })
	assert.Panics(Te, func() { NewData([]float64{1, 2}, []float64{1}, []float64{1, 2}) })
}

func TestHistoJSON(Te *testing.T) {
	d := NewData(IntegerDividers(1, 3), []float64{1, 2, 2, 3}, nil, 2)
	d.Normalize()
	j, err := json.Marshal(d)
	require.NoError(Te, err)
	d2 := new(Data)
	require.NoError(Te, json.Unmarshal(j, d2))
	assert.Equal(Te, d.View(), d2.View())
	assert.Equal(Te, d.CopyDividers(), d2.CopyDividers())
	assert.True(Te, d2.Normalized())
	assert.Equal(Te, 2, d2.ID())
	assert.Error(Te, json.Unmarshal([]byte(`{"dividers":[1],"histo":[]}`), new(Data)))
}
