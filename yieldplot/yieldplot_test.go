package yieldplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nucastro/gofission/histo"
)

func TestYields(Te *testing.T) {
	d := histo.NewData(histo.IntegerDividers(90, 170), []float64{99, 116, 116, 141, 141, 158}, nil)
	d.Normalize()
	name := filepath.Join(Te.TempDir(), "yields.png")
	require.NoError(Te, Yields([]Series{{"260Fm", d}, {"", d}}, "Mass yields", "A", name))
	st, err := os.Stat(name)
	require.NoError(Te, err)
	assert.NotZero(Te, st.Size())

	assert.Error(Te, Yields(nil, "t", "A", name))
	assert.Error(Te, Yields([]Series{{"x", nil}}, "t", "A", name))
}

func TestColors(Te *testing.T) {
	r, g, b := hsv2RGB(0, 1, 1)
	assert.Equal(Te, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = hsv2RGB(120, 1, 1)
	assert.Equal(Te, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
	assert.NotEqual(Te, colors(0, 3), colors(2, 3))
}
