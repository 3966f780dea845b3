package decays

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/netfile"
)

const table = `# Z N T1/2[s]
26.0 34.0 8.0e13
50 82 39.7

112 170 1.0
`

func TestBetaEntries(Te *testing.T) {
	rows, err := ReadTable(strings.NewReader(table))
	require.NoError(Te, err)
	require.Len(Te, rows, 3)
	assert.Equal(Te, fission.Nuclide{Z: 26, A: 60}, rows[0].Parent)

	entries, err := BetaEntries(rows, "beta decay tables", DefaultMaxZ)
	require.NoError(Te, err)
	require.Len(Te, entries, 2)
	assert.Equal(Te, []string{"sn132"}, entries[1].Reactants)
	assert.Equal(Te, []string{"sb132", "electron", "anti-neutrino_e"}, entries[1].Products)
	assert.InDelta(Te, math.Ln2/39.7, entries[1].Rate, 1e-15)

	var buf bytes.Buffer
	require.NoError(Te, netfile.Write(&buf, entries[0]))
	assert.True(Te, strings.HasPrefix(buf.String(), "single_rate\nbeta decay tables\n1\nfe60\n3\nco60\nelectron\nanti-neutrino_e\n"))

	all, err := BetaEntries(rows, "x", 200)
	require.NoError(Te, err)
	assert.Len(Te, all, 3)
}

func TestBetaErrors(Te *testing.T) {
	_, err := ReadTable(strings.NewReader("26 34\n"))
	assert.Error(Te, err)
	_, err = ReadTable(strings.NewReader("26 x 1\n"))
	assert.Error(Te, err)
	_, err = BetaEntries([]Row{{Parent: fission.Nuclide{Z: 26, A: 60}, HalfLife: 0}}, "x", DefaultMaxZ)
	assert.Error(Te, err)
}
