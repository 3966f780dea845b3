/*
 * channels_test.go, part of gofission.
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

package channels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fission "github.com/nucastro/gofission"
	"github.com/nucastro/gofission/lmd"
)

//converging returns 997 events in 7 channels, of which 5 are above 1.3%.
func converging() (*Counts, []Channel) {
	chs := []Channel{
		{46, 54, 116, 141},
		{40, 60, 99, 158},
		{50, 50, 128, 129},
		{44, 56, 110, 147},
		{48, 52, 120, 137},
		{38, 62, 95, 162},
		{36, 64, 90, 167},
	}
	C := NewCounts()
	for i, n := range []int{400, 300, 200, 60, 20, 12, 5} {
		C.AddN(chs[i], n)
	}
	return C, chs
}

func TestCount(Te *testing.T) {
	events := []lmd.Event{{Z1: 46, Z2: 54, A1: 116, A2: 141}, {Z1: 40, Z2: 60, A1: 99, A2: 158}, {Z1: 46, Z2: 54, A1: 116, A2: 141}, {Z1: 54, Z2: 46, A1: 141, A2: 116}}
	C := Count(events)
	assert.Equal(Te, 4, C.Total())
	assert.Equal(Te, 3, C.Len())
	assert.Equal(Te, 2, C.Get(Channel{46, 54, 116, 141}))
	assert.Equal(Te, 1, C.Get(Channel{54, 46, 141, 116}))
	assert.Equal(Te, 0.5, C.Frequency(Channel{46, 54, 116, 141}))
	assert.Equal(Te, []Channel{{46, 54, 116, 141}, {40, 60, 99, 158}, {54, 46, 141, 116}}, C.Channels())

	D := NewCounts()
	D.AddN(Channel{1, 2, 3, 4}, 2)
	D.AddN(Channel{46, 54, 116, 141}, 0)
	D.Merge(C)
	assert.Equal(Te, 6, D.Total())
	assert.Equal(Te, Channel{1, 2, 3, 4}, D.Channels()[0])
	assert.Zero(Te, NewCounts().Frequency(Channel{}))
	assert.Panics(Te, func() { D.AddN(Channel{}, -1) })
}

func TestPruneConverges(Te *testing.T) {
	C, chs := converging()
	P, err := C.Prune(DefaultOptions())
	require.NoError(Te, err)
	assert.True(Te, P.Converged)
	assert.InDelta(Te, 0.013, P.Threshold, 1e-9)
	require.Equal(Te, 5, P.Len())
	for i, r := range P.Channels {
		assert.Equal(Te, chs[i], r.Channel)
	}
	assert.InDelta(Te, 980.0/997.0, P.Mass(), 1e-12)
	probs := P.Probabilities()
	assert.InDelta(Te, 1, probs[0]+probs[1]+probs[2]+probs[3]+probs[4], 1e-12)
	assert.InDelta(Te, 400.0/980.0, probs[0], 1e-12)
}

func TestPruneDoesNotConverge(Te *testing.T) {
	C := NewCounts()
	for i, n := range []int{200, 200, 200, 150, 100, 100, 47} {
		C.AddN(Channel{40 + i, 60 - i, 100 + i, 157 - i}, n)
	}
	P, err := C.Prune(DefaultOptions())
	require.NoError(Te, err)
	assert.False(Te, P.Converged)
	assert.Equal(Te, 7, P.Len())
	assert.InDelta(Te, 0.029, P.Threshold, 1e-9)
}

func TestPruneFixed(Te *testing.T) {
	C, _ := converging()
	P, err := C.PruneFixed(0.1)
	require.NoError(Te, err)
	assert.Equal(Te, 3, P.Len())
	assert.True(Te, P.Converged)

	_, err = C.PruneFixed(0.5)
	assert.True(Te, errors.Is(err, ErrNoChannels))
	_, err = C.PruneFixed(-0.5)
	assert.True(Te, errors.Is(err, ErrBadOptions))
	_, err = NewCounts().PruneFixed(0.1)
	assert.True(Te, errors.Is(err, ErrNoEvents))
}

//onTheLimit returns 23000 events where the second channel, with 253 events, sits
//exactly on the 1.1% threshold, and the third (260 events) just above it.
func onTheLimit() (*Counts, []Channel) {
	var chs []Channel
	C := NewCounts()
	add := func(n int) {
		i := len(chs)
		ch := Channel{20 + i, 80 - i, 50 + i, 207 - i}
		chs = append(chs, ch)
		C.AddN(ch, n)
	}
	add(5000)
	add(253)
	add(260)
	for i := 0; i < 3; i++ {
		add(5000)
	}
	for i := 0; i < 22; i++ {
		add(113)
	}
	add(1)
	return C, chs
}

func TestPruneOnTheLimit(Te *testing.T) {
	C, chs := onTheLimit()
	require.Equal(Te, 23000, C.Total())

	P, err := C.Prune(DefaultOptions())
	require.NoError(Te, err)
	assert.True(Te, P.Converged)
	assert.Equal(Te, 0.011, P.Threshold)
	require.Equal(Te, 5, P.Len())
	kept := make(map[Channel]bool)
	for _, r := range P.Channels {
		kept[r.Channel] = true
	}
	assert.False(Te, kept[chs[1]], "253 events is not more than 1.1% of 23000")
	assert.True(Te, kept[chs[2]])

	P, err = C.PruneFixed(0.011)
	require.NoError(Te, err)
	assert.Equal(Te, 5, P.Len())
	for _, r := range P.Channels {
		assert.NotEqual(Te, 253, r.Count)
	}
	P, err = C.PruneFixed(0.01)
	require.NoError(Te, err)
	assert.Equal(Te, 6, P.Len())
}

func TestPruneErrors(Te *testing.T) {
	C, _ := converging()
	_, err := NewCounts().Prune(DefaultOptions())
	assert.True(Te, errors.Is(err, ErrNoEvents))

	bad := []Options{
		{Start: -1, Step: 0.001, Stop: 0.03, MaxChannels: 5},
		{Start: 0.005, Step: 0, Stop: 0.03, MaxChannels: 5},
		{Start: 0.03, Step: 0.001, Stop: 0.03, MaxChannels: 5},
		{Start: 0.005, Step: 0.001, Stop: 0.03, MaxChannels: 0},
	}
	for _, o := range bad {
		_, err := C.Prune(o)
		assert.True(Te, errors.Is(err, ErrBadOptions), "%+v", o)
	}

	//single channel with too few events to pass the first threshold
	D := NewCounts()
	for i := 0; i < 300; i++ {
		D.Add(Channel{i, i, 2 * i, 2 * i})
	}
	_, err = D.Prune(DefaultOptions())
	assert.True(Te, errors.Is(err, ErrNoChannels))
}

func TestReactions(Te *testing.T) {
	C, _ := converging()
	P, err := C.Prune(DefaultOptions())
	require.NoError(Te, err)
	r, err := P.Reactions(260, false)
	require.NoError(Te, err)
	require.Len(Te, r, 5)
	assert.Equal(Te, fission.Nuclide{Z: 46, A: 116}, r[0].F1)
	assert.Equal(Te, fission.Nuclide{Z: 54, A: 141}, r[0].F2)
	assert.Equal(Te, 3, r[0].Neutrons)
	assert.Equal(Te, 3, r[1].Neutrons)
	assert.Equal(Te, 3, r[2].Neutrons)
	assert.InDelta(Te, 400.0/980.0, r[0].Prob, 1e-12)
	assert.True(Te, strings.HasPrefix(r[0].String(), "46 116 54 141 0 1 0 1 0 1 0.408"), r[0].String())

	ri, err := P.Reactions(260, true)
	require.NoError(Te, err)
	assert.Equal(Te, 4, ri[0].Neutrons)

	_, err = P.Reactions(250, false)
	assert.True(Te, errors.Is(err, ErrNegativeNeutrons))

	mn, err := P.MeanNeutrons(260, false)
	require.NoError(Te, err)
	assert.InDelta(Te, 3.0, mn, 1e-12)

	s, err := Summarize(fission.Nuclide{Z: 100, A: 260}, C, P, false)
	require.NoError(Te, err)
	assert.Equal(Te, 997, s.Events)
	assert.Equal(Te, 7, s.Distinct)
	assert.Equal(Te, 5, s.Retained)
	assert.Contains(Te, s.String(), "260Fm")
}

func TestYields(Te *testing.T) {
	C := NewCounts()
	C.AddN(Channel{46, 54, 116, 141}, 3)
	C.AddN(Channel{50, 50, 128, 129}, 1)
	m := C.MassYields()
	assert.True(Te, m.Normalized())
	assert.InDelta(Te, 1, m.Sum(), 1e-12)
	centers := m.Centers()
	assert.Equal(Te, 116.0, centers[0])
	assert.Equal(Te, 141.0, centers[len(centers)-1])
	assert.InDelta(Te, 3.0/8.0, m.View()[0], 1e-12)

	z := C.ChargeYields()
	assert.InDelta(Te, 2.0/8.0, z.View()[50-46], 1e-12)
}

func TestCountFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "ev.lmd")
	content := "* header\n1 260 100 46 54 1 1 116 141\n2 260 100 46 54 1 1 116 141\n3 260 100 40 60 1 1 99 158\n"
	require.NoError(Te, os.WriteFile(path, []byte(content), 0o644))
	C, err := CountFile(path)
	require.NoError(Te, err)
	assert.Equal(Te, 3, C.Total())
	assert.Equal(Te, 2, C.Get(Channel{46, 54, 116, 141}))

	require.NoError(Te, os.WriteFile(path, []byte("1 2 3\n"), 0o644))
	_, err = CountFile(path)
	assert.True(Te, errors.Is(err, lmd.ErrWrongFormat))
}
