/*
 * lmd_test.go, part of gofission.
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

package lmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fission "github.com/nucastro/gofission"
)

//A small fake of a GEF list-mode file. The first data field positions are
//what matters: tokens 3,4 are Z1,Z2 and 7,8 are A1,A2.
const sample = `* GEF list-mode output
* Z A E* ...

1 260 100 46 54 117.2 142.8 116 141 0.5
2 260 100 46 54 117.2 142.8 116 141 0.4
   3 260 100 40 60 100.1 159.9 99 158 -1.2
*  trailing comment
4 260 100 46.0 54 117.2 142.8 116 141 0.5
`

var sampleEvents = []Event{
	{46, 54, 116, 141},
	{46, 54, 116, 141},
	{40, 60, 99, 158},
	{46, 54, 116, 141},
}

func writeFile(Te *testing.T, name, content string) string {
	path := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadAll(Te *testing.T) {
	path := writeFile(Te, "Z100_A260_sf_E0MeV.lmd", sample)
	events, err := ReadAll(path)
	require.NoError(Te, err)
	assert.Equal(Te, sampleEvents, events)
	assert.Equal(Te, 3, events[0].Neutrons(260))
}

func TestNextAndEOF(Te *testing.T) {
	L := NewFromReader(strings.NewReader(sample), "sample")
	n := 0
	for {
		_, err := L.Next()
		if err != nil {
			require.True(Te, IsLastEvent(err), err.Error())
			var le fission.LastEventError
			require.True(Te, errors.As(err, &le))
			assert.Equal(Te, "sample", le.FileName())
			assert.False(Te, le.Critical())
			break
		}
		n++
	}
	assert.Equal(Te, 4, n)
	assert.Equal(Te, 4, L.Events())
	L.Close()
	_, err := L.Next()
	assert.Error(Te, err)
	assert.False(Te, IsLastEvent(err))
}

func TestMalformed(Te *testing.T) {
	cases := map[string]string{
		"short":    "1 260 100 46 54 117.2\n",
		"fraction": "1 260 100 46.5 54 117.2 142.8 116 141\n",
	}
	for name, content := range cases {
		L := NewFromReader(strings.NewReader("* header\n"+content), name)
		_, err := L.Next()
		require.Error(Te, err, name)
		assert.True(Te, errors.Is(err, ErrWrongFormat), name)
		assert.Contains(Te, err.Error(), "line 2", name)
		var fe fission.FileError
		require.True(Te, errors.As(err, &fe))
		assert.Equal(Te, name, fe.FileName())
		assert.Equal(Te, "lmd", fe.Format())
		assert.True(Te, fe.Critical())
	}
}

func TestCompressed(Te *testing.T) {
	dir := Te.TempDir()

	gzpath := filepath.Join(dir, "events.lmd.gz")
	f, err := os.Create(gzpath)
	require.NoError(Te, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(sample))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	require.NoError(Te, f.Close())

	zpath := filepath.Join(dir, "events.lmd.zst")
	f, err = os.Create(zpath)
	require.NoError(Te, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = zw.Write([]byte(sample))
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	require.NoError(Te, f.Close())

	for _, p := range []string{gzpath, zpath} {
		events, err := ReadAll(p)
		require.NoError(Te, err, p)
		assert.Equal(Te, sampleEvents, events, p)
	}
}

func TestMissingFile(Te *testing.T) {
	_, err := New(filepath.Join(Te.TempDir(), "nope.lmd"))
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, os.ErrNotExist))
}
