/*
 * compressed.go, part of gofission.
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
	"bufio"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder doesn't implement io.ReadCloser, as its Close returns nothing.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//plain wraps a reader with a no-op Close, so the file is only closed once.
type plain struct {
	io.Reader
}

func (p plain) Close() error { return nil }

//prepSource takes a reader for the file fname and a format string, and returns an object that will
//read data from the file, either 'as is' or decompressing first, depending on the format string.
//If the format string is empty, it is deduced from the file extension. Supported extensions
//are .zst/.zstd (zstandard) and .gz (gzip). Anything else is read as plain text.
func prepSource(r io.Reader, fname string, format string) (io.ReadCloser, error) {
	fk := format
	if fk == "" {
		temp := strings.Split(fname, ".")
		fk = strings.ToLower(temp[len(temp)-1])
	}
	reader := bufio.NewReader(r)
	switch fk {
	case "zst", "zstd":
		d, err := zstd.NewReader(reader)
		if err != nil {
			return nil, err
		}
		return zstdCloser{d}, nil
	case "gz":
		return gzip.NewReader(reader)
	default:
		return plain{reader}, nil
	}
}
