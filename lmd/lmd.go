/*
 * lmd.go, part of gofission.
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

//Package lmd reads the list-mode event files written by the GEF fission code.
//Each data line describes one fission event; the reader extracts the fragment
//proton numbers and post-neutron-emission mass numbers from it.
package lmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

//Positions, among the numeric tokens of a data line, of the fields we keep.
const (
	z1Field   = 3
	z2Field   = 4
	a1Field   = 7
	a2Field   = 8
	minFields = a2Field + 1
)

//Lines can be long when GEF writes the full event information.
const maxLineSize = 1 << 20

var tokenRE = regexp.MustCompile(`-?\d+\.?\d*`)

//Event is a single fission event: the proton numbers of both fragments
//and their mass numbers after prompt-neutron emission.
type Event struct {
	Z1, Z2 int
	A1, A2 int
}

//Neutrons returns the number of free neutrons left by the event for a fissioning
//nucleus of mass number a.
func (E Event) Neutrons(a int) int {
	return a - E.A1 - E.A2
}

func (E Event) String() string {
	return fmt.Sprintf("Z1=%d Z2=%d A1=%d A2=%d", E.Z1, E.Z2, E.A1, E.A2)
}

//LMDR reads events from an lmd file.
type LMDR struct {
	f        *os.File
	src      io.ReadCloser
	sc       *bufio.Scanner
	filename string
	line     int
	events   int
	readable bool
}

//New opens the lmd file name for reading. Compressed files (.zst, .gz) are
//decompressed on the fly.
func New(name string) (*LMDR, error) {
	L := new(LMDR)
	L.filename = name
	var err error
	L.f, err = os.Open(name)
	if err != nil {
		return nil, &Error{UnableToOpen + ": " + err.Error(), name, []string{"os.Open", "New"}, true, err}
	}
	L.src, err = prepSource(L.f, name, "")
	if err != nil {
		L.f.Close()
		return nil, &Error{UnableToOpen + ": " + err.Error(), name, []string{"prepSource", "New"}, true, err}
	}
	L.initScanner(L.src)
	return L, nil
}

//NewFromReader returns a reader for uncompressed lmd data coming from r. name is only
//used to label errors.
func NewFromReader(r io.Reader, name string) *LMDR {
	L := new(LMDR)
	L.filename = name
	L.initScanner(r)
	return L
}

func (L *LMDR) initScanner(r io.Reader) {
	L.sc = bufio.NewScanner(r)
	L.sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	L.readable = true
}

//FileName returns the name of the file being read.
func (L *LMDR) FileName() string {
	return L.filename
}

//Events returns the number of events read so far.
func (L *LMDR) Events() int {
	return L.events
}

//Close closes the reader. It can't be used after this call.
func (L *LMDR) Close() {
	if L == nil || !L.readable {
		return
	}
	if L.src != nil {
		L.src.Close()
	}
	if L.f != nil {
		L.f.Close()
	}
	L.readable = false
}

//Next returns the next event in the file. Comment lines (starting with '*') and
//blank lines are skipped. At the end of the file it returns an error that
//implements fission.LastEventError.
func (L *LMDR) Next() (Event, error) {
	if !L.readable {
		return Event{}, &Error{NotReadable, L.filename, []string{"Next"}, true, nil}
	}
	for L.sc.Scan() {
		L.line++
		stripped := strings.TrimSpace(L.sc.Text())
		if stripped == "" || stripped[0] == '*' {
			continue
		}
		ev, err := parseLine(stripped)
		if err != nil {
			return Event{}, &Error{fmt.Sprintf("%s at line %d: %s", WrongFormat, L.line, err.Error()), L.filename, []string{"parseLine", "Next"}, true, ErrWrongFormat}
		}
		L.events++
		return ev, nil
	}
	if err := L.sc.Err(); err != nil {
		return Event{}, &Error{ReadError + ": " + err.Error(), L.filename, []string{"Scan", "Next"}, true, err}
	}
	return Event{}, newLastEventError(L.filename, "Next")
}

//ReadAll reads every event in the lmd file name.
func ReadAll(name string) ([]Event, error) {
	L, err := New(name)
	if err != nil {
		return nil, err
	}
	defer L.Close()
	return L.ReadAll()
}

//ReadAll reads all the remaining events from the reader.
func (L *LMDR) ReadAll() ([]Event, error) {
	ret := make([]Event, 0, 1024)
	for {
		ev, err := L.Next()
		if err != nil {
			if IsLastEvent(err) {
				break
			}
			return nil, errDecorate(err, "ReadAll")
		}
		ret = append(ret, ev)
	}
	return ret, nil
}

func parseLine(line string) (Event, error) {
	tokens := tokenRE.FindAllString(line, -1)
	if len(tokens) < minFields {
		return Event{}, fmt.Errorf("%d numeric fields found, at least %d needed", len(tokens), minFields)
	}
	var vals [4]int
	for i, f := range [4]int{z1Field, z2Field, a1Field, a2Field} {
		v, err := integral(tokens[f])
		if err != nil {
			return Event{}, fmt.Errorf("field %d: %v", f, err)
		}
		vals[i] = v
	}
	return Event{Z1: vals[0], Z2: vals[1], A1: vals[2], A2: vals[3]}, nil
}

//integral parses tokens such as "46" or "46.0", the latter must have no fractional part.
func integral(tok string) (int, error) {
	if !strings.Contains(tok, ".") {
		return strconv.Atoi(tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not an integer", tok)
	}
	return int(f), nil
}
