/*
 * netfile.go, part of gofission.
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

//Package netfile reads and writes entries of the reaction-network input format.
//
//An entry is a block of lines terminated by a blank line:
//
//	single_rate | rate_table
//	source
//	number of reactants
//	reactants, one per line
//
//followed, for fission entries, by the rate (single_rate) or the number of
//points and the "T9 rate" rows (rate_table), and then one line per fission
//channel. Standard entries instead carry the number of products, the products
//and the rate.
package netfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	fission "github.com/nucastro/gofission"
)

//Kind is the rate type of an entry.
type Kind string

const (
	SingleRate Kind = "single_rate"
	RateTable  Kind = "rate_table"
)

//RatePoint is a row of a rate table.
type RatePoint struct {
	T9   float64 `yaml:"t9"`
	Rate float64 `yaml:"rate"`
}

//Entry is one reaction (or one set of fission channels) in the network file.
type Entry struct {
	Kind      Kind
	Source    string
	Reactants []string
	Products  []string //only for the standard layout.
	Rate      float64  //single_rate
	Table     []RatePoint
	Channels  []Channel //fission layout.
}

//NewFissionEntry returns a single_rate fission entry for the nucleus parent.
func NewFissionEntry(source string, parent fission.Nuclide, rate float64, channels []Channel) *Entry {
	return &Entry{
		Kind:      SingleRate,
		Source:    source,
		Reactants: []string{parent.Pair()},
		Rate:      rate,
		Channels:  channels,
	}
}

//NewInducedEntry returns a rate_table entry for neutron-induced fission of target.
func NewInducedEntry(source string, target fission.Nuclide, table []RatePoint, channels []Channel) *Entry {
	neutron := fission.Nuclide{Z: fission.NeutronZ, A: fission.NeutronA}
	return &Entry{
		Kind:      RateTable,
		Source:    source,
		Reactants: []string{neutron.Pair(), target.Pair()},
		Table:     table,
		Channels:  channels,
	}
}

//Standard returns true if the entry uses the reactants -> products layout.
func (E *Entry) Standard() bool {
	return E.Products != nil
}

//Fissioning returns the fissioning reactant of a fission entry, i.e. the last
//reactant, in "Z  A" form.
func (E *Entry) Fissioning() (fission.Nuclide, error) {
	if len(E.Reactants) == 0 {
		return fission.Nuclide{}, fmt.Errorf("netfile: entry %q has no reactants", E.Source)
	}
	return fission.ParsePair(E.Reactants[len(E.Reactants)-1])
}

//Validate checks that the entry can be written.
func (E *Entry) Validate() error {
	switch E.Kind {
	case SingleRate:
	case RateTable:
		if E.Standard() {
			return fmt.Errorf("netfile: %s entry %q can't have products", E.Kind, E.Source)
		}
	default:
		return fmt.Errorf("netfile: unknown entry kind %q", E.Kind)
	}
	if len(E.Reactants) == 0 {
		return fmt.Errorf("netfile: entry %q has no reactants", E.Source)
	}
	if E.Standard() && len(E.Channels) > 0 {
		return fmt.Errorf("netfile: entry %q has both products and fission channels", E.Source)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

//WriteTo writes the entry, including the blank line that terminates it.
func (E *Entry) WriteTo(w io.Writer) (int64, error) {
	if err := E.Validate(); err != nil {
		return 0, err
	}
	lines := make([]string, 0, 8+len(E.Reactants)+len(E.Products)+len(E.Table)+len(E.Channels))
	lines = append(lines, string(E.Kind), E.Source, strconv.Itoa(len(E.Reactants)))
	lines = append(lines, E.Reactants...)
	switch {
	case E.Standard():
		lines = append(lines, strconv.Itoa(len(E.Products)))
		lines = append(lines, E.Products...)
		lines = append(lines, formatFloat(E.Rate))
	case E.Kind == RateTable:
		lines = append(lines, strconv.Itoa(len(E.Table)))
		for _, p := range E.Table {
			lines = append(lines, formatFloat(p.T9)+" "+formatFloat(p.Rate))
		}
	default:
		lines = append(lines, formatFloat(E.Rate))
	}
	for _, c := range E.Channels {
		lines = append(lines, c.String())
	}
	n, err := io.WriteString(w, strings.Join(lines, "\n")+"\n\n")
	return int64(n), err
}

//Write writes the entries to w, in order.
func Write(w io.Writer, entries ...*Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if _, err := e.WriteTo(bw); err != nil {
			return fmt.Errorf("netfile: writing entry %d: %w", i, err)
		}
	}
	return bw.Flush()
}

//ReadFission reads fission-layout entries from r. Entries may lack channel lines,
//as in files that still have to be completed.
func ReadFission(r io.Reader) ([]*Entry, error) {
	sc := bufio.NewScanner(r)
	var entries []*Entry
	var block []string
	start, lineno := 0, 0
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		e, err := parseBlock(block)
		if err != nil {
			return fmt.Errorf("netfile: entry starting at line %d: %w", start, err)
		}
		entries = append(entries, e)
		block = block[:0]
		return nil
	}
	for sc.Scan() {
		lineno++
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(block) == 0 {
			start = lineno
		}
		block = append(block, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseBlock(b []string) (*Entry, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("only %d lines", len(b))
	}
	e := &Entry{Kind: Kind(b[0]), Source: b[1]}
	if e.Kind != SingleRate && e.Kind != RateTable {
		return nil, fmt.Errorf("unknown entry kind %q", b[0])
	}
	nr, err := strconv.Atoi(b[2])
	if err != nil || nr < 1 {
		return nil, fmt.Errorf("bad number of reactants %q", b[2])
	}
	i := 3
	if len(b) < i+nr+1 {
		return nil, fmt.Errorf("truncated entry")
	}
	e.Reactants = append([]string(nil), b[i:i+nr]...)
	i += nr
	if e.Kind == SingleRate {
		e.Rate, err = strconv.ParseFloat(b[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad rate %q", b[i])
		}
		i++
	} else {
		np, err := strconv.Atoi(b[i])
		if err != nil || np < 0 {
			return nil, fmt.Errorf("bad number of table points %q", b[i])
		}
		i++
		if len(b) < i+np {
			return nil, fmt.Errorf("truncated rate table")
		}
		for _, row := range b[i : i+np] {
			p, err := parseRatePoint(row)
			if err != nil {
				return nil, err
			}
			e.Table = append(e.Table, p)
		}
		i += np
	}
	for _, l := range b[i:] {
		c, err := ParseChannel(l)
		if err != nil {
			return nil, err
		}
		e.Channels = append(e.Channels, c)
	}
	return e, nil
}

func parseRatePoint(row string) (RatePoint, error) {
	f := strings.Fields(row)
	if len(f) != 2 {
		return RatePoint{}, fmt.Errorf("bad rate table row %q", row)
	}
	t9, err1 := strconv.ParseFloat(f[0], 64)
	r, err2 := strconv.ParseFloat(f[1], 64)
	if err1 != nil || err2 != nil {
		return RatePoint{}, fmt.Errorf("bad rate table row %q", row)
	}
	return RatePoint{T9: t9, Rate: r}, nil
}
