/*
 * yieldplot.go, part of gofission.
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

//Package yieldplot draws fragment yield distributions.
package yieldplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nucastro/gofission/histo"
)

//Series is a named yield distribution.
type Series struct {
	Name string
	Data *histo.Data
}

func basicYieldPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Yield"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//xys builds the plot points from the bin centers and values of d.
func xys(d *histo.Data) plotter.XYs {
	c := d.Centers()
	v := d.View()
	pts := make(plotter.XYs, len(c))
	for i := range c {
		pts[i].X = c[i]
		pts[i].Y = v[i]
	}
	return pts
}

//Yields plots one or more yield distributions, each as a line with markers,
//and saves the plot in the file plotname. The format is taken from the
//extension (png, svg, pdf...).
func Yields(series []Series, title, xlabel, plotname string) error {
	if len(series) == 0 {
		return fmt.Errorf("gofission/yieldplot: nothing to plot")
	}
	p := basicYieldPlot(title, xlabel)
	for i, s := range series {
		if s.Data == nil {
			return fmt.Errorf("gofission/yieldplot: series %d (%s) has no data", i, s.Name)
		}
		pts := xys(s.Data)
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		col := colors(i, len(series))
		l.LineStyle.Color = col
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(l, sc)
		if s.Name != "" {
			p.Legend.Add(s.Name, l, sc)
		}
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, plotname)
}

//colors spreads n colors along the hue circle and returns the i-th.
func colors(i, n int) color.Color {
	if n <= 1 {
		return color.RGBA{R: 200, A: 255}
	}
	h := 300 * float64(i) / float64(n-1)
	r, g, b := hsv2RGB(h, 0.9, 0.8)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//takes hue (0-360), s and v (0-1), returns r,g,b (0-255)
func hsv2RGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	hp := h / 60
	x := c * (1 - abs(mod2(hp)-1))
	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return uint8(255 * (r + m)), uint8(255 * (g + m)), uint8(255 * (b + m))
}

func mod2(x float64) float64 {
	for x >= 2 {
		x -= 2
	}
	return x
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
