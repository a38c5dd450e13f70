// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz builds statistical figures: principal component
// projections, cluster elbow curves, and logistic regression
// diagnostics.
//
// Static figures satisfy the Figure interface and rasterize to JPEG
// through SaveJPEG. Three dimensional projections are interactive and
// render as standalone HTML pages through Scene3D instead; they have
// no raster form.
package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Figure is a static figure that renders onto a drawing canvas.
// *plot.Plot satisfies Figure, as does *Grid.
type Figure interface {
	Draw(dc draw.Canvas)
}

// A Grid is a Figure of sub-plots tiled in row-major order, in the
// manner of a faceted display. All rows must have the same length;
// nil cells are left blank. Axes are aligned across the grid.
type Grid struct {
	Plots [][]*plot.Plot
}

// Draw renders the grid onto dc.
func (g *Grid) Draw(dc draw.Canvas) {
	rows := len(g.Plots)
	if rows == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows: rows,
		Cols: len(g.Plots[0]),
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(g.Plots, tiles, dc)
	for i, row := range g.Plots {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}
