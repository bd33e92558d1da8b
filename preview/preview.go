// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preview renders a PlanResult for human inspection: a coverage
// raster built with the raster package's scanline rasterizer, a vector PDF
// built with seehuhn.de/go/pdf, and an HTML scatter chart built with
// go-echarts. None of this is on the planner's hot path; it exists purely
// as a developer aid for eyeballing a plan before trusting it.
package preview

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/swkwac/LaserXe"
	"github.com/swkwac/LaserXe/raster"
)

// circleVertices is the vertex count used when approximating a spot disc as
// a polygon for the coverage rasterizer.
const circleVertices = 24

// Raster is a coverage grid: Values[y][x] is the fraction of pixel (x, y)
// covered by the rendered masks and spots, in [0, 1].
type Raster struct {
	Width, Height int
	Values        [][]float32
}

// RenderCoverage rasterizes mask outlines (stroked) and spot discs (filled)
// into a pixel-space coverage grid of the given size, mapping the square
// [-extentMM, extentMM]^2 in C-mm onto the full pixel canvas. It is
// grounded on raster.go's Rasterizer, which this package reuses verbatim
// for its scanline fill and stroke machinery rather than reimplementing
// anti-aliased coverage accumulation.
func RenderCoverage(masks []planner.MaskPolygon, spots []planner.Spot, spotDiameterMM, extentMM float64, width, height int) *Raster {
	grid := &Raster{Width: width, Height: height}
	grid.Values = make([][]float32, height)
	for y := range grid.Values {
		grid.Values[y] = make([]float32, width)
	}

	toPixel := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: (p.X + extentMM) / (2 * extentMM) * float64(width),
			Y: (extentMM - p.Y) / (2 * extentMM) * float64(height),
		}
	}

	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}

	merge := func(y, xMin int, coverage []float32) {
		if y < 0 || y >= height {
			return
		}
		row := grid.Values[y]
		for i, c := range coverage {
			x := xMin + i
			if x < 0 || x >= width {
				continue
			}
			if c > row[x] {
				row[x] = c
			}
		}
	}

	r := raster.NewRasterizer(clip)
	r.Flatness = 0.5
	r.Width = 1.0

	for _, m := range masks {
		outline := polygonPath(m.Vertices, toPixel)
		r.Stroke(outline, merge)
	}

	for _, s := range spots {
		disc := discPath(vec.Vec2{X: s.X, Y: s.Y}, spotDiameterMM/2, toPixel)
		r.FillNonZero(disc, merge)
	}

	return grid
}

func polygonPath(vertices []vec.Vec2, toPixel func(vec.Vec2) vec.Vec2) *path.Data {
	if len(vertices) == 0 {
		return &path.Data{}
	}
	p := (&path.Data{}).MoveTo(toPixel(vertices[0]))
	for _, v := range vertices[1:] {
		p = p.LineTo(toPixel(v))
	}
	return p.Close()
}

func discPath(center vec.Vec2, radius float64, toPixel func(vec.Vec2) vec.Vec2) *path.Data {
	p := &path.Data{}
	for i := 0; i <= circleVertices; i++ {
		theta := 2 * math.Pi * float64(i) / circleVertices
		v := vec.Vec2{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)}
		if i == 0 {
			p = p.MoveTo(toPixel(v))
		} else {
			p = p.LineTo(toPixel(v))
		}
	}
	return p.Close()
}
