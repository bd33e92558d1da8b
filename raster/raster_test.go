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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1}
	r := NewRasterizer(clip)

	coverage := make([]float32, 10)
	emit := func(y, xMin int, cov []float32) {
		if y == 0 {
			for i, c := range cov {
				coverage[xMin+i] = c
			}
		}
	}

	r.FillNonZero(trianglePath, emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// TestFillSpotDisc exercises the fill path preview.RenderCoverage relies on
// for rendering a laser spot: a polygon approximating a circle, filled with
// the nonzero rule. The disc's center pixel must be fully covered and a
// pixel well outside its radius must be untouched.
func TestFillSpotDisc(t *testing.T) {
	const (
		size     = 40
		cx, cy   = 20.0, 20.0
		radius   = 10.0
		vertices = 48
	)

	disc := &path.Data{}
	for i := 0; i <= vertices; i++ {
		theta := 2 * math.Pi * float64(i) / vertices
		v := vec.Vec2{X: cx + radius*math.Cos(theta), Y: cy + radius*math.Sin(theta)}
		if i == 0 {
			disc = disc.MoveTo(v)
		} else {
			disc = disc.LineTo(v)
		}
	}
	disc = disc.Close()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: size, URy: size}
	r := NewRasterizer(clip)

	grid := make([][]float32, size)
	for y := range grid {
		grid[y] = make([]float32, size)
	}
	emit := func(y, xMin int, cov []float32) {
		if y < 0 || y >= size {
			return
		}
		for i, c := range cov {
			x := xMin + i
			if x >= 0 && x < size {
				grid[y][x] = c
			}
		}
	}

	r.FillNonZero(disc, emit)

	if c := grid[int(cy)][int(cx)]; c < 0.99 {
		t.Errorf("disc center coverage = %v, want ~1", c)
	}
	if c := grid[1][1]; c != 0 {
		t.Errorf("corner coverage = %v, want 0", c)
	}
}

// TestStrokeMaskOutline exercises the stroke path preview.RenderCoverage
// relies on for rendering a lesion mask outline: a closed square stroked at
// a fixed width. Every pixel directly under the stroke must pick up some
// coverage, and the polygon's interior must stay untouched.
func TestStrokeMaskOutline(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 30}).
		LineTo(vec.Vec2{X: 10, Y: 30}).
		Close()

	const size = 40
	clip := rect.Rect{LLx: 0, LLy: 0, URx: size, URy: size}
	r := NewRasterizer(clip)
	r.Width = 2.0

	grid := make([][]float32, size)
	for y := range grid {
		grid[y] = make([]float32, size)
	}
	emit := func(y, xMin int, cov []float32) {
		if y < 0 || y >= size {
			return
		}
		for i, c := range cov {
			x := xMin + i
			if x >= 0 && x < size {
				grid[y][x] = c
			}
		}
	}

	r.Stroke(square, emit)

	if c := grid[10][20]; c == 0 {
		t.Error("top edge of the stroked outline has zero coverage")
	}
	if c := grid[20][20]; c != 0 {
		t.Errorf("interior of the stroked outline has coverage %v, want 0", c)
	}
}
