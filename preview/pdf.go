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

package preview

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/swkwac/LaserXe"
)

// pdfMinDotRadiusMM is the smallest disc radius drawn for a spot, used when
// the real spot diameter would render as a near-invisible dot at typical
// preview scales.
const pdfMinDotRadiusMM = 0.05

// WritePDF renders masks (stroked outlines) and spots (filled discs) onto a
// single page sized to 2*extentMM square, centered at the origin, and
// writes the result to pdfPath. It is grounded on testcases/genpdf/main.go's
// use of document.CreateSinglePage plus a translating CTM to move from
// C-mm's origin-at-center convention to the page's lower-left origin.
func WritePDF(pdfPath string, masks []planner.MaskPolygon, spots []planner.Spot, spotDiameterMM, extentMM float64) error {
	pageSize := &pdf.Rectangle{URx: 2 * extentMM, URy: 2 * extentMM}
	doc, err := document.CreateSinglePage(pdfPath, pageSize, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	doc.Transform(matrix.Identity.Translate(extentMM, extentMM))

	doc.SetStrokeColor(color.DeviceGray(0.2))
	doc.SetLineWidth(0.05)
	for _, m := range masks {
		if len(m.Vertices) < 2 {
			continue
		}
		doc.MoveTo(m.Vertices[0].X, m.Vertices[0].Y)
		for _, v := range m.Vertices[1:] {
			doc.LineTo(v.X, v.Y)
		}
		doc.ClosePath()
	}
	doc.Stroke()

	radius := spotDiameterMM / 2
	if radius < pdfMinDotRadiusMM {
		radius = pdfMinDotRadiusMM
	}
	doc.SetFillColor(color.DeviceGray(0))
	for _, s := range spots {
		drawDisc(doc, s.X, s.Y, radius)
	}
	doc.Fill()

	return doc.Close()
}

// drawDisc appends a Bezier-approximated circle of the given radius,
// centered at (cx, cy), to the page's current path. Reuses the teacher
// testcases package's kappa constant for a cubic circle approximation
// rather than introducing a new curve-fitting routine.
func drawDisc(doc *document.Page, cx, cy, radius float64) {
	const kappa = 0.5522847498307936
	k := radius * kappa
	doc.MoveTo(cx+radius, cy)
	doc.CurveTo(cx+radius, cy-k, cx+k, cy-radius, cx, cy-radius)
	doc.CurveTo(cx-k, cy-radius, cx-radius, cy-k, cx-radius, cy)
	doc.CurveTo(cx-radius, cy+k, cx-k, cy+radius, cx, cy+radius)
	doc.CurveTo(cx+k, cy+radius, cx+radius, cy+k, cx+radius, cy)
	doc.ClosePath()
}
