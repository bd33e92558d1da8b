package planner

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Two coordinate frames are used across the boundary of this package:
//
//   - TL-mm: origin top-left, +y down. Used by storage and the UI.
//   - C-mm:  origin at the image center, +y up. Used by the planner.
//
// The forward map is x_c = x_tl - W/2, y_c = H/2 - y_tl; its inverse is the
// algebraic dual x_tl = x_c + W/2, y_tl = H/2 - y_c. Both are expressed as
// seehuhn.de/go/geom/matrix.Matrix affine transforms so that the same
// CTM-application convention used throughout the geometry kernel
// (x' = a*x + c*y + e, y' = b*x + d*y + f) also drives coordinate
// conversion; there is nothing polynomial or projective about this map, an
// affine 2x3 is the natural (and only) representation the teacher's matrix
// package offers, and reusing it avoids a bespoke pair-of-floats type.

// TLToCMatrix returns the matrix mapping TL-mm to C-mm for an image of the
// given width/height in millimetres.
func TLToCMatrix(widthMM, heightMM float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, -widthMM / 2, heightMM / 2}
}

// CToTLMatrix returns the matrix mapping C-mm back to TL-mm; it is the
// algebraic dual of TLToCMatrix for the same image dimensions.
func CToTLMatrix(widthMM, heightMM float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, widthMM / 2, heightMM / 2}
}

// applyAffine evaluates m at p using the same convention as the rasterizer
// CTM: x' = a*x + c*y + e, y' = b*x + d*y + f.
func applyAffine(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TLToC converts a point from TL-mm (+y down) to C-mm (+y up).
func TLToC(p vec.Vec2, widthMM, heightMM float64) vec.Vec2 {
	return applyAffine(TLToCMatrix(widthMM, heightMM), p)
}

// CToTL converts a point from C-mm (+y up) back to TL-mm (+y down). It is
// the exact algebraic inverse of TLToC: round-tripping through both
// directions is identity to within 1e-9mm (spec.md §4.8, §8 property 7).
func CToTL(p vec.Vec2, widthMM, heightMM float64) vec.Vec2 {
	return applyAffine(CToTLMatrix(widthMM, heightMM), p)
}

// TLToCPolygon converts every vertex of a mask's TL-mm polygon into C-mm.
func TLToCPolygon(vertices []vec.Vec2, widthMM, heightMM float64) []vec.Vec2 {
	out := make([]vec.Vec2, len(vertices))
	m := TLToCMatrix(widthMM, heightMM)
	for i, v := range vertices {
		out[i] = applyAffine(m, v)
	}
	return out
}

// CToTLPolygon is the inverse of TLToCPolygon.
func CToTLPolygon(vertices []vec.Vec2, widthMM, heightMM float64) []vec.Vec2 {
	out := make([]vec.Vec2, len(vertices))
	m := CToTLMatrix(widthMM, heightMM)
	for i, v := range vertices {
		out[i] = applyAffine(m, v)
	}
	return out
}
