package planner

import (
	"math"
	"sort"

	"seehuhn.de/go/geom/vec"
)

// polyEdge is a single polygon edge in the same spirit as raster.go's edge
// type: a line segment plus whatever precomputed quantity the consumer
// needs. Unlike the rasterizer's device-space edge (which precomputes
// dx/dy for scanline intercepts), a mask edge is walked for ray-casting and
// parametric line intersection, so it keeps both endpoints untransformed.
type polyEdge struct {
	a, b vec.Vec2
}

func edgesOf(vertices []vec.Vec2) []polyEdge {
	n := len(vertices)
	if n < 2 {
		return nil
	}
	edges := make([]polyEdge, n)
	for i := range vertices {
		edges[i] = polyEdge{a: vertices[i], b: vertices[(i+1)%n]}
	}
	return edges
}

// ShoelaceArea returns the absolute polygon area via the shoelace formula.
// Fewer than 3 vertices gives zero. Orientation (CW vs CCW) does not affect
// the result.
func ShoelaceArea(vertices []vec.Vec2) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// PointInPolygon reports whether p lies inside vertices using a horizontal
// ray-cast, counting parity of edge crossings. The rule applied at each
// edge is `min(y1,y2) < py <= max(y1,y2)`, matching the boundary convention
// inherited from the original implementation (spec.md §9 open question):
// points exactly on a horizontal edge are not special-cased, so this rule
// must not change without updating the property in spec.md §8.3.
func PointInPolygon(p vec.Vec2, vertices []vec.Vec2) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	inside := false
	x1, y1 := vertices[0].X, vertices[0].Y
	for i := 1; i <= n; i++ {
		v2 := vertices[i%n]
		x2, y2 := v2.X, v2.Y

		yLo, yHi := y1, y2
		if yLo > yHi {
			yLo, yHi = yHi, yLo
		}
		xHi := x1
		if x2 > xHi {
			xHi = x2
		}

		if yLo < p.Y && p.Y <= yHi && p.X <= xHi {
			var xIntersect float64
			if y1 != y2 {
				xIntersect = (p.Y-y1)*(x2-x1)/(y2-y1) + x1
			}
			if y1 == y2 || p.X <= xIntersect {
				inside = !inside
			}
		}
		x1, y1 = x2, y2
	}
	return inside
}

// lineEdgeDenomEps is the minimum denominator magnitude for the
// line/edge parametric solve in lineEdgeIntersection to be considered
// non-degenerate (near-parallel lines are rejected rather than producing
// an unstable t value).
const lineEdgeDenomEps = 1e-12

// lineEdgeIntersection solves for the parametric offset t along the
// diameter line (cx + t*cos(theta), cy + t*sin(theta)) at which it crosses
// edge e. It returns ok=false if the edge is parallel to the line (|denom|
// < 1e-12) or if the crossing falls outside the edge's own parameter range
// s in [0, 1].
func lineEdgeIntersection(cx, cy, cosT, sinT float64, e polyEdge) (t float64, ok bool) {
	ex := e.b.X - e.a.X
	ey := e.b.Y - e.a.Y

	denom := cosT*ey - sinT*ex
	if denom > -lineEdgeDenomEps && denom < lineEdgeDenomEps {
		return 0, false
	}

	tVal := ((cy-e.a.Y)*ex - (cx-e.a.X)*ey) / denom

	var s float64
	if ex > lineEdgeDenomEps || ex < -lineEdgeDenomEps {
		s = ((cx - e.a.X) + tVal*cosT) / ex
	} else {
		s = ((cy - e.a.Y) + tVal*sinT) / ey
	}
	if s < 0 || s > 1 {
		return 0, false
	}
	return tVal, true
}

// LinePolygonClip intersects the full diameter line at angle thetaDeg
// through (cx, cy) with the polygon's edges, returning the sorted,
// deduplicated clip segments [t_lo, t_hi] whose midpoints lie inside the
// polygon. Segments are returned in ascending t order.
func LinePolygonClip(cx, cy, thetaDeg float64, vertices []vec.Vec2) [][2]float64 {
	rad := thetaDeg * math.Pi / 180
	cosT, sinT := math.Cos(rad), math.Sin(rad)

	var ts []float64
	for _, e := range edgesOf(vertices) {
		if t, ok := lineEdgeIntersection(cx, cy, cosT, sinT, e); ok {
			ts = append(ts, t)
		}
	}
	if len(ts) < 2 {
		return nil
	}
	sort.Float64s(ts)
	ts = dedupeSorted(ts, 1e-9)

	var segments [][2]float64
	for i := 0; i+1 < len(ts); i++ {
		lo, hi := ts[i], ts[i+1]
		mid := (lo + hi) / 2
		midPt := vec.Vec2{X: cx + mid*cosT, Y: cy + mid*sinT}
		if PointInPolygon(midPt, vertices) {
			segments = append(segments, [2]float64{lo, hi})
		}
	}
	return segments
}

func dedupeSorted(ts []float64, eps float64) []float64 {
	if len(ts) == 0 {
		return ts
	}
	out := ts[:1]
	for _, v := range ts[1:] {
		if v-out[len(out)-1] > eps {
			out = append(out, v)
		}
	}
	return out
}
