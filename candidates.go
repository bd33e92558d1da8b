package planner

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Candidate is a prospective spot position produced by the candidate
// builder (C3), before the selector (C4) decides whether to accept it.
type Candidate struct {
	X, Y     float64
	ThetaDeg float64
	TMm      float64
	MaskID   *int
}

func (c Candidate) point() vec.Vec2 { return vec.Vec2{X: c.X, Y: c.Y} }

// polarCandidates enumerates candidates on concentric rings of spacing s
// around (cx, cy), out to radius R, sampling angleStepDeg-separated
// diameters per ring with the chord-correcting subsample described in
// spec.md §4.3. If mask is non-nil, candidates outside the mask polygon are
// dropped (ray-cast test); maskID tags the surviving candidates.
func polarCandidates(cx, cy, radiusR, spacing, angleStepDeg float64, mask []vec.Vec2, maskID *int) []Candidate {
	if spacing <= 0 || angleStepDeg <= 0 {
		return nil
	}
	n := int(math.Floor(180 / angleStepDeg))
	if n < 1 {
		n = 1
	}

	var out []Candidate
	appendIf := func(x, y, theta, t float64) {
		if mask != nil {
			if !PointInPolygon(vec.Vec2{X: x, Y: y}, mask) {
				return
			}
		}
		out = append(out, Candidate{X: x, Y: y, ThetaDeg: theta, TMm: t, MaskID: maskID})
	}

	numRings := int(math.Floor(radiusR/spacing)) + 1
	for ringIdx := 0; ringIdx <= numRings; ringIdx++ {
		r := float64(ringIdx) * spacing
		if r > radiusR+1e-9 {
			break
		}

		if ringIdx == 0 {
			appendIf(cx, cy, 0, 0)
			continue
		}

		// Chord length at this ring for adjacent sampled diameters is
		// approximately r*angleStepDeg (in radians); skip_k keeps the
		// tangential spacing close to s by only using every skip_k-th
		// diameter. The asin argument is clamped to 1 so that very small
		// rings (s >= 2r) degrade gracefully to the single most-spread-out
		// diameter per ring rather than a domain error.
		arg := spacing / (2 * r)
		if arg > 1 {
			arg = 1
		}
		skipAngleDeg := 2 * math.Asin(arg) * 180 / math.Pi
		skipK := int(math.Ceil(skipAngleDeg / angleStepDeg))
		if skipK < 1 {
			skipK = 1
		}
		if skipK > n {
			skipK = n
		}

		stagger := ringIdx % skipK
		for k := stagger; k < n; k += skipK {
			theta := float64(k) * angleStepDeg
			rad := theta * math.Pi / 180
			cosT, sinT := math.Cos(rad), math.Sin(rad)

			appendIf(cx+r*cosT, cy+r*sinT, theta, r)
			appendIf(cx-r*cosT, cy-r*sinT, theta, -r)
		}
	}
	return out
}

// axisGridCandidates expands an infinite lattice of step s around (cx, cy)
// and keeps the points within radiusR of center. No mask filtering happens
// here: simple mode (spec.md §4.2) keeps a point if it lies inside *any*
// kept mask, which the caller resolves after generation so it can tag the
// first matching mask by input order.
func axisGridCandidates(cx, cy, radiusR, spacing float64) []vec.Vec2 {
	if spacing <= 0 {
		return nil
	}
	steps := int(math.Ceil(radiusR/spacing)) + 1

	var out []vec.Vec2
	for i := -steps; i <= steps; i++ {
		x := cx + float64(i)*spacing
		for j := -steps; j <= steps; j++ {
			y := cy + float64(j)*spacing
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radiusR*radiusR+1e-9 {
				out = append(out, vec.Vec2{X: x, Y: y})
			}
		}
	}
	return out
}
