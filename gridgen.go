package planner

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Aperture selects the fixture shape used by GenerateStandaloneGrid.
type Aperture string

const (
	// ApertureSimple is a 12x12mm square aperture.
	ApertureSimple Aperture = "simple"
	// ApertureAdvanced is the full circular treatment aperture.
	ApertureAdvanced Aperture = "advanced"
)

// simpleApertureSideMM is the edge length of the standalone simple aperture
// (spec.md §4.9); its valid region is a square inset by the spot radius on
// every side, centered on (6, 6) in C-mm.
const simpleApertureSideMM = 12.0

// gridTunerIterations and gridTunerSpacingLo/Hi bound the binary search used
// by both standalone apertures when a target coverage percentage (rather
// than an explicit spacing) is given. These mirror the 25-iteration search
// over [0.3, 5] mm the original grid-generation service uses for unison
// spacing, which is distinct from the 18-iteration per-mask tuner in
// tuner.go.
const (
	gridTunerIterations = 25
	gridTunerSpacingLo  = 0.3
	gridTunerSpacingHi  = 5.0
)

// GenerateStandaloneGrid builds a grid over a single named aperture rather
// than a set of user masks (spec.md §4.9). Exactly one of targetCoveragePct
// or axisDistanceMM must be supplied for the simple aperture; angleStepDeg
// is required for the advanced aperture.
func GenerateStandaloneGrid(aperture Aperture, targetCoveragePct, axisDistanceMM *float64, angleStepDeg *float64) (PlanResult, error) {
	switch aperture {
	case ApertureSimple:
		if (targetCoveragePct == nil) == (axisDistanceMM == nil) {
			return PlanResult{}, invalidArgument("target_coverage_pct/axis_distance_mm", "exactly one of target_coverage_pct or axis_distance_mm is required for the simple aperture")
		}
		return generateSimpleAperture(targetCoveragePct, axisDistanceMM), nil
	case ApertureAdvanced:
		if angleStepDeg == nil {
			return PlanResult{}, invalidArgument("angle_step_deg", "angle_step_deg is required for the advanced aperture")
		}
		pct := Defaults.TargetCoverageMin
		if targetCoveragePct != nil {
			pct = *targetCoveragePct
		}
		return generateAdvancedAperture(*angleStepDeg, pct), nil
	default:
		return PlanResult{}, invalidArgument("aperture", fmt.Sprintf("unknown aperture %q", aperture))
	}
}

// generateSimpleAperture fills the 12x12mm square with an axis-aligned
// lattice, either at a caller-given spacing or at the spacing a 25-iteration
// binary search finds closest to targetCoveragePct, then centers the
// lattice's own bounding box over (6, 6) before ordering it boustrophedon
// (spec.md §4.9, grounded on _generate_simple_grid_with_spacing).
func generateSimpleAperture(targetCoveragePct, axisDistanceMM *float64) PlanResult {
	r := Defaults.SpotDiameterMM / 2

	if axisDistanceMM != nil {
		return standaloneResult(simpleGridAtSpacing(*axisDistanceMM, r))
	}

	target := targetSpotCount(*targetCoveragePct, simpleApertureSideMM*simpleApertureSideMM, Defaults.SpotDiameterMM)

	lo, hi := gridTunerSpacingLo, gridTunerSpacingHi
	bestDiff := math.MaxInt64
	var bestSpots []vec.Vec2

	for i := 0; i < gridTunerIterations; i++ {
		mid := (lo + hi) / 2
		spots := simpleGridAtSpacing(mid, r)

		diff := len(spots) - target
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestSpots = spots
		}

		if len(spots) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return standaloneResult(bestSpots)
}

// simpleGridAtSpacing expands the square lattice at the given spacing over
// the valid region [r, side-r]^2, then nudges it so its own bounding-box
// center lands as close to (side/2, side/2) as the valid region allows.
func simpleGridAtSpacing(spacing, r float64) []vec.Vec2 {
	side := simpleApertureSideMM
	xMin, xMax := r, side-r
	yMin, yMax := r, side-r
	if spacing <= 0 || xMax < xMin || yMax < yMin {
		return nil
	}

	var xs, ys []float64
	for x := xMin; x <= xMax+1e-9; x += spacing {
		xs = append(xs, x)
	}
	for y := yMin; y <= yMax+1e-9; y += spacing {
		ys = append(ys, y)
	}
	if len(xs) == 0 || len(ys) == 0 {
		return nil
	}

	bbMinX, bbMaxX := xs[0], xs[len(xs)-1]
	bbMinY, bbMaxY := ys[0], ys[len(ys)-1]
	bbCx, bbCy := (bbMinX+bbMaxX)/2, (bbMinY+bbMaxY)/2

	target := side / 2
	offsetX := clamp(target-bbCx, xMin-bbMinX, xMax-bbMaxX)
	offsetY := clamp(target-bbCy, yMin-bbMinY, yMax-bbMaxY)

	points := make([]vec.Vec2, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			points = append(points, vec.Vec2{X: x + offsetX, Y: y + offsetY})
		}
	}
	return points
}

// simpleApertureMask is the 12x12mm square boundary used as the included
// mask when routing the standalone simple aperture through finishPlan, so
// its PlanResult gets the same overlap/outside/plan_valid accounting as
// every other GeneratePlanByMode result (spec.md §3 invariants 1-5).
func simpleApertureMask() []vec.Vec2 {
	side := simpleApertureSideMM
	return []vec.Vec2{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}}
}

// standaloneResult orders a raw point set boustrophedon about the simple
// aperture's fixed center (6, 6), tags it against the square aperture
// boundary, and routes it through finishPlan like every other aperture so
// overlap/outside counts and plan_valid are never skipped. The simple
// aperture has no user mask, so every spot's MaskID stays nil.
func standaloneResult(points []vec.Vec2) PlanResult {
	cx, cy := simpleApertureSideMM/2, simpleApertureSideMM/2

	cands := make([]Candidate, len(points))
	for i, p := range points {
		dx, dy := p.X-cx, p.Y-cy
		cands[i] = Candidate{
			X: p.X, Y: p.Y,
			ThetaDeg: math.Atan2(dy, dx) * 180 / math.Pi,
			TMm:      math.Hypot(dx, dy),
		}
	}
	ordered := boustrophedonOrder(cands)
	spots := candidatesToSpots(ordered)

	return finishPlan(spots, []MaskPolygon{{ID: 0, Vertices: simpleApertureMask()}}, false)
}

// circlePolygon approximates a circle of the given radius centered at
// (cx, cy) with an n-vertex regular polygon (spec.md §4.9 uses 360
// vertices, matching the original's _circle_polygon).
func circlePolygon(cx, cy, radius float64, n int) []vec.Vec2 {
	verts := make([]vec.Vec2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = vec.Vec2{X: cx + radius*math.Cos(theta), Y: cy + radius*math.Sin(theta)}
	}
	return verts
}

// circlePolygonVertices is the vertex count used for the advanced aperture's
// full-circle mask approximation.
const circlePolygonVertices = 360

// generateAdvancedAperture treats the full circular aperture as a single
// mask and tunes ONE global spacing across it (spec.md §4.9's
// use_unison_grid=true path), rather than the per-mask regime
// GeneratePlanByMode's advanced branch uses. This mirrors the original
// generate_grid_advanced, which always forces the unison path because there
// is exactly one mask to plan against; an explicit per-mask tuner would
// degenerate to the same single binary search anyway, so the standalone
// unison search exists mainly to document that forcing and to keep this
// path's iteration budget aligned with the grid-generation search
// (gridTunerIterations/gridTunerSpacingLo/Hi) rather than the 18-iteration
// per-mask tuner in tuner.go.
func generateAdvancedAperture(angleStepDeg, targetCoveragePct float64) PlanResult {
	cx, cy := 0.0, 0.0
	radius := Defaults.ApertureRadiusMM
	mask := circlePolygon(cx, cy, radius, circlePolygonVertices)
	minDist := minDistForDiameter(Defaults.SpotDiameterMM)
	area := ShoelaceArea(mask)
	target := targetSpotCount(targetCoveragePct, area, Defaults.SpotDiameterMM)

	lo, hi := gridTunerSpacingLo, gridTunerSpacingHi
	bestDiff := math.MaxInt64
	var bestAccepted []Candidate

	for i := 0; i < gridTunerIterations; i++ {
		mid := (lo + hi) / 2
		if mid < minDist {
			mid = minDist
		}

		candidates := polarCandidates(cx, cy, radius, mid, angleStepDeg, mask, nil)
		ordered := sortAdvancedEmissionOrder(candidates, angleStepDeg)
		accepted, _ := overlapFilter(ordered, minDist)

		diff := len(accepted) - target
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestAccepted = accepted
		}

		if len(accepted) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	spots := candidatesToSpots(bestAccepted)
	return finishPlan(spots, []MaskPolygon{{ID: 0, Vertices: mask}}, false)
}
