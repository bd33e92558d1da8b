package planner

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"seehuhn.de/go/geom/vec"
)

// GeneratePlanByMode is the plan dispatcher (C7, spec.md §4.1): it filters
// masks, derives the plan center, branches on mode, and computes the
// coverage metrics and validity flag over the resulting spot sequence.
//
// masks and their vertices must already be in C-mm (+y up); callers convert
// at the boundary (see TLToC / CToTL). targetCoveragePct is clamped to
// [3, 20]; coveragePerMask is an optional override keyed by either the
// decimal string of a mask's ID or its label, falling back to
// targetCoveragePct when absent. imageWidthMM is accepted for interface
// parity with the original grid/iteration services but, like in the system
// this was distilled from, does not otherwise influence C-mm computation.
func GeneratePlanByMode(masks []MaskPolygon, targetCoveragePct float64, coveragePerMask map[string]float64, imageWidthMM float64, mode Mode, gridSpacingMM *float64) (PlanResult, error) {
	switch mode {
	case ModeSimple, ModeAdvanced:
	default:
		return PlanResult{}, invalidArgument("mode", fmt.Sprintf("unknown mode %q", mode))
	}

	if len(masks) == 0 {
		return PlanResult{}, nil
	}

	included, ok := filterMasks(masks)
	if !ok {
		return PlanResult{}, nil
	}

	cx, cy, fallbackUsed := planCenter(included)

	var spots []Spot
	switch mode {
	case ModeSimple:
		spacing := Defaults.SimpleGridSpacingMM
		if gridSpacingMM != nil {
			spacing = *gridSpacingMM
		}
		spots = planSimple(included, cx, cy, spacing)
	case ModeAdvanced:
		spots = planAdvanced(included, cx, cy, targetCoveragePct, coveragePerMask)
	}

	return finishPlan(spots, included, fallbackUsed), nil
}

// filterMasks applies the area-floor rules of spec.md §4.1: discard
// non-positive-area masks, keep only masks >= 0.5% of the aperture area,
// then (if anything remains with positive total area) drop masks smaller
// than 1% of that kept-mask total. If that leaves nothing, fall back to
// every mask with positive area; if even that is empty, ok is false.
func filterMasks(masks []MaskPolygon) (kept []MaskPolygon, ok bool) {
	apertureArea := math.Pi * Defaults.ApertureRadiusMM * Defaults.ApertureRadiusMM

	var positive []MaskPolygon
	for _, m := range masks {
		if ShoelaceArea(m.Vertices) > 0 {
			positive = append(positive, m)
		}
	}
	if len(positive) == 0 {
		return nil, false
	}

	var aboveFloor []MaskPolygon
	for _, m := range positive {
		area := ShoelaceArea(m.Vertices)
		if area/apertureArea >= Defaults.MaskAreaFloorPct {
			aboveFloor = append(aboveFloor, m)
		}
	}

	kept = aboveFloor
	var totalArea float64
	for _, m := range kept {
		totalArea += ShoelaceArea(m.Vertices)
	}
	if totalArea > 0 {
		var relative []MaskPolygon
		for _, m := range kept {
			if ShoelaceArea(m.Vertices)/totalArea >= Defaults.MaskAreaFloorRelative {
				relative = append(relative, m)
			}
		}
		kept = relative
	}

	if len(kept) == 0 {
		kept = positive
	}
	if len(kept) == 0 {
		return nil, false
	}
	return kept, true
}

// planCenter computes the arithmetic mean of every kept mask's vertices
// (spec.md §4.1: "not area-weighted"), clamping to the origin when the
// result falls outside a +/-2R bounding box.
func planCenter(masks []MaskPolygon) (cx, cy float64, fallbackUsed bool) {
	var xs, ys []float64
	for _, m := range masks {
		for _, v := range m.Vertices {
			xs = append(xs, v.X)
			ys = append(ys, v.Y)
		}
	}
	if len(xs) == 0 {
		return 0, 0, true
	}

	cx = stat.Mean(xs, nil)
	cy = stat.Mean(ys, nil)

	bound := 2 * Defaults.ApertureRadiusMM
	if math.Abs(cx) > bound || math.Abs(cy) > bound {
		return 0, 0, true
	}
	return cx, cy, false
}

// planSimple implements spec.md §4.2: expand an axis-aligned lattice of
// step spacing around the plan center, keep points within the aperture
// that fall inside at least one kept mask (tagging the first match by
// input order), and order them boustrophedon by row.
func planSimple(masks []MaskPolygon, cx, cy, spacing float64) []Spot {
	lattice := axisGridCandidates(cx, cy, Defaults.ApertureRadiusMM, spacing)

	var tagged []Candidate
	for _, p := range lattice {
		var maskID *int
		for _, m := range masks {
			if PointInPolygon(p, m.Vertices) {
				id := m.ID
				maskID = &id
				break
			}
		}
		if maskID == nil {
			continue
		}
		dx, dy := p.X-cx, p.Y-cy
		tagged = append(tagged, Candidate{
			X: p.X, Y: p.Y,
			ThetaDeg: math.Atan2(dy, dx) * 180 / math.Pi,
			TMm:      math.Hypot(dx, dy),
			MaskID:   maskID,
		})
	}

	ordered := boustrophedonOrder(tagged)
	return candidatesToSpots(ordered)
}

// planAdvanced implements spec.md §4.1's advanced branch and §4.3-§4.5:
// for each kept mask, in input order, tune a per-mask spacing and run the
// greedy selector, threading avoid_xy serially across masks so later masks
// respect earlier masks' accepted points. The concatenated output is then
// globally emission-ordered and overlap-filtered (§4.6).
func planAdvanced(masks []MaskPolygon, cx, cy, targetCoveragePct float64, coveragePerMask map[string]float64) []Spot {
	minDist := minDistForDiameter(Defaults.SpotDiameterMM)

	var all []Candidate
	var avoidXY []vec.Vec2
	for _, m := range masks {
		pct := resolveCoveragePct(m, targetCoveragePct, coveragePerMask)
		id := m.ID
		accepted, nextAvoid := tuneSpacing(cx, cy, Defaults.ApertureRadiusMM, m.Vertices, &id, pct, Defaults.SpotDiameterMM, Defaults.AngleStepDeg, minDist, avoidXY)
		all = append(all, accepted...)
		avoidXY = nextAvoid
	}

	ordered := sortAdvancedEmissionOrder(all, Defaults.AngleStepDeg)
	filtered, _ := overlapFilter(ordered, minDist)
	return candidatesToSpots(filtered)
}

// resolveCoveragePct looks up a per-mask coverage override by the decimal
// form of the mask id or by its label, falling back to targetCoveragePct,
// then clamps to [3, 20] (spec.md §4.1).
func resolveCoveragePct(m MaskPolygon, targetCoveragePct float64, coveragePerMask map[string]float64) float64 {
	pct := targetCoveragePct
	if coveragePerMask != nil {
		idKey := strconv.Itoa(m.ID)
		if v, ok := coveragePerMask[idKey]; ok {
			pct = v
		} else if v, ok := coveragePerMask[m.Label]; ok && m.Label != "" {
			pct = v
		}
	}
	return clamp(pct, Defaults.TargetCoverageMin, Defaults.TargetCoverageMax)
}

func candidatesToSpots(cands []Candidate) []Spot {
	spots := make([]Spot, len(cands))
	for i, c := range cands {
		spots[i] = Spot{
			X: c.X, Y: c.Y,
			ThetaDeg:    c.ThetaDeg,
			TMm:         c.TMm,
			MaskID:      c.MaskID,
			ComponentID: c.MaskID,
		}
	}
	return spots
}

// countOverlapViolations is the post-hoc invariant-2 check (spec.md §3
// invariant 2, §8 property 2): it scans every pair of spots and counts
// those closer than minDist - 1e-6, independent of whatever overlap filter
// produced the list. On a correctly filtered list this is always zero; it
// exists to surface filter bugs rather than to do the filtering itself.
func countOverlapViolations(spots []Spot, minDist float64) int {
	count := 0
	threshold := minDist - 1e-6
	for i := range spots {
		for j := i + 1; j < len(spots); j++ {
			dx := spots[i].X - spots[j].X
			dy := spots[i].Y - spots[j].Y
			if math.Hypot(dx, dy) < threshold {
				count++
			}
		}
	}
	return count
}

// finishPlan computes the metrics and validity flag shared by every
// dispatcher branch (spec.md §4.1 "Metrics", §3 invariant 5).
func finishPlan(spots []Spot, includedMasks []MaskPolygon, fallbackUsed bool) PlanResult {
	minDist := minDistForDiameter(Defaults.SpotDiameterMM)

	outside := 0
	for _, s := range spots {
		inAny := false
		for _, m := range includedMasks {
			if PointInPolygon(vec.Vec2{X: s.X, Y: s.Y}, m.Vertices) {
				inAny = true
				break
			}
		}
		if !inAny {
			outside++
		}
	}

	overlap := countOverlapViolations(spots, minDist)

	var totalMaskArea float64
	for _, m := range includedMasks {
		totalMaskArea += ShoelaceArea(m.Vertices)
	}

	n := len(spots)
	var achieved *float64
	if totalMaskArea > 0 {
		spotArea := math.Pi * (Defaults.SpotDiameterMM / 2) * (Defaults.SpotDiameterMM / 2)
		v := 100 * float64(n) * spotArea / totalMaskArea
		achieved = &v
	}

	planValid := n > 0 && float64(outside)/float64(n) <= 0.05 && overlap == 0

	return PlanResult{
		Spots:                 spots,
		AchievedCoveragePct:   achieved,
		SpotsCount:            n,
		SpotsOutsideMaskCount: outside,
		OverlapCount:          overlap,
		PlanValid:             planValid,
		FallbackUsed:          fallbackUsed,
	}
}
