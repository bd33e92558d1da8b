package planner

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// tunerMaxIterations bounds the per-mask binary search (spec.md §4.5).
const tunerMaxIterations = 18

// tunerSpacingHi is the initial upper bound of the spacing search interval.
const tunerSpacingHi = 5.0

// targetSpotCount converts a coverage percentage and mask area into the
// integer spot count the spacing tuner aims for: max(1, round(coverage *
// area / spot_area)).
func targetSpotCount(coveragePct, maskArea, spotDiameter float64) int {
	spotArea := math.Pi * (spotDiameter / 2) * (spotDiameter / 2)
	n := int(math.Round((coveragePct / 100) * maskArea / spotArea))
	if n < 1 {
		n = 1
	}
	return n
}

// tuneSpacing performs the bounded binary search over ring spacing
// described in spec.md §4.5: build candidates with the polar builder (C3)
// at the midpoint spacing, run the greedy selector (C4), and keep the best
// (closest-to-target) result ever seen rather than the last one tried,
// since spot count is integer-valued and not strictly monotone in spacing.
func tuneSpacing(cx, cy, radiusR float64, mask []vec.Vec2, maskID *int, coveragePct, spotDiameter, angleStepDeg, minDist float64, avoidXY []vec.Vec2) (accepted []Candidate, nextAvoid []vec.Vec2) {
	area := ShoelaceArea(mask)
	target := targetSpotCount(coveragePct, area, spotDiameter)

	lo, hi := minDist, tunerSpacingHi
	if hi < lo {
		hi = lo
	}

	bestDiff := math.MaxInt64
	var bestAccepted []Candidate
	var bestAvoid []vec.Vec2

	for i := 0; i < tunerMaxIterations; i++ {
		mid := (lo + hi) / 2
		if mid < minDist {
			mid = minDist
		}

		candidates := polarCandidates(cx, cy, radiusR, mid, angleStepDeg, mask, maskID)
		sel, nextA := selectGreedy(candidates, minDist, avoidXY)

		diff := len(sel) - target
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestAccepted = sel
			bestAvoid = nextA
		}

		if len(sel) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	if bestAccepted == nil {
		bestAccepted = []Candidate{}
		bestAvoid = avoidXY
	}
	return bestAccepted, bestAvoid
}
