package planner

import (
	"math"
	"sort"

	"seehuhn.de/go/geom/vec"
)

// selectorSlackSq is the squared-distance slack applied when comparing a
// candidate's distance to min_dist, per spec.md §6 ("selector avoid_xy
// tolerance uses squared distances with 1e-6 mm^2 slack"). It absorbs
// floating-point error at the min_dist boundary so that points placed
// exactly at the enforced spacing are not spuriously rejected.
const selectorSlackSq = 1e-6

// selectGreedy walks candidates sorted by (|t| ascending, theta ascending)
// — center-outward — and accepts a candidate iff its distance to every
// previously accepted point in this pass, and to every point in avoidXY,
// is >= minDist. It returns the accepted candidates in acceptance order and
// the updated avoid list (avoidXY with this pass's acceptances appended),
// ready to be threaded into the next mask's selection (spec.md §4.4).
func selectGreedy(candidates []Candidate, minDist float64, avoidXY []vec.Vec2) (accepted []Candidate, nextAvoid []vec.Vec2) {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		ai, aj := math.Abs(sorted[i].TMm), math.Abs(sorted[j].TMm)
		if ai != aj {
			return ai < aj
		}
		return sorted[i].ThetaDeg < sorted[j].ThetaDeg
	})

	minDistSq := minDist * minDist

	accepted = make([]Candidate, 0, len(sorted))
	placed := make([]vec.Vec2, 0, len(sorted))

	farEnough := func(p vec.Vec2, others []vec.Vec2) bool {
		for _, o := range others {
			dx, dy := p.X-o.X, p.Y-o.Y
			if dx*dx+dy*dy < minDistSq-selectorSlackSq {
				return false
			}
		}
		return true
	}

	for _, c := range sorted {
		p := c.point()
		if !farEnough(p, placed) || !farEnough(p, avoidXY) {
			continue
		}
		accepted = append(accepted, c)
		placed = append(placed, p)
	}

	nextAvoid = make([]vec.Vec2, 0, len(avoidXY)+len(placed))
	nextAvoid = append(nextAvoid, avoidXY...)
	nextAvoid = append(nextAvoid, placed...)
	return accepted, nextAvoid
}
