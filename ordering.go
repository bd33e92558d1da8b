package planner

import (
	"math"
	"sort"
)

// emissionKey computes (thetaK, tSort) for a candidate as described in
// spec.md §4.6: thetaK buckets the angle into Δθ-wide steps, and tSort
// flips the sign of t on odd buckets so that the carriage sweeps a full
// diameter in one direction, the rotational stage steps by Δθ, and the
// carriage sweeps back — a snake traversal.
func emissionKey(c Candidate, angleStepDeg float64) (thetaK int, tSort float64) {
	thetaK = int(math.Round(c.ThetaDeg / angleStepDeg))
	if thetaK%2 == 0 {
		return thetaK, c.TMm
	}
	return thetaK, -c.TMm
}

// sortAdvancedEmissionOrder returns points sorted into machine-visit order
// for advanced/polar plans (spec.md §4.6). The input is not mutated.
func sortAdvancedEmissionOrder(points []Candidate, angleStepDeg float64) []Candidate {
	out := make([]Candidate, len(points))
	copy(out, points)

	keys := make([][2]float64, len(out))
	for i, c := range out {
		thetaK, tSort := emissionKey(c, angleStepDeg)
		keys[i] = [2]float64{float64(thetaK), tSort}
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := keys[idx[i]], keys[idx[j]]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})

	sorted := make([]Candidate, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}

// spatialHashCell is a 2D integer grid cell index.
type spatialHashCell struct{ cx, cy int }

// overlapFilter applies the spatial-hash overlap filter of spec.md §4.6:
// walking points in their given (already emission-ordered) sequence,
// accept a point iff no previously accepted point lies within minDist,
// using a grid of cell size minDist and inspecting the 3x3 neighborhood.
// This preserves emission order and guarantees invariant 2 on the output.
func overlapFilter(points []Candidate, minDist float64) (accepted []Candidate, overlapCount int) {
	if minDist <= 0 {
		return points, 0
	}
	minDistSq := minDist * minDist

	grid := make(map[spatialHashCell][]int) // cell -> indices into accepted
	accepted = make([]Candidate, 0, len(points))

	cellOf := func(x, y float64) spatialHashCell {
		return spatialHashCell{
			cx: int(math.Floor(x / minDist)),
			cy: int(math.Floor(y / minDist)),
		}
	}

	for _, c := range points {
		cell := cellOf(c.X, c.Y)

		conflict := false
		for dx := -1; dx <= 1 && !conflict; dx++ {
			for dy := -1; dy <= 1 && !conflict; dy++ {
				neighbor := spatialHashCell{cx: cell.cx + dx, cy: cell.cy + dy}
				for _, ai := range grid[neighbor] {
					o := accepted[ai]
					ddx, ddy := c.X-o.X, c.Y-o.Y
					if ddx*ddx+ddy*ddy < minDistSq {
						conflict = true
						break
					}
				}
			}
		}

		if conflict {
			overlapCount++
			continue
		}

		accepted = append(accepted, c)
		grid[cell] = append(grid[cell], len(accepted)-1)
	}

	return accepted, overlapCount
}

// boustrophedonRowTolerance groups axis-grid points into rows: two points
// belong to the same row if their y values differ by no more than this many
// millimetres, absorbing floating point drift from repeated center-relative
// addition.
const boustrophedonRowTolerance = 1e-6

// boustrophedonOrder sorts simple-mode grid points into serpentine
// row-major order (spec.md §4.2): rows by descending y (top row first);
// within row k, x ascending if k is even else descending.
func boustrophedonOrder(points []Candidate) []Candidate {
	out := make([]Candidate, len(points))
	copy(out, points)

	sort.SliceStable(out, func(i, j int) bool {
		if math.Abs(out[i].Y-out[j].Y) > boustrophedonRowTolerance {
			return out[i].Y > out[j].Y
		}
		return out[i].X < out[j].X
	})

	// Re-pass to flip x-order on odd rows, now that rows are grouped.
	result := make([]Candidate, 0, len(out))
	rowStart := 0
	rowIndex := 0
	flushRow := func(end int) {
		row := out[rowStart:end]
		if rowIndex%2 == 1 {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		result = append(result, row...)
		rowIndex++
	}
	for i := 1; i <= len(out); i++ {
		if i == len(out) || math.Abs(out[i].Y-out[rowStart].Y) > boustrophedonRowTolerance {
			flushRow(i)
			rowStart = i
		}
	}
	return result
}
