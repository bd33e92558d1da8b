package planner

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// overlapFilterKDTree is an alternative implementation of the overlap
// filter, built on gonum.org/v1/gonum/spatial/kdtree instead of the
// hand-rolled spatial hash in ordering.go. It exists to cross-check the
// spatial hash against a library-backed nearest-neighbor structure, in the
// spirit of benchmark_test.go's side-by-side comparison of two rasterizer
// fill strategies.
func overlapFilterKDTree(points []Candidate, minDist float64) (accepted []Candidate, overlapCount int) {
	if minDist <= 0 {
		return points, 0
	}
	minDistSq := minDist * minDist

	tree := kdtree.New(kdtree.Points{}, true)
	accepted = make([]Candidate, 0, len(points))

	for _, c := range points {
		pt := kdtree.Point{c.X, c.Y}

		conflict := false
		if tree.Len() > 0 {
			_, distSq := tree.Nearest(pt)
			if distSq < minDistSq {
				conflict = true
			}
		}

		if conflict {
			overlapCount++
			continue
		}

		accepted = append(accepted, c)
		tree.Insert(pt, false)
	}

	return accepted, overlapCount
}

func TestOverlapFilterKDTree_AgreesWithSpatialHash(t *testing.T) {
	minDist := 0.3 * 1.05
	mask := square(0, 0, 10)
	cands := polarCandidates(0, 0, Defaults.ApertureRadiusMM, minDist*1.5, 5, mask, intPtr(1))

	hashAccepted, hashRejected := overlapFilter(cands, minDist)
	kdAccepted, kdRejected := overlapFilterKDTree(cands, minDist)

	if len(hashAccepted) != len(kdAccepted) {
		t.Errorf("accepted counts differ: hash=%d kdtree=%d", len(hashAccepted), len(kdAccepted))
	}
	if hashRejected != kdRejected {
		t.Errorf("rejected counts differ: hash=%d kdtree=%d", hashRejected, kdRejected)
	}

	for i := range hashAccepted {
		for j := i + 1; j < len(hashAccepted); j++ {
			a, b := hashAccepted[i], hashAccepted[j]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < minDist-1e-9 {
				t.Errorf("spatial-hash result still has overlapping pair %v, %v", a, b)
			}
		}
	}
}

func BenchmarkOverlapFilter(b *testing.B) {
	mask := square(0, 0, 20)
	minDist := 0.3 * 1.05

	sizes := []float64{1, 0.5, 0.2}
	for _, spacing := range sizes {
		cands := polarCandidates(0, 0, Defaults.ApertureRadiusMM, spacing, 5, mask, intPtr(1))

		b.Run(fmt.Sprintf("SpatialHash/n=%d", len(cands)), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				overlapFilter(cands, minDist)
			}
		})

		b.Run(fmt.Sprintf("KDTree/n=%d", len(cands)), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				overlapFilterKDTree(cands, minDist)
			}
		})
	}
}
