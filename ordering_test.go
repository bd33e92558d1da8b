package planner

import (
	"math"
	"testing"
)

func TestSortAdvancedEmissionOrder_SnakeTraversal(t *testing.T) {
	points := []Candidate{
		{ThetaDeg: 5, TMm: 1},
		{ThetaDeg: 0, TMm: -1},
		{ThetaDeg: 0, TMm: 1},
		{ThetaDeg: 5, TMm: -1},
	}
	sorted := sortAdvancedEmissionOrder(points, 5)

	// bucket 0 (even) ascends by t, bucket 1 (odd) descends by t.
	want := []float64{-1, 1, 1, -1}
	for i, s := range sorted {
		if s.TMm != want[i] {
			t.Errorf("sorted[%d].TMm = %v, want %v (full: %+v)", i, s.TMm, want[i], sorted)
		}
	}
}

func TestOverlapFilter_RejectsClosePairs(t *testing.T) {
	minDist := 1.0
	points := []Candidate{
		{X: 0, Y: 0},
		{X: 0.5, Y: 0},
		{X: 5, Y: 0},
	}
	accepted, rejected := overlapFilter(points, minDist)

	if rejected != 1 {
		t.Errorf("rejected = %d, want 1", rejected)
	}
	if len(accepted) != 2 {
		t.Fatalf("accepted = %d, want 2", len(accepted))
	}
	dx, dy := accepted[0].X-accepted[1].X, accepted[0].Y-accepted[1].Y
	if math.Hypot(dx, dy) < minDist {
		t.Errorf("accepted pair violates min_dist")
	}
}

func TestBoustrophedonOrder_RowDirectionAlternates(t *testing.T) {
	points := []Candidate{
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: 1, Y: 0},
		{X: -1, Y: 0},
	}
	ordered := boustrophedonOrder(points)

	if len(ordered) != 4 {
		t.Fatalf("got %d points, want 4", len(ordered))
	}
	// Top row (y=1) first, ascending x; bottom row (y=0), descending x.
	want := [][2]float64{{-1, 1}, {1, 1}, {1, 0}, {-1, 0}}
	for i, p := range ordered {
		if p.X != want[i][0] || p.Y != want[i][1] {
			t.Errorf("ordered[%d] = (%v, %v), want (%v, %v)", i, p.X, p.Y, want[i][0], want[i][1])
		}
	}
}
