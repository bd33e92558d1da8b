package planner

import (
	"math"
	"testing"
)

func TestPolarCandidates_WithinRadiusAndMask(t *testing.T) {
	mask := square(0, 0, 20) // large enough not to clip the aperture
	id := 7
	cands := polarCandidates(0, 0, 5, 1, 10, mask, &id)

	if len(cands) == 0 {
		t.Fatal("no candidates produced")
	}
	for _, c := range cands {
		r := math.Hypot(c.X, c.Y)
		if r > 5+1e-6 {
			t.Errorf("candidate %v outside radius 5", c)
		}
		if c.MaskID == nil || *c.MaskID != id {
			t.Errorf("candidate %v missing mask id %d", c, id)
		}
	}
}

func TestPolarCandidates_DropsOutsideMask(t *testing.T) {
	mask := square(8, 8, 1) // small mask beyond the outermost ring (radius 5)
	cands := polarCandidates(0, 0, 5, 1, 10, mask, nil)
	if len(cands) != 0 {
		t.Errorf("expected no candidates inside the small offset mask, got %d", len(cands))
	}
}

func TestAxisGridCandidates_WithinRadius(t *testing.T) {
	points := axisGridCandidates(0, 0, 3, 0.5)
	if len(points) == 0 {
		t.Fatal("no points produced")
	}
	for _, p := range points {
		if math.Hypot(p.X, p.Y) > 3+1e-6 {
			t.Errorf("point %v outside radius 3", p)
		}
	}
}
