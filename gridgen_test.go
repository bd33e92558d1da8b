package planner

import (
	"math"
	"testing"
)

// S5: standalone simple aperture at a fixed axis distance.
func TestGenerateStandaloneGrid_S5SimpleAxisDistance(t *testing.T) {
	axisDistance := 0.8
	result, err := GenerateStandaloneGrid(ApertureSimple, nil, &axisDistance, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SpotsCount == 0 {
		t.Fatal("expected at least one spot")
	}

	r := Defaults.SpotDiameterMM / 2
	for _, s := range result.Spots {
		if s.X < r-1e-9 || s.X > 12-r+1e-9 || s.Y < r-1e-9 || s.Y > 12-r+1e-9 {
			t.Errorf("spot %v outside [%v, %v]^2", s, r, 12-r)
		}
	}
}

// S6: standalone advanced aperture (full circle), unison spacing.
func TestGenerateStandaloneGrid_S6AdvancedUnison(t *testing.T) {
	angleStep := 5.0
	target := 5.0
	result, err := GenerateStandaloneGrid(ApertureAdvanced, &target, nil, &angleStep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SpotsCount == 0 {
		t.Fatal("expected at least one spot")
	}

	minDist := minDistForDiameter(Defaults.SpotDiameterMM)
	for i, s := range result.Spots {
		if math.Hypot(s.X, s.Y) > Defaults.ApertureRadiusMM+1e-6 {
			t.Errorf("spot %v outside the aperture disk", s)
		}
		k := math.Round(s.ThetaDeg / angleStep)
		if math.Abs(s.ThetaDeg-k*angleStep) > 1e-6 {
			t.Errorf("spot %v theta not on the %v-degree grid", s, angleStep)
		}
		for j := i + 1; j < len(result.Spots); j++ {
			o := result.Spots[j]
			if math.Hypot(s.X-o.X, s.Y-o.Y) < minDist-1e-6 {
				t.Errorf("spots %v and %v violate min_dist", s, o)
			}
		}
	}
}

func TestGenerateStandaloneGrid_SimpleRequiresExactlyOneParam(t *testing.T) {
	if _, err := GenerateStandaloneGrid(ApertureSimple, nil, nil, nil); err == nil {
		t.Error("expected an error when neither target_coverage_pct nor axis_distance_mm is given")
	}
	target := 5.0
	axis := 0.8
	if _, err := GenerateStandaloneGrid(ApertureSimple, &target, &axis, nil); err == nil {
		t.Error("expected an error when both target_coverage_pct and axis_distance_mm are given")
	}
}

func TestGenerateStandaloneGrid_AdvancedRequiresAngleStep(t *testing.T) {
	target := 5.0
	if _, err := GenerateStandaloneGrid(ApertureAdvanced, &target, nil, nil); err == nil {
		t.Error("expected an error when angle_step_deg is missing")
	}
}
