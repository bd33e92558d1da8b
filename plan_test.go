package planner

import (
	"math"
	"testing"
)

// S1: simple mode, single square mask.
func TestGeneratePlanByMode_S1SimpleSingleSquare(t *testing.T) {
	masks := []MaskPolygon{{ID: 1, Label: "square", Vertices: square(0, 0, 6)}}
	spacing := 0.8

	result, err := GeneratePlanByMode(masks, 5, nil, 25, ModeSimple, &spacing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SpotsCount < 1 {
		t.Fatalf("expected at least one spot, got %d", result.SpotsCount)
	}
	if result.OverlapCount != 0 {
		t.Errorf("overlap_count = %d, want 0", result.OverlapCount)
	}
	for _, s := range result.Spots {
		if s.X < -3-1e-9 || s.X > 3+1e-9 || s.Y < -3-1e-9 || s.Y > 3+1e-9 {
			t.Errorf("spot %v outside [-3,3]^2", s)
		}
		if s.MaskID == nil || *s.MaskID != 1 {
			t.Errorf("spot %v missing mask_id=1", s)
		}
	}
	for i := 1; i < len(result.Spots); i++ {
		a, b := result.Spots[i-1], result.Spots[i]
		if math.Abs(a.Y-b.Y) > boustrophedonRowTolerance {
			if a.Y < b.Y {
				t.Errorf("rows out of top-down order at index %d", i)
			}
		}
	}
}

// S2: advanced mode, single square mask.
func TestGeneratePlanByMode_S2AdvancedSingleSquare(t *testing.T) {
	masks := []MaskPolygon{{ID: 1, Label: "square", Vertices: square(0, 0, 6)}}

	result, err := GeneratePlanByMode(masks, 5, nil, 25, ModeAdvanced, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.PlanValid {
		t.Errorf("plan_valid = false, want true (outside=%d overlap=%d count=%d)",
			result.SpotsOutsideMaskCount, result.OverlapCount, result.SpotsCount)
	}
	if result.AchievedCoveragePct == nil {
		t.Fatal("achieved_coverage_pct is nil")
	}
	if *result.AchievedCoveragePct < 2 || *result.AchievedCoveragePct > 10 {
		t.Errorf("achieved_coverage_pct = %v, want within [2, 10]", *result.AchievedCoveragePct)
	}
	for _, s := range result.Spots {
		k := math.Round(s.ThetaDeg / Defaults.AngleStepDeg)
		if math.Abs(s.ThetaDeg-k*Defaults.AngleStepDeg) > 1e-6 {
			t.Errorf("theta_deg %v not on a %v-degree grid", s.ThetaDeg, Defaults.AngleStepDeg)
		}
	}
}

// S3: per-mask coverage override; the higher-coverage mask should receive
// at least as many spots as the lower-coverage one.
func TestGeneratePlanByMode_S3CoveragePerMask(t *testing.T) {
	masks := []MaskPolygon{
		{ID: 1, Label: "white", Vertices: square(-3, 0, 4)},
		{ID: 2, Label: "green", Vertices: square(3, 0, 4)},
	}
	coveragePerMask := map[string]float64{"white": 10, "green": 5}

	result, err := GeneratePlanByMode(masks, 5, coveragePerMask, 25, ModeAdvanced, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var whiteCount, greenCount int
	for _, s := range result.Spots {
		if s.MaskID == nil {
			continue
		}
		switch *s.MaskID {
		case 1:
			whiteCount++
		case 2:
			greenCount++
		}
	}
	if whiteCount < greenCount {
		t.Errorf("expected white (10%% coverage) spots >= green (5%%) spots, got %d < %d", whiteCount, greenCount)
	}
}

// S4: a tiny second mask should be dropped by the mask area floors (at
// 0.36mm^2 it is already below 0.5% of the aperture area).
func TestGeneratePlanByMode_S4SmallMaskRejection(t *testing.T) {
	masks := []MaskPolygon{
		{ID: 1, Label: "large", Vertices: square(0, 0, 8)},
		{ID: 2, Label: "tiny", Vertices: square(5, 5, 0.6)},
	}

	result, err := GeneratePlanByMode(masks, 5, nil, 25, ModeAdvanced, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range result.Spots {
		if s.MaskID != nil && *s.MaskID == 2 {
			t.Errorf("spot %v belongs to mask 2, which should have been dropped", s)
		}
	}
}

func TestGeneratePlanByMode_EmptyMasks(t *testing.T) {
	result, err := GeneratePlanByMode(nil, 5, nil, 25, ModeAdvanced, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SpotsCount != 0 || result.PlanValid {
		t.Errorf("expected empty, invalid result for no masks, got %+v", result)
	}
}

func TestGeneratePlanByMode_UnknownMode(t *testing.T) {
	masks := []MaskPolygon{{ID: 1, Vertices: square(0, 0, 4)}}
	_, err := GeneratePlanByMode(masks, 5, nil, 25, Mode("bogus"), nil)
	if err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestFilterMasks_FallsBackToPositiveArea(t *testing.T) {
	// A mask below the aperture-area floor, alone, should still survive via
	// the fallback-to-positive-area path rather than being dropped entirely.
	tiny := MaskPolygon{ID: 1, Vertices: square(0, 0, 0.01)}
	kept, ok := filterMasks([]MaskPolygon{tiny})
	if !ok || len(kept) != 1 {
		t.Fatalf("expected fallback to keep the only positive-area mask, got kept=%v ok=%v", kept, ok)
	}
}

func TestPlanCenter_FallbackOutsideBounds(t *testing.T) {
	far := MaskPolygon{ID: 1, Vertices: square(100, 100, 2)}
	cx, cy, fallback := planCenter([]MaskPolygon{far})
	if !fallback {
		t.Error("expected fallback when mask center is far outside 2R bound")
	}
	if cx != 0 || cy != 0 {
		t.Errorf("expected origin fallback, got (%v, %v)", cx, cy)
	}
}
