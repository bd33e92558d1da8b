package fixtures

import (
	"testing"

	"github.com/swkwac/LaserXe"
)

func TestAllScenariosPlanSuccessfully(t *testing.T) {
	for category, scenarios := range All {
		for _, sc := range scenarios {
			t.Run(category+"/"+sc.Name, func(t *testing.T) {
				result, err := planner.GeneratePlanByMode(sc.Masks, sc.TargetCoveragePct, sc.CoveragePerMask, 25, sc.Mode, sc.GridSpacingMM)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.SpotsCount == 0 {
					t.Errorf("scenario %s produced no spots", sc.Name)
				}
			})
		}
	}
}
