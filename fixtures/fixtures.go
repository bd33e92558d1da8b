// Package fixtures holds named planning scenarios for tests: each scenario
// is a self-contained set of inputs, not a golden output, so consumers
// decide what to assert or render. The planviz command does not use them;
// it reads its input from a JSON file.
package fixtures

import (
	"github.com/swkwac/LaserXe"
)

// Scenario is a single named planning scenario.
type Scenario struct {
	Name              string
	Masks             []planner.MaskPolygon
	Mode              planner.Mode
	TargetCoveragePct float64
	CoveragePerMask   map[string]float64
	GridSpacingMM     *float64
}

// All contains every scenario, grouped by category the way testcases.All
// groups rendering cases by operation.
var All = map[string][]Scenario{
	"simple":   {simpleSingleSquare},
	"advanced": {advancedSingleSquare, coveragePerMask},
	"filter":   {smallMaskRejection},
}

// square returns the four corners of an axis-aligned square of the given
// side length centered at (cx, cy), in C-mm.
func square(cx, cy, side float64) []planner.Point2D {
	h := side / 2
	return []planner.Point2D{
		{X: cx - h, Y: cy - h},
		{X: cx + h, Y: cy - h},
		{X: cx + h, Y: cy + h},
		{X: cx - h, Y: cy + h},
	}
}

func floatPtr(v float64) *float64 { return &v }

// simpleSingleSquare is S1: a 6mm square centered at the origin, planned in
// simple mode at the default grid spacing.
var simpleSingleSquare = Scenario{
	Name: "simple_single_square",
	Masks: []planner.MaskPolygon{
		{ID: 1, Label: "square", Vertices: square(0, 0, 6)},
	},
	Mode:          planner.ModeSimple,
	GridSpacingMM: floatPtr(0.8),
}

// advancedSingleSquare is S2: the same mask, planned in advanced mode at a
// 5% target coverage.
var advancedSingleSquare = Scenario{
	Name: "advanced_single_square",
	Masks: []planner.MaskPolygon{
		{ID: 1, Label: "square", Vertices: square(0, 0, 6)},
	},
	Mode:              planner.ModeAdvanced,
	TargetCoveragePct: 5,
}

// coveragePerMask is S3: two 4mm squares with distinct per-mask coverage
// overrides, expecting the higher-coverage mask to receive more spots.
var coveragePerMask = Scenario{
	Name: "coverage_per_mask",
	Masks: []planner.MaskPolygon{
		{ID: 1, Label: "white", Vertices: square(-3, 0, 4)},
		{ID: 2, Label: "green", Vertices: square(3, 0, 4)},
	},
	Mode:              planner.ModeAdvanced,
	TargetCoveragePct: 5,
	CoveragePerMask:   map[string]float64{"white": 10, "green": 5},
}

// smallMaskRejection is S4: an 8mm square alongside a 0.6mm square that
// should be dropped by the mask area floors (at 0.36mm^2 it is already below
// 0.5% of the aperture area).
var smallMaskRejection = Scenario{
	Name: "small_mask_rejection",
	Masks: []planner.MaskPolygon{
		{ID: 1, Label: "large", Vertices: square(0, 0, 8)},
		{ID: 2, Label: "tiny", Vertices: square(5, 5, 0.6)},
	},
	Mode:              planner.ModeAdvanced,
	TargetCoveragePct: 5,
}
