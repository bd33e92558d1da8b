// Package planner computes geometrically uniform laser spot grids inside a
// circular treatment aperture, clipped against user-drawn polygon masks, and
// orders the accepted spots into a machine-visit sequence for a two-axis
// (linear carriage + rotational stage) device.
//
// The package is pure: GeneratePlanByMode and GenerateStandaloneGrid take
// structured inputs and return a PlanResult value, with no I/O, no shared
// mutable state, and no retries. Callers at the service boundary (HTTP
// routing, persistence, export encoding) are expected to convert between
// millimetre coordinate frames (see CToTL / TLToC) and to translate
// ErrInvalidArgument into their own transport-level error responses.
package planner

import (
	"seehuhn.de/go/geom/vec"
)

// Point2D is a position in millimetres. It is seehuhn.de/go/geom's Vec2 so
// that geometry helpers compose directly with the kernel's primitives.
type Point2D = vec.Vec2

// MaskPolygon is a closed, simple (non-self-intersecting) polygon drawn by a
// user, in center-mm (+y up). Vertex orientation is irrelevant: area and
// inclusion tests are orientation-agnostic. MaskPolygon is immutable once
// constructed.
type MaskPolygon struct {
	ID       int
	Label    string
	Vertices []Point2D
}

// Spot is a single candidate or accepted laser emission.
//
// ThetaDeg is in [0, 180) for diameter-based (advanced/standalone-advanced)
// modes, and TMm is the signed offset along that diameter. For simple-mode
// points ThetaDeg is the polar angle atan2(dy, dx) about the plan center, in
// (-180, 180], and TMm is the non-negative distance from it. Either way
// X = TMm*cos(ThetaDeg) and Y = TMm*sin(ThetaDeg) relative to the plan
// center, within 1e-6mm.
type Spot struct {
	X, Y     float64
	ThetaDeg float64
	TMm      float64

	// MaskID is nil for full-aperture plans (no mask produced the point).
	MaskID *int

	// ComponentID groups spots belonging to the same connected mask
	// fragment. This module never fragments a mask, so ComponentID always
	// equals MaskID when MaskID is set, and is nil otherwise.
	ComponentID *int
}

// PlanResult is the complete output of a planning call: the emission-order
// spot sequence plus the metrics and validity flag computed over it.
type PlanResult struct {
	Spots []Spot

	// AchievedCoveragePct is nil when the coverage denominator (total kept
	// mask area) is zero.
	AchievedCoveragePct *float64

	SpotsCount            int
	SpotsOutsideMaskCount int
	OverlapCount          int
	PlanValid             bool
	FallbackUsed          bool
}

// Mode selects the planning algorithm used by GeneratePlanByMode.
type Mode string

const (
	ModeSimple   Mode = "simple"
	ModeAdvanced Mode = "advanced"
)

// Defaults collects the numeric constants fixed by the design (spec.md §6).
var Defaults = struct {
	ApertureRadiusMM      float64
	SpotDiameterMM        float64
	MinDistFactor         float64
	AngleStepDeg          float64
	SimpleGridSpacingMM   float64
	MaskAreaFloorPct      float64 // of aperture area
	MaskAreaFloorRelative float64 // of kept-mask total area
	TargetCoverageMin     float64
	TargetCoverageMax     float64
}{
	ApertureRadiusMM:      12.5,
	SpotDiameterMM:        0.3,
	MinDistFactor:         1.05,
	AngleStepDeg:          5.0,
	SimpleGridSpacingMM:   0.8,
	MaskAreaFloorPct:      0.005,
	MaskAreaFloorRelative: 0.01,
	TargetCoverageMin:     3,
	TargetCoverageMax:     20,
}

// minDistForDiameter is the enforced pairwise center-to-center distance for
// a given spot diameter: min_dist = 1.05 * spot_diameter.
func minDistForDiameter(spotDiameterMM float64) float64 {
	return Defaults.MinDistFactor * spotDiameterMM
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intPtr(v int) *int {
	return &v
}
