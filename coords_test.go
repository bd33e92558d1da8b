package planner

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestTLToC_CToTL_RoundTrip(t *testing.T) {
	widthMM, heightMM := 25.0, 25.0
	points := []vec.Vec2{{X: 0, Y: 0}, {X: 12.5, Y: 12.5}, {X: 3.2, Y: 19.7}}

	for _, p := range points {
		c := TLToC(p, widthMM, heightMM)
		back := CToTL(c, widthMM, heightMM)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip for %v gave %v", p, back)
		}
	}
}

func TestTLToC_OriginMapsToImageCenter(t *testing.T) {
	got := TLToC(vec.Vec2{X: 12.5, Y: 12.5}, 25, 25)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("image center in TL-mm should map to C-mm origin, got %v", got)
	}
}

func TestTLToC_FlipsY(t *testing.T) {
	top := TLToC(vec.Vec2{X: 0, Y: 0}, 25, 25)
	if top.Y <= 0 {
		t.Errorf("TL-mm origin (top-left) should map to positive C-mm y, got %v", top.Y)
	}
}
