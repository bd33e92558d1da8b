package preview

import (
	"bytes"
	"testing"

	"github.com/swkwac/LaserXe"
)

func TestRenderCoverage_PaintsSomePixels(t *testing.T) {
	masks := []planner.MaskPolygon{
		{ID: 1, Vertices: []planner.Point2D{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}},
	}
	spots := []planner.Spot{{X: 0, Y: 0}}

	grid := RenderCoverage(masks, spots, 0.3, 12.5, 64, 64)

	var total float32
	for _, row := range grid.Values {
		for _, v := range row {
			total += v
		}
	}
	if total == 0 {
		t.Error("expected some non-zero coverage from the mask outline and spot disc")
	}
}

func TestWriteScatterHTML_ProducesHTML(t *testing.T) {
	spots := []planner.Spot{
		{X: 1, Y: 1, MaskID: intP(1)},
		{X: -1, Y: -1},
	}
	var buf bytes.Buffer
	if err := WriteScatterHTML(&buf, "test", spots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty HTML output")
	}
}

func intP(v int) *int { return &v }
