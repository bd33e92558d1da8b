package planner

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeCSV_HeaderAndEmptyFields(t *testing.T) {
	result := PlanResult{
		Spots: []Spot{
			{X: 1, Y: 2, ThetaDeg: 0, TMm: 1, MaskID: intPtr(3), ComponentID: intPtr(3)},
			{X: -1, Y: -2, ThetaDeg: 90, TMm: -1},
		},
	}
	spacing := 0.8

	out := string(EncodeCSV(result, ModeSimple, &spacing))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "# algorithm_mode=simple" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "sequence_index,theta_deg,t_mm,x_mm,y_mm,mask_id,component_id") {
		t.Errorf("unexpected header line: %q", lines[2])
	}
	if !strings.HasSuffix(lines[4], ",,") {
		t.Errorf("expected trailing empty mask_id/component_id fields, got %q", lines[4])
	}
}

func TestEncodeJSON_RoundTripsStructure(t *testing.T) {
	achieved := 7.5
	result := PlanResult{
		Spots:               []Spot{{X: 1, Y: 2, ThetaDeg: 0, TMm: 1, MaskID: intPtr(1)}},
		AchievedCoveragePct: &achieved,
		SpotsCount:          1,
		PlanValid:           true,
	}
	masks := []MaskPolygon{{ID: 1, Label: "a", Vertices: square(0, 0, 4)}}

	doc := BuildExportDocument(result, masks, 5, ExportMetadata{AlgorithmMode: ModeAdvanced})
	raw, err := EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"metadata", "masks", "points", "metrics", "validation"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
}
