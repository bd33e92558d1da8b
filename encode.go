package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// EncodeCSV writes the CSV export format of spec.md §6: optional comment
// lines, a fixed header, then one row per spot in emission order. Empty
// fields are used for a nil MaskID / ComponentID rather than the literal
// string "null" or "0".
func EncodeCSV(result PlanResult, algorithmMode Mode, gridSpacingMM *float64) []byte {
	var buf bytes.Buffer

	if algorithmMode != "" {
		fmt.Fprintf(&buf, "# algorithm_mode=%s\n", algorithmMode)
	}
	if gridSpacingMM != nil {
		fmt.Fprintf(&buf, "# grid_spacing_mm=%s\n", formatFloat(*gridSpacingMM))
	}

	buf.WriteString("sequence_index,theta_deg,t_mm,x_mm,y_mm,mask_id,component_id\n")
	for i, s := range result.Spots {
		fmt.Fprintf(&buf, "%d,%s,%s,%s,%s,%s,%s\n",
			i,
			formatFloat(s.ThetaDeg),
			formatFloat(s.TMm),
			formatFloat(s.X),
			formatFloat(s.Y),
			formatIntPtr(s.MaskID),
			formatIntPtr(s.ComponentID),
		)
	}

	return buf.Bytes()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// ExportMetadata carries the fields spec.md §6's JSON export nests under
// "metadata" that are not computed by the planner itself (they come from
// the persistence layer's iteration record).
type ExportMetadata struct {
	IterationID   string         `json:"iteration_id,omitempty"`
	ParentID      string         `json:"parent_id,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
	Params        map[string]any `json:"params,omitempty"`
	AlgorithmMode Mode           `json:"algorithm_mode"`
	GridSpacingMM *float64       `json:"grid_spacing_mm,omitempty"`
}

// exportPoint is the JSON shape of a single spot in the "points" array.
type exportPoint struct {
	SequenceIndex int      `json:"sequence_index"`
	ThetaDeg      float64  `json:"theta_deg"`
	TMm           float64  `json:"t_mm"`
	XMm           float64  `json:"x_mm"`
	YMm           float64  `json:"y_mm"`
	MaskID        *int     `json:"mask_id,omitempty"`
	ComponentID   *int     `json:"component_id,omitempty"`
}

// exportMaskPolygon is the JSON shape of a single entry in the "masks"
// array.
type exportMaskPolygon struct {
	ID       int       `json:"mask_id"`
	Label    string    `json:"mask_label,omitempty"`
	Vertices []Point2D `json:"vertices"`
}

type exportDocument struct {
	Metadata   ExportMetadata      `json:"metadata"`
	Masks      []exportMaskPolygon `json:"masks"`
	Points     []exportPoint       `json:"points"`
	Metrics    exportMetrics       `json:"metrics"`
	Validation exportValidation    `json:"validation"`
}

type exportMetrics struct {
	AchievedCoveragePct   *float64 `json:"achieved_coverage_pct"`
	TargetCoveragePct     float64  `json:"target_coverage_pct"`
	SpotsCount            int      `json:"spots_count"`
	SpotsOutsideMaskCount int      `json:"spots_outside_mask_count"`
	OverlapCount          int      `json:"overlap_count"`
}

type exportValidation struct {
	PlanValid bool     `json:"plan_valid"`
	Errors    []string `json:"errors"`
}

// BuildExportDocument assembles the structure EncodeJSON serializes,
// folding in the caller-supplied masks, metadata, and target coverage that
// a PlanResult alone does not carry.
func BuildExportDocument(result PlanResult, masks []MaskPolygon, targetCoveragePct float64, meta ExportMetadata) exportDocument {
	outMasks := make([]exportMaskPolygon, len(masks))
	for i, m := range masks {
		outMasks[i] = exportMaskPolygon{ID: m.ID, Label: m.Label, Vertices: m.Vertices}
	}

	points := make([]exportPoint, len(result.Spots))
	for i, s := range result.Spots {
		points[i] = exportPoint{
			SequenceIndex: i,
			ThetaDeg:      s.ThetaDeg,
			TMm:           s.TMm,
			XMm:           s.X,
			YMm:           s.Y,
			MaskID:        s.MaskID,
			ComponentID:   s.ComponentID,
		}
	}

	return exportDocument{
		Metadata: meta,
		Masks:    outMasks,
		Points:   points,
		Metrics: exportMetrics{
			AchievedCoveragePct:   result.AchievedCoveragePct,
			TargetCoveragePct:     targetCoveragePct,
			SpotsCount:            result.SpotsCount,
			SpotsOutsideMaskCount: result.SpotsOutsideMaskCount,
			OverlapCount:          result.OverlapCount,
		},
		Validation: exportValidation{
			PlanValid: result.PlanValid,
			Errors:    []string{},
		},
	}
}

// EncodeJSON serializes the document spec.md §6 describes: metadata, masks,
// points, metrics, and validation, pretty-printed with a two-space indent
// to match the teacher's testcases/export JSON encoder convention.
func EncodeJSON(doc exportDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
