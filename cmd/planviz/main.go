// Command planviz runs the plan dispatcher against a JSON-described set of
// masks and writes the resulting plan as JSON or CSV, with optional PDF and
// HTML previews. Any setup, input or output error ends the program through
// log.Fatal.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/swkwac/LaserXe"
	"github.com/swkwac/LaserXe/preview"
)

type inputMask struct {
	ID       int               `json:"mask_id"`
	Label    string            `json:"mask_label"`
	Vertices []planner.Point2D `json:"vertices"`
}

type inputDocument struct {
	Masks             []inputMask        `json:"masks"`
	Mode              string             `json:"mode"`
	TargetCoveragePct float64            `json:"target_coverage_pct"`
	CoveragePerMask   map[string]float64 `json:"coverage_per_mask"`
	GridSpacingMM     *float64           `json:"grid_spacing_mm"`
	ImageWidthMM      float64            `json:"image_width_mm"`
}

func main() {
	inputPath := flag.String("in", "", "path to a JSON plan request (required)")
	format := flag.String("format", "json", "output format: json or csv")
	pdfPath := flag.String("pdf", "", "optional path to write a PDF preview")
	htmlPath := flag.String("html", "", "optional path to write an HTML scatter preview")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("planviz: -in is required")
	}

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("planviz: reading input: %v", err)
	}

	var in inputDocument
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Fatalf("planviz: parsing input: %v", err)
	}

	masks := make([]planner.MaskPolygon, len(in.Masks))
	for i, m := range in.Masks {
		masks[i] = planner.MaskPolygon{ID: m.ID, Label: m.Label, Vertices: m.Vertices}
	}

	mode := planner.Mode(in.Mode)
	if mode == "" {
		mode = planner.ModeAdvanced
	}

	result, err := planner.GeneratePlanByMode(masks, in.TargetCoveragePct, in.CoveragePerMask, in.ImageWidthMM, mode, in.GridSpacingMM)
	if err != nil {
		log.Fatalf("planviz: generating plan: %v", err)
	}

	switch *format {
	case "csv":
		os.Stdout.Write(planner.EncodeCSV(result, mode, in.GridSpacingMM))
	case "json":
		doc := planner.BuildExportDocument(result, masks, in.TargetCoveragePct, planner.ExportMetadata{AlgorithmMode: mode, GridSpacingMM: in.GridSpacingMM})
		out, err := planner.EncodeJSON(doc)
		if err != nil {
			log.Fatalf("planviz: encoding plan: %v", err)
		}
		os.Stdout.Write(out)
	default:
		log.Fatalf("planviz: unknown -format %q", *format)
	}

	extent := planner.Defaults.ApertureRadiusMM
	if *pdfPath != "" {
		if err := preview.WritePDF(*pdfPath, masks, result.Spots, planner.Defaults.SpotDiameterMM, extent); err != nil {
			log.Fatalf("planviz: writing pdf preview: %v", err)
		}
	}
	if *htmlPath != "" {
		f, err := os.Create(*htmlPath)
		if err != nil {
			log.Fatalf("planviz: creating html preview: %v", err)
		}
		defer f.Close()
		if err := preview.WriteScatterHTML(f, fmt.Sprintf("%s (%d spots)", *inputPath, result.SpotsCount), result.Spots); err != nil {
			log.Fatalf("planviz: writing html preview: %v", err)
		}
	}
}
