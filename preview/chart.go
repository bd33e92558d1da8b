package preview

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/swkwac/LaserXe"
)

// WriteScatterHTML renders spots as a scatter chart, one series per
// mask_id (plus an "unmasked" series for nil MaskID), and writes the
// self-contained HTML page to w.
func WriteScatterHTML(w io.Writer, title string, spots []planner.Spot) error {
	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x_mm"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y_mm"}),
	)

	series := map[string][]opts.ScatterData{}
	for _, s := range spots {
		label := "unmasked"
		if s.MaskID != nil {
			label = fmt.Sprintf("mask_%d", *s.MaskID)
		}
		series[label] = append(series[label], opts.ScatterData{Value: []float64{s.X, s.Y}})
	}

	labels := make([]string, 0, len(series))
	for label := range series {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		chart.AddSeries(label, series[label])
	}

	return chart.Render(w)
}
