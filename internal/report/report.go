// Package report summarises one classification run as a standalone
// HTML page: a bar chart of cell counts per combined code, coloured
// with the run's palette, plus the break values and nodata tally.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"

	"github.com/banshee-data/bivariate.report/internal/classify"
	"github.com/banshee-data/bivariate.report/internal/style"
)

// Report carries everything the HTML summary needs about one run.
type Report struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	PaletteName string
	K           int
	XBreaks     classify.BreakSet
	YBreaks     classify.BreakSet

	// CodeCounts maps each combined code present in the output raster
	// to its cell count. The nodata code is tracked separately.
	CodeCounts  map[int]int
	NodataCells int
	TotalCells  int
}

// New stamps a fresh report with a run ID and timestamp.
func New(paletteName string, k int, bx, by classify.BreakSet) *Report {
	return &Report{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		PaletteName: paletteName,
		K:           k,
		XBreaks:     bx,
		YBreaks:     by,
		CodeCounts:  make(map[int]int),
	}
}

// WriteHTML renders the report page to w. The colour table must be the
// one the run's symbology was resolved with so the chart bars match the
// map colours.
func (r *Report) WriteHTML(w io.Writer, table *style.ColorTable) error {
	codes := make([]int, 0, len(r.CodeCounts))
	for code := range r.CodeCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	x := make([]string, 0, len(codes))
	y := make([]opts.BarData, 0, len(codes))
	for _, code := range codes {
		x = append(x, fmt.Sprintf("%d", code))
		bd := opts.BarData{Value: r.CodeCounts[code]}
		if c, ok := table.Color(code); ok {
			bd.ItemStyle = &opts.ItemStyle{Color: c}
		}
		y = append(y, bd)
	}

	subtitle := fmt.Sprintf(
		"run=%s palette=%s k=%d cells=%d nodata=%d generated=%s",
		r.RunID, r.PaletteName, r.K, r.TotalCells, r.NodataCells,
		r.GeneratedAt.Format(time.RFC3339),
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bivariate Classification Report",
			Width:     "100%",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cells per combined class",
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Combined code"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cells"}),
	)
	bar.SetXAxis(x).
		AddSeries("cells", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.AddCharts(bar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// BreakSummary lists the class boundary labels for both variables, for
// log lines and CLI output.
func (r *Report) BreakSummary() string {
	return fmt.Sprintf("A: %v  B: %v", r.XBreaks.Labels(), r.YBreaks.Labels())
}
