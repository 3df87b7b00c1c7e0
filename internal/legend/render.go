package legend

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/bivariate.report/internal/classify"
	"github.com/banshee-data/bivariate.report/internal/palette"
)

// DefaultCellSize is the swatch size used when the legend does not set
// its own.
const DefaultCellSize = 0.9 * vg.Inch

func (l *Legend) imageSize() vg.Length {
	cell := l.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	return vg.Length(l.K)*cell + vg.Inch
}

// Render writes the legend as an image file. The format follows the
// file extension, as plot.Save does (png, svg, pdf).
func (l *Legend) Render(path string) error {
	p, err := l.buildPlot()
	if err != nil {
		return err
	}
	size := l.imageSize()
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("save legend: %w", err)
	}
	return nil
}

// WriteImage writes the legend in the named format (png or svg) to w.
func (l *Legend) WriteImage(w io.Writer, format string) error {
	p, err := l.buildPlot()
	if err != nil {
		return err
	}
	size := l.imageSize()
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return fmt.Errorf("render legend: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write legend: %w", err)
	}
	return nil
}

func (l *Legend) buildPlot() (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = l.XLabel
	p.Y.Label.Text = l.YLabel
	p.X.Min, p.X.Max = 0, float64(l.K)
	p.Y.Min, p.Y.Max = 0, float64(l.K)
	p.X.Tick.Marker = breakTicks(l.xBreaks)
	p.Y.Tick.Marker = breakTicks(l.yBreaks)

	for _, c := range l.Cells {
		fill, err := palette.RGBA(c.Color)
		if err != nil {
			return nil, fmt.Errorf("legend cell %d: %w", c.Code, err)
		}
		x0, y0 := float64(c.Col-1), float64(c.Row-1)
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x0, Y: y0},
			{X: x0 + 1, Y: y0},
			{X: x0 + 1, Y: y0 + 1},
			{X: x0, Y: y0 + 1},
		})
		if err != nil {
			return nil, fmt.Errorf("legend cell %d: %w", c.Code, err)
		}
		poly.Color = fill
		poly.LineStyle.Color = color.White
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)
	}
	return p, nil
}

// breakTicks places the interior class boundaries on an axis. The axis
// ends stay unlabelled since the outer classes are open-ended.
func breakTicks(bs classify.BreakSet) plot.ConstantTicks {
	ticks := make([]plot.Tick, 0, len(bs.Breaks))
	for i, b := range bs.Breaks {
		ticks = append(ticks, plot.Tick{
			Value: float64(i + 1),
			Label: classify.FormatBreak(b),
		})
	}
	return plot.ConstantTicks(ticks)
}
