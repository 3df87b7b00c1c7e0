package legend

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/bivariate.report/internal/bivar"
	"github.com/banshee-data/bivariate.report/internal/classify"
	"github.com/banshee-data/bivariate.report/internal/palette"
)

// Cell is one swatch of the legend grid. Row and Col are 1-based. Row 1
// is the bottom of the rendered grid, so the variable B class increases
// upward just as variable A increases to the right.
type Cell struct {
	Row   int
	Col   int
	Code  int
	Color string

	// Count is the number of raster cells carrying this code, when the
	// legend has been annotated with SetCounts. Zero otherwise.
	Count int
}

// Legend is the fully resolved k-by-k colour key for one run. Cells are
// ordered bottom row first, left to right within each row.
type Legend struct {
	K      int
	Cells  []Cell
	XLabel string
	YLabel string

	// CellSize overrides the rendered swatch size when positive.
	CellSize vg.Length

	xBreaks classify.BreakSet
	yBreaks classify.BreakSet
}

// Build assembles the legend for a palette and the two break sets the
// map was classified with. All three must agree on k.
func Build(p *palette.Palette, bx, by classify.BreakSet) (*Legend, error) {
	if bx.K != by.K {
		return nil, fmt.Errorf("break sets disagree on class count: %d vs %d", bx.K, by.K)
	}
	if p.K != bx.K {
		return nil, &palette.DimensionMismatchError{Name: p.Name, Want: bx.K, Have: p.K}
	}

	l := &Legend{
		K:       p.K,
		Cells:   make([]Cell, 0, p.K*p.K),
		XLabel:  "Variable A",
		YLabel:  "Variable B",
		xBreaks: bx,
		yBreaks: by,
	}
	for row := 1; row <= p.K; row++ {
		for col := 1; col <= p.K; col++ {
			code, err := bivar.Encode(col, row, p.K)
			if err != nil {
				return nil, err
			}
			color, ok := p.Color(code)
			if !ok {
				return nil, fmt.Errorf("palette %q has no colour for code %d", p.Name, code)
			}
			l.Cells = append(l.Cells, Cell{Row: row, Col: col, Code: code, Color: color})
		}
	}
	return l, nil
}

// SetCounts annotates each cell with its sample count from a run.
// Codes absent from counts leave the cell count at zero.
func (l *Legend) SetCounts(counts map[int]int) {
	for i := range l.Cells {
		l.Cells[i].Count = counts[l.Cells[i].Code]
	}
}

// Color returns the swatch colour at (row, col), both 1-based.
func (l *Legend) Color(row, col int) (string, bool) {
	if row < 1 || row > l.K || col < 1 || col > l.K {
		return "", false
	}
	return l.Cells[(row-1)*l.K+(col-1)].Color, true
}
