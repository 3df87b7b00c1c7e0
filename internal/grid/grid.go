package grid

import (
	"fmt"
	"math"
)

// DefaultNodata is the nodata marker used for grids we create ourselves.
// Class codes are small positive integers, so a large negative sentinel
// can never collide with real data.
const DefaultNodata = -9999

// georefEpsilon bounds the allowed drift between the georeference values
// of two "aligned" rasters. ASCII grid headers round-trip through text,
// so exact float equality is too strict.
const georefEpsilon = 1e-9

// Grid is a single-band raster: row-major float64 samples plus the
// georeference carried by the ESRI ASCII header. Row 0 is the top row,
// matching the file layout. A Grid is never mutated after loading;
// derived grids are built with New and filled before being shared.
type Grid struct {
	Cols, Rows int
	// Lower-left corner and square cell size, in CRS units.
	XLL, YLL, CellSize float64
	// Nodata is the sentinel value marking missing samples.
	Nodata float64
	// Data holds Rows*Cols samples, row-major from the top row down.
	Data []float64
}

// New returns a Grid of the given shape with every cell set to nodata.
func New(cols, rows int, xll, yll, cellSize, nodata float64) *Grid {
	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		XLL:      xll,
		YLL:      yll,
		CellSize: cellSize,
		Nodata:   nodata,
		Data:     make([]float64, cols*rows),
	}
	for i := range g.Data {
		g.Data[i] = nodata
	}
	return g
}

// NewLike returns an empty grid with the same shape and georeference as
// ref but its own nodata sentinel.
func NewLike(ref *Grid, nodata float64) *Grid {
	return New(ref.Cols, ref.Rows, ref.XLL, ref.YLL, ref.CellSize, nodata)
}

// At returns the sample at (col, row), row 0 at the top.
func (g *Grid) At(col, row int) float64 {
	return g.Data[row*g.Cols+col]
}

// Set stores a sample at (col, row).
func (g *Grid) Set(col, row int, v float64) {
	g.Data[row*g.Cols+col] = v
}

// Valid reports whether v is a usable sample: finite and not the
// grid's nodata sentinel.
func (g *Grid) Valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v != g.Nodata
}

// ValidValues returns the usable samples in row-major order.
func (g *Grid) ValidValues() []float64 {
	out := make([]float64, 0, len(g.Data))
	for _, v := range g.Data {
		if g.Valid(v) {
			out = append(out, v)
		}
	}
	return out
}

// NodataCount returns the number of masked samples.
func (g *Grid) NodataCount() int {
	n := 0
	for _, v := range g.Data {
		if !g.Valid(v) {
			n++
		}
	}
	return n
}

// Scaled returns a copy of g with every valid sample divided by divisor.
// Nodata cells pass through untouched.
func (g *Grid) Scaled(divisor float64) (*Grid, error) {
	if divisor == 0 {
		return nil, fmt.Errorf("scale divisor must be non-zero")
	}
	out := NewLike(g, g.Nodata)
	for i, v := range g.Data {
		if g.Valid(v) {
			out.Data[i] = v / divisor
		} else {
			out.Data[i] = v
		}
	}
	return out, nil
}

// InputMismatchError reports that two input rasters are not aligned:
// different dimensions or different georeference. Property names the
// header field that differs so the caller can fix the right input.
type InputMismatchError struct {
	Property string
	A, B     string
}

func (e *InputMismatchError) Error() string {
	return fmt.Sprintf("input rasters differ in %s: %s vs %s", e.Property, e.A, e.B)
}

// CheckAligned verifies that a and b cover the same cells: identical
// shape and georeference within a small epsilon. Returns an
// *InputMismatchError naming the first differing property.
func CheckAligned(a, b *Grid) error {
	if a.Cols != b.Cols {
		return &InputMismatchError{Property: "ncols", A: fmt.Sprint(a.Cols), B: fmt.Sprint(b.Cols)}
	}
	if a.Rows != b.Rows {
		return &InputMismatchError{Property: "nrows", A: fmt.Sprint(a.Rows), B: fmt.Sprint(b.Rows)}
	}
	if math.Abs(a.XLL-b.XLL) > georefEpsilon {
		return &InputMismatchError{Property: "xllcorner", A: fmt.Sprint(a.XLL), B: fmt.Sprint(b.XLL)}
	}
	if math.Abs(a.YLL-b.YLL) > georefEpsilon {
		return &InputMismatchError{Property: "yllcorner", A: fmt.Sprint(a.YLL), B: fmt.Sprint(b.YLL)}
	}
	if math.Abs(a.CellSize-b.CellSize) > georefEpsilon {
		return &InputMismatchError{Property: "cellsize", A: fmt.Sprint(a.CellSize), B: fmt.Sprint(b.CellSize)}
	}
	return nil
}
