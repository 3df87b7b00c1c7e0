package classify

import (
	"math"
	"runtime"
	"sync"

	"github.com/banshee-data/bivariate.report/internal/grid"
)

// Classify assigns a single sample to a class in 1..k, or Nodata for
// non-finite input. Boundaries belong to the lower class; values beyond
// either end clamp into the outermost classes, so the global minimum
// lands in class 1 and the global maximum in class k.
func Classify(v float64, bs BreakSet) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Nodata
	}
	class := 1
	for _, b := range bs.Breaks {
		if v > b {
			class++
		}
	}
	return class
}

// ClassifyGrid classifies every cell of g against bs, producing a class
// grid with nodata 0 and a count of masked samples. BreakSets are
// immutable, so rows are classified concurrently.
func ClassifyGrid(g *grid.Grid, bs BreakSet) (*grid.Grid, int) {
	out := grid.NewLike(g, Nodata)

	workers := runtime.NumCPU()
	if workers > g.Rows {
		workers = g.Rows
	}
	if workers < 1 {
		workers = 1
	}

	var nodataCount int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	rowsPer := (g.Rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPer
		end := start + rowsPer
		if end > g.Rows {
			end = g.Rows
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			masked := int64(0)
			for row := start; row < end; row++ {
				for col := 0; col < g.Cols; col++ {
					v := g.At(col, row)
					if !g.Valid(v) {
						out.Set(col, row, Nodata)
						masked++
						continue
					}
					out.Set(col, row, float64(Classify(v, bs)))
				}
			}
			mu.Lock()
			nodataCount += masked
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()

	return out, int(nodataCount)
}
