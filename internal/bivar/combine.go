package bivar

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/banshee-data/bivariate.report/internal/grid"
)

// Combine merges two class grids into a combined-code grid. Both inputs
// must be aligned class grids (values 1..k or the nodata sentinel).
// Cells masked in either input come out masked. Inputs are read-only,
// so row bands are combined concurrently.
func Combine(classX, classY *grid.Grid, k int) (*grid.Grid, error) {
	if err := grid.CheckAligned(classX, classY); err != nil {
		return nil, err
	}

	out := grid.NewLike(classX, Nodata)

	workers := runtime.NumCPU()
	if workers > classX.Rows {
		workers = classX.Rows
	}
	if workers < 1 {
		workers = 1
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	rowsPer := (classX.Rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPer
		end := start + rowsPer
		if end > classX.Rows {
			end = classX.Rows
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for row := start; row < end; row++ {
				for col := 0; col < classX.Cols; col++ {
					cx, cy := classX.At(col, row), classY.At(col, row)
					ix, iy := 0, 0
					if classX.Valid(cx) {
						ix = int(cx)
					}
					if classY.Valid(cy) {
						iy = int(cy)
					}
					code, err := EncodeCell(ix, iy, k)
					if err != nil {
						errs[w] = fmt.Errorf("cell (%d,%d): %w", col, row, err)
						return
					}
					out.Set(col, row, float64(code))
				}
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CountCodes tallies how many cells carry each combined code, plus the
// number of masked cells.
func CountCodes(combined *grid.Grid) (counts map[int]int, nodata int) {
	counts = make(map[int]int)
	for _, v := range combined.Data {
		if !combined.Valid(v) {
			nodata++
			continue
		}
		counts[int(v)]++
	}
	return counts, nodata
}

// PresentCodes returns the sorted distinct non-nodata codes in a
// combined grid.
func PresentCodes(combined *grid.Grid) []int {
	counts, _ := CountCodes(combined)
	out := make([]int, 0, len(counts))
	for code := range counts {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}
