package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadASCII parses an ESRI ASCII grid. Header keys are case-insensitive;
// NODATA_value is optional and defaults to DefaultNodata. Cell values
// equal to the declared nodata value are stored as-is and masked by
// Grid.Valid.
func ReadASCII(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header := map[string]float64{}
	nodata := float64(DefaultNodata)
	var data []float64

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		// Header rows are "key value" pairs with a non-numeric key.
		if len(fields) == 2 {
			if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
				key := strings.ToLower(fields[0])
				val, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, fmt.Errorf("ascii grid header %s: %w", key, err)
				}
				if key == "nodata_value" {
					nodata = val
				} else {
					header[key] = val
				}
				continue
			}
		}

		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("ascii grid cell %q: %w", f, err)
			}
			data = append(data, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ascii grid: %w", err)
	}

	for _, key := range []string{"ncols", "nrows", "xllcorner", "yllcorner", "cellsize"} {
		if _, ok := header[key]; !ok {
			return nil, fmt.Errorf("ascii grid header missing %s", key)
		}
	}
	cols := int(header["ncols"])
	rows := int(header["nrows"])
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("ascii grid has invalid shape %dx%d", cols, rows)
	}
	if len(data) != cols*rows {
		return nil, fmt.Errorf("ascii grid has %d cells, header promises %d", len(data), cols*rows)
	}
	return &Grid{
		Cols:     cols,
		Rows:     rows,
		XLL:      header["xllcorner"],
		YLL:      header["yllcorner"],
		CellSize: header["cellsize"],
		Nodata:   nodata,
		Data:     data,
	}, nil
}

// WriteASCII writes g in ESRI ASCII grid format. Integral values are
// written without a decimal point so class and code rasters stay
// readable; everything else uses shortest-round-trip formatting.
func WriteASCII(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ncols %d\n", g.Cols)
	fmt.Fprintf(bw, "nrows %d\n", g.Rows)
	fmt.Fprintf(bw, "xllcorner %s\n", formatCell(g.XLL))
	fmt.Fprintf(bw, "yllcorner %s\n", formatCell(g.YLL))
	fmt.Fprintf(bw, "cellsize %s\n", formatCell(g.CellSize))
	fmt.Fprintf(bw, "NODATA_value %s\n", formatCell(g.Nodata))

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if col > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("write ascii grid: %w", err)
				}
			}
			if _, err := bw.WriteString(formatCell(g.At(col, row))); err != nil {
				return fmt.Errorf("write ascii grid: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write ascii grid: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ascii grid: %w", err)
	}
	return nil
}

func formatCell(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
