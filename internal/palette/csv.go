package palette

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/bivariate.report/internal/bivar"
)

// The interchange format is a flat CSV, one row per palette:
//
//	palette_name,tag,legacy,11,12,...,33
//
// Cell columns are the row-major combined codes for one fixed k (9
// columns for k=3, 16 for k=4), each holding the "#RRGGBB" colour.
// Loading a written file reproduces each Palette exactly.

// WriteCSV writes palettes of dimension k in the interchange format.
// Palettes of any other dimension are rejected rather than silently
// skipped.
func WriteCSV(w io.Writer, k int, palettes []*Palette) error {
	header := []string{"palette_name", "tag", "legacy"}
	for _, code := range bivar.Codes(k) {
		header = append(header, strconv.Itoa(code))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write palette csv header: %w", err)
	}

	for _, p := range palettes {
		if p.K != k {
			return &DimensionMismatchError{Name: p.Name, Want: k, Have: p.K}
		}
		row := []string{p.Name, p.Tag, strconv.FormatBool(p.Legacy)}
		for _, e := range p.Entries() {
			row = append(row, e.Color)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write palette %q: %w", p.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write palette csv: %w", err)
	}
	return nil
}

// ReadCSV loads palettes from the interchange format. The dimension is
// inferred from the cell columns, which must be exactly the row-major
// code set for k=3 or k=4. A missing legacy column reads as false, for
// files written before the column existed.
func ReadCSV(r io.Reader) ([]*Palette, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read palette csv header: %w", err)
	}

	if len(header) < 2 || header[0] != "palette_name" || header[1] != "tag" {
		return nil, fmt.Errorf("palette csv must start with palette_name,tag columns")
	}
	cellStart := 2
	hasLegacy := len(header) > 2 && header[2] == "legacy"
	if hasLegacy {
		cellStart = 3
	}

	k, err := dimensionFor(len(header) - cellStart)
	if err != nil {
		return nil, err
	}
	for i, code := range bivar.Codes(k) {
		if header[cellStart+i] != strconv.Itoa(code) {
			return nil, fmt.Errorf("palette csv column %d is %q, want %d", cellStart+i, header[cellStart+i], code)
		}
	}

	var palettes []*Palette
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read palette csv line %d: %w", line, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("palette csv line %d has %d columns, want %d", line, len(row), len(header))
		}

		legacy := false
		if hasLegacy {
			legacy, err = strconv.ParseBool(row[2])
			if err != nil {
				return nil, fmt.Errorf("palette csv line %d: legacy %q: %w", line, row[2], err)
			}
		}

		colors := make(map[int]string, k*k)
		for i, code := range bivar.Codes(k) {
			colors[code] = row[cellStart+i]
		}
		p, err := New(row[0], row[1], k, legacy, colors)
		if err != nil {
			return nil, fmt.Errorf("palette csv line %d: %w", line, err)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

func dimensionFor(cells int) (int, error) {
	switch cells {
	case 9:
		return 3, nil
	case 16:
		return 4, nil
	}
	return 0, fmt.Errorf("palette csv has %d cell columns, want 9 (k=3) or 16 (k=4)", cells)
}
