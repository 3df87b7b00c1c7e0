package style

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var levelNames = map[int][]string{
	3: {"Low", "Medium", "High"},
	4: {"Low", "Mid-Low", "Mid-High", "High"},
}

// Label describes one class pair the way map legends word it, e.g.
// "High A, Low B".
func Label(classX, classY, k int) string {
	names, ok := levelNames[k]
	if !ok || classX < 1 || classX > k || classY < 1 || classY > k {
		return fmt.Sprintf("%d,%d", classX, classY)
	}
	return fmt.Sprintf("%s A, %s B", names[classX-1], names[classY-1])
}

// WriteColorTableCSV writes the full symbology table for the palette
// behind t: one row per combined code, whether or not the code occurs
// in the data, plus a trailing nodata row. The GIS host applies this
// directly as a value->colour map.
func WriteColorTableCSV(w io.Writer, t *ColorTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "class_x", "class_y", "label", "color"}); err != nil {
		return fmt.Errorf("write colour table header: %w", err)
	}

	for _, e := range t.Palette.Entries() {
		row := []string{
			strconv.Itoa(e.Code),
			strconv.Itoa(e.ClassX),
			strconv.Itoa(e.ClassY),
			Label(e.ClassX, e.ClassY, t.Palette.K),
			e.Color,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write colour table code %d: %w", e.Code, err)
		}
	}
	if err := cw.Write([]string{"0", "0", "0", "No data", t.NodataColor}); err != nil {
		return fmt.Errorf("write colour table nodata row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write colour table: %w", err)
	}
	return nil
}
