package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/banshee-data/bivariate.report/internal/bivar"
	"github.com/banshee-data/bivariate.report/internal/palette"
)

// DefaultNodataColor renders masked cells visibly distinct from every
// built-in scheme instead of hiding them.
const DefaultNodataColor = "#CCCCCC"

// ColorTable maps the combined codes present in one dataset to their
// palette colours. Built by Resolve; read-only afterward.
type ColorTable struct {
	Palette     *palette.Palette
	NodataColor string

	colors map[int]string
}

// PaletteCoverageError reports codes present in the data that the
// chosen palette does not cover. Nothing may be written once this is
// raised.
type PaletteCoverageError struct {
	Palette string
	Missing []int
}

func (e *PaletteCoverageError) Error() string {
	codes := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		codes[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("palette %q does not cover codes present in the data: %s",
		e.Palette, strings.Join(codes, ", "))
}

// Resolve builds the colour table for the given codes. Every
// non-nodata code must decode within the palette's dimension and exist
// in its table; otherwise the resolve fails and no output may be
// produced. nodataColor may be empty to take the default.
func Resolve(codes []int, p *palette.Palette, nodataColor string) (*ColorTable, error) {
	if nodataColor == "" {
		nodataColor = DefaultNodataColor
	}
	norm, err := palette.NormalizeHex(nodataColor)
	if err != nil {
		return nil, fmt.Errorf("nodata colour: %w", err)
	}

	table := &ColorTable{
		Palette:     p,
		NodataColor: norm,
		colors:      make(map[int]string),
	}

	var missing []int
	for _, code := range codes {
		if code == bivar.Nodata {
			continue
		}
		if _, seen := table.colors[code]; seen {
			continue
		}
		x, y := code/10, code%10
		if x < 1 || y < 1 {
			return nil, fmt.Errorf("combined code %d is not a valid class pair", code)
		}
		if x > p.K || y > p.K {
			return nil, &palette.DimensionMismatchError{Name: p.Name, Want: maxClass(code), Have: p.K}
		}
		c, ok := p.Color(code)
		if !ok {
			missing = append(missing, code)
			continue
		}
		table.colors[code] = c
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, &PaletteCoverageError{Palette: p.Name, Missing: missing}
	}
	return table, nil
}

// Color returns the display colour for a code; the nodata code maps to
// the nodata display colour.
func (t *ColorTable) Color(code int) (string, bool) {
	if code == bivar.Nodata {
		return t.NodataColor, true
	}
	c, ok := t.colors[code]
	return c, ok
}

// Codes returns the sorted non-nodata codes the table covers.
func (t *ColorTable) Codes() []int {
	out := make([]int, 0, len(t.colors))
	for code := range t.colors {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}

func maxClass(code int) int {
	x, y := code/10, code%10
	if x > y {
		return x
	}
	return y
}
