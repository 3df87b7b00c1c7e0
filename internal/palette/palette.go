package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/banshee-data/bivariate.report/internal/bivar"
)

// Palette is a complete mapping from every combined class code of one
// dimension k to a display colour. Instances are immutable after New;
// the colour table is not exposed for mutation.
type Palette struct {
	Name string
	// Tag is the human-readable hue family description.
	Tag string
	K   int
	// Legacy marks the older variant of a hue family that also ships
	// an extended scheme under the same name.
	Legacy bool

	colors map[int]string
}

// Entry is one palette cell in row-major enumeration order.
type Entry struct {
	Code           int
	ClassX, ClassY int
	Color          string
}

// UnknownPaletteError reports a lookup for a name the registry has
// never seen, or a family that lacks the requested variant.
type UnknownPaletteError struct {
	Name string
	// Variant is "legacy" or "current" when the family exists at the
	// requested dimension but not in the requested variant.
	Variant string
}

func (e *UnknownPaletteError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("palette %q has no %s variant", e.Name, e.Variant)
	}
	return fmt.Sprintf("unknown palette %q", e.Name)
}

// DimensionMismatchError reports a palette used with the wrong class
// dimension: the family exists but not at the requested k, or the data
// carries codes the palette's k cannot cover.
type DimensionMismatchError struct {
	Name       string
	Want, Have int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("palette %q has dimension %dx%d, need %dx%d", e.Name, e.Have, e.Have, e.Want, e.Want)
}

// New validates and builds a Palette. The colour table must hold
// exactly k*k entries, one per valid combined code, each a 6-hex-digit
// RGB colour (leading '#' optional on input, normalised to upper-case
// "#RRGGBB" internally).
func New(name, tag string, k int, legacy bool, colors map[int]string) (*Palette, error) {
	if name == "" {
		return nil, fmt.Errorf("palette name must not be empty")
	}
	if len(colors) != k*k {
		return nil, fmt.Errorf("palette %q needs %d colours for %d classes, got %d", name, k*k, k, len(colors))
	}
	normalized := make(map[int]string, len(colors))
	for _, code := range bivar.Codes(k) {
		hex, ok := colors[code]
		if !ok {
			return nil, fmt.Errorf("palette %q is missing code %d", name, code)
		}
		norm, err := NormalizeHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q code %d: %w", name, code, err)
		}
		normalized[code] = norm
	}
	return &Palette{Name: name, Tag: tag, K: k, Legacy: legacy, colors: normalized}, nil
}

// MustNew is New for the static built-in tables, where a bad entry is a
// programming error.
func MustNew(name, tag string, k int, legacy bool, colors map[int]string) *Palette {
	p, err := New(name, tag, k, legacy, colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the colour for a combined code.
func (p *Palette) Color(code int) (string, bool) {
	c, ok := p.colors[code]
	return c, ok
}

// Entries enumerates the palette row-major: classX ascending, classY
// ascending within it. This is the order the interchange format and
// the legend builder rely on.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, 0, p.K*p.K)
	for _, code := range bivar.Codes(p.K) {
		x, y, _ := bivar.Decode(code, p.K)
		out = append(out, Entry{Code: code, ClassX: x, ClassY: y, Color: p.colors[code]})
	}
	return out
}

// Equal reports whether two palettes are interchangeable: same
// identity, same dimension, same colour for every code.
func (p *Palette) Equal(q *Palette) bool {
	if p.Name != q.Name || p.Tag != q.Tag || p.K != q.K || p.Legacy != q.Legacy {
		return false
	}
	for code, c := range p.colors {
		if q.colors[code] != c {
			return false
		}
	}
	return true
}

// NormalizeHex validates a 6-hex-digit RGB colour and returns the
// canonical upper-case "#RRGGBB" form. The leading '#' is optional.
func NormalizeHex(s string) (string, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("colour %q must be 6 hex digits", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("colour %q is not valid hex", s)
	}
	return "#" + strings.ToUpper(hex), nil
}

// RGBA converts a normalised hex colour to an image/color value for
// the renderers.
func RGBA(hex string) (color.RGBA, error) {
	norm, err := NormalizeHex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	v, err := strconv.ParseUint(norm[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
