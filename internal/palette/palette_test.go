package palette

import (
	"errors"
	"testing"

	"github.com/banshee-data/bivariate.report/internal/bivar"
)

func TestBuiltinCompleteness(t *testing.T) {
	for _, p := range Default().All() {
		entries := p.Entries()
		if len(entries) != p.K*p.K {
			t.Errorf("palette %q (k=%d) has %d entries, want %d", p.Name, p.K, len(entries), p.K*p.K)
		}
		seen := map[int]bool{}
		for _, e := range entries {
			if seen[e.Code] {
				t.Errorf("palette %q repeats code %d", p.Name, e.Code)
			}
			seen[e.Code] = true
			if _, err := NormalizeHex(e.Color); err != nil {
				t.Errorf("palette %q code %d: %v", p.Name, e.Code, err)
			}
		}
		for _, code := range bivar.Codes(p.K) {
			if _, ok := p.Color(code); !ok {
				t.Errorf("palette %q missing code %d", p.Name, code)
			}
		}
	}
}

func TestDkVioletCorners(t *testing.T) {
	// The 4x4 extension must keep the 3x3 family corners.
	p3, err := Default().Lookup("DkViolet", 3)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	p4, err := Default().Lookup("DkViolet", 4)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	corners := []struct{ c3, c4 int }{
		{11, 11}, {13, 14}, {31, 41}, {33, 44},
	}
	for _, c := range corners {
		a, _ := p3.Color(c.c3)
		b, _ := p4.Color(c.c4)
		if a != b {
			t.Errorf("corner %d/%d: %s vs %s", c.c3, c.c4, a, b)
		}
	}
}

func TestLookupErrors(t *testing.T) {
	r := Default()

	_, err := r.Lookup("NoSuchScheme", 3)
	var unknown *UnknownPaletteError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPaletteError, got %v", err)
	}
	if unknown.Name != "NoSuchScheme" {
		t.Errorf("error names %q, want NoSuchScheme", unknown.Name)
	}

	_, err = r.Lookup("GoldBlue", 4)
	var mismatch *DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected DimensionMismatchError, got %v", err)
	}
	if mismatch.Name != "GoldBlue" || mismatch.Want != 4 || mismatch.Have != 3 {
		t.Errorf("error fields = %+v", mismatch)
	}
}

func TestLookupVariantMissingVariant(t *testing.T) {
	// BlOrGn exists at k=3 only as the legacy variant. Asking for the
	// current one is a variant miss, not a dimension mismatch.
	_, err := Default().LookupVariant("BlOrGn", 3, false)
	var unknown *UnknownPaletteError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPaletteError, got %v", err)
	}
	if unknown.Name != "BlOrGn" || unknown.Variant != "current" {
		t.Errorf("error fields = %+v", unknown)
	}
	var mismatch *DimensionMismatchError
	if errors.As(err, &mismatch) {
		t.Errorf("same-dimension miss reported as dimension mismatch: %v", err)
	}

	_, err = Default().LookupVariant("GoldBlue", 3, true)
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPaletteError, got %v", err)
	}
	if unknown.Variant != "legacy" {
		t.Errorf("variant = %q, want legacy", unknown.Variant)
	}
}

func TestLookupLegacyFallback(t *testing.T) {
	// BlOrGn only ships a legacy variant; plain Lookup still finds it.
	p, err := Default().Lookup("BlOrGn", 3)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !p.Legacy {
		t.Error("BlOrGn should be the legacy variant")
	}

	if _, err := Default().LookupVariant("DkViolet", 3, false); err != nil {
		t.Errorf("LookupVariant failed: %v", err)
	}
}

func TestEntriesRowMajor(t *testing.T) {
	p, err := Default().Lookup("DkViolet", 3)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	entries := p.Entries()
	wantCodes := []int{11, 12, 13, 21, 22, 23, 31, 32, 33}
	for i, e := range entries {
		if e.Code != wantCodes[i] {
			t.Errorf("entry %d code = %d, want %d", i, e.Code, wantCodes[i])
		}
		if e.ClassX != e.Code/10 || e.ClassY != e.Code%10 {
			t.Errorf("entry %d classes = (%d,%d) for code %d", i, e.ClassX, e.ClassY, e.Code)
		}
	}
}

func TestNewValidation(t *testing.T) {
	colors := map[int]string{
		11: "#E8E8E8", 12: "#ADE2E5", 13: "#5AC8C9",
		21: "#DEB0D5", 22: "#A4ADD1", 23: "#5399B8",
		31: "#BE64AC", 32: "#8C62AA", 33: "#3A4893",
	}

	if _, err := New("ok", "t", 3, false, colors); err != nil {
		t.Errorf("valid palette rejected: %v", err)
	}

	short := map[int]string{11: "#FFFFFF"}
	if _, err := New("short", "t", 3, false, short); err == nil {
		t.Error("incomplete table should be rejected")
	}

	wrongCode := map[int]string{}
	for k, v := range colors {
		wrongCode[k] = v
	}
	delete(wrongCode, 33)
	wrongCode[44] = "#000000"
	if _, err := New("wrong", "t", 3, false, wrongCode); err == nil {
		t.Error("out-of-range code should be rejected")
	}

	badHex := map[int]string{}
	for k, v := range colors {
		badHex[k] = v
	}
	badHex[22] = "#GGGGGG"
	if _, err := New("badhex", "t", 3, false, badHex); err == nil {
		t.Error("invalid hex should be rejected")
	}
}

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		in, want string
		ok       bool
	}{
		{"#e8e8e8", "#E8E8E8", true},
		{"E8E8E8", "#E8E8E8", true},
		{" #3a4893 ", "#3A4893", true},
		{"#FFF", "", false},
		{"#GGGGGG", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := NormalizeHex(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("NormalizeHex(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("NormalizeHex(%q) should fail", c.in)
		}
	}
}

func TestRGBA(t *testing.T) {
	c, err := RGBA("#3A4893")
	if err != nil {
		t.Fatalf("RGBA failed: %v", err)
	}
	if c.R != 0x3A || c.G != 0x48 || c.B != 0x93 || c.A != 255 {
		t.Errorf("RGBA = %+v", c)
	}
}
