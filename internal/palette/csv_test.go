package palette

import (
	"bytes"
	"strings"
	"testing"

	"github.com/banshee-data/bivariate.report/internal/bivar"
)

func TestCSVRoundTrip(t *testing.T) {
	for _, k := range []int{3, 4} {
		var in []*Palette
		for _, p := range Default().All() {
			if p.K == k {
				in = append(in, p)
			}
		}
		if len(in) == 0 {
			t.Fatalf("no built-in palettes for k=%d", k)
		}

		var buf bytes.Buffer
		if err := WriteCSV(&buf, k, in); err != nil {
			t.Fatalf("WriteCSV(k=%d) failed: %v", k, err)
		}

		out, err := ReadCSV(&buf)
		if err != nil {
			t.Fatalf("ReadCSV(k=%d) failed: %v", k, err)
		}
		if len(out) != len(in) {
			t.Fatalf("round-trip produced %d palettes, want %d", len(out), len(in))
		}
		for i := range in {
			if !in[i].Equal(out[i]) {
				t.Errorf("palette %q did not survive the round-trip", in[i].Name)
			}
			for _, code := range bivar.Codes(k) {
				a, _ := in[i].Color(code)
				b, _ := out[i].Color(code)
				if a != b {
					t.Errorf("palette %q code %d: %s vs %s", in[i].Name, code, a, b)
				}
			}
		}
	}
}

func TestWriteCSVRejectsMixedDimensions(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, 3, Default().All())
	if err == nil {
		t.Fatal("mixed dimensions should be rejected")
	}
}

func TestReadCSVWithoutLegacyColumn(t *testing.T) {
	src := "palette_name,tag,11,12,13,21,22,23,31,32,33\n" +
		"Mono,grey,#111111,#222222,#333333,#444444,#555555,#666666,#777777,#888888,#999999\n"
	ps, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(ps) != 1 || ps[0].Name != "Mono" || ps[0].Legacy {
		t.Errorf("loaded palette = %+v", ps[0])
	}
	if c, _ := ps[0].Color(22); c != "#555555" {
		t.Errorf("code 22 = %s, want #555555", c)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"bad header", "nome,tag,11\nX,t,#FFFFFF\n"},
		{"bad cell count", "palette_name,tag,11,12\nX,t,#FFFFFF,#000000\n"},
		{"bad column order", "palette_name,tag,12,11,13,21,22,23,31,32,33\nX,t,#111111,#222222,#333333,#444444,#555555,#666666,#777777,#888888,#999999\n"},
		{"bad colour", "palette_name,tag,11,12,13,21,22,23,31,32,33\nX,t,nothex,#222222,#333333,#444444,#555555,#666666,#777777,#888888,#999999\n"},
	}
	for _, c := range cases {
		if _, err := ReadCSV(strings.NewReader(c.src)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
