package bivar

import (
	"testing"

	"github.com/banshee-data/bivariate.report/internal/classify"
)

func TestEncodeDecodeBijection(t *testing.T) {
	for _, k := range []int{3, 4} {
		seen := make(map[int]bool)
		for x := 1; x <= k; x++ {
			for y := 1; y <= k; y++ {
				code, err := Encode(x, y, k)
				if err != nil {
					t.Fatalf("Encode(%d,%d,%d) failed: %v", x, y, k, err)
				}
				if seen[code] {
					t.Fatalf("code %d produced twice for k=%d", code, k)
				}
				seen[code] = true

				gx, gy, err := Decode(code, k)
				if err != nil {
					t.Fatalf("Decode(%d,%d) failed: %v", code, k, err)
				}
				if gx != x || gy != y {
					t.Errorf("Decode(Encode(%d,%d)) = (%d,%d)", x, y, gx, gy)
				}
			}
		}
		if len(seen) != k*k {
			t.Errorf("k=%d produced %d codes, want %d", k, len(seen), k*k)
		}
	}
}

func TestEncodeConvention(t *testing.T) {
	code, err := Encode(2, 3, 3)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code != 23 {
		t.Errorf("Encode(2,3,3) = %d, want 23", code)
	}
}

func TestEncodeRange(t *testing.T) {
	cases := []struct{ x, y, k int }{
		{0, 1, 3}, {1, 0, 3}, {4, 1, 3}, {1, 4, 3}, {5, 5, 4}, {-1, 2, 3},
	}
	for _, c := range cases {
		if _, err := Encode(c.x, c.y, c.k); err == nil {
			t.Errorf("Encode(%d,%d,%d) should fail", c.x, c.y, c.k)
		}
	}
	for _, k := range []int{1, 2, 5, 9} {
		if _, err := Encode(1, 1, k); err == nil {
			t.Errorf("k=%d should be rejected", k)
		}
	}
}

func TestDecodeRejectsInvalidCodes(t *testing.T) {
	for _, code := range []int{0, 10, 14, 34, 41, 55, 99} {
		if _, _, err := Decode(code, 3); err == nil {
			t.Errorf("Decode(%d, 3) should fail", code)
		}
	}
	// 14 and 41 are valid once k=4.
	for _, code := range []int{14, 41, 44} {
		if _, _, err := Decode(code, 4); err != nil {
			t.Errorf("Decode(%d, 4) failed: %v", code, err)
		}
	}
}

func TestEncodeCellNodata(t *testing.T) {
	for _, c := range []struct{ x, y int }{
		{classify.Nodata, 2},
		{2, classify.Nodata},
		{classify.Nodata, classify.Nodata},
	} {
		code, err := EncodeCell(c.x, c.y, 3)
		if err != nil {
			t.Fatalf("EncodeCell(%d,%d) failed: %v", c.x, c.y, err)
		}
		if code != Nodata {
			t.Errorf("EncodeCell(%d,%d) = %d, want nodata", c.x, c.y, code)
		}
	}

	code, err := EncodeCell(3, 1, 3)
	if err != nil || code != 31 {
		t.Errorf("EncodeCell(3,1) = %d, %v; want 31", code, err)
	}
}

func TestCodes(t *testing.T) {
	got := Codes(3)
	want := []int{11, 12, 13, 21, 22, 23, 31, 32, 33}
	if len(got) != len(want) {
		t.Fatalf("Codes(3) has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Codes(3)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if n := len(Codes(4)); n != 16 {
		t.Errorf("Codes(4) has %d entries, want 16", n)
	}
}
