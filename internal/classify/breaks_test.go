package classify

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestComputeBreaksEqualInterval(t *testing.T) {
	// Range [0, 9] split into three equal bins: breaks at 3 and 6.
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	bs, err := ComputeBreaks("a", values, 3, MethodEqualInterval)
	if err != nil {
		t.Fatalf("ComputeBreaks failed: %v", err)
	}
	want := []float64{3, 6}
	if diff := cmp.Diff(want, bs.Breaks); diff != "" {
		t.Errorf("breaks mismatch (-want +got):\n%s", diff)
	}
	if bs.K != 3 || bs.Method != MethodEqualInterval {
		t.Errorf("BreakSet metadata = (%d, %s)", bs.K, bs.Method)
	}
}

func TestComputeBreaksQuantile(t *testing.T) {
	// Seven samples, k=3: the fractional indices 2 and 4 land exactly on
	// the 3rd and 5th order statistics.
	values := []float64{7, 1, 6, 2, 5, 3, 4}
	bs, err := ComputeBreaks("a", values, 3, MethodQuantile)
	if err != nil {
		t.Fatalf("ComputeBreaks failed: %v", err)
	}
	want := []float64{3, 5}
	if diff := cmp.Diff(want, bs.Breaks); diff != "" {
		t.Errorf("breaks mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBreaksQuantileInterpolates(t *testing.T) {
	// Nine samples, k=3: the tercile indices fall between samples, so
	// the boundaries interpolate to 3.667 and 6.333 rather than snapping
	// to the nearest samples.
	values := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	bs, err := ComputeBreaks("a", values, 3, MethodQuantile)
	if err != nil {
		t.Fatalf("ComputeBreaks failed: %v", err)
	}
	want := []float64{3 + 2.0/3.0, 6 + 1.0/3.0}
	if diff := cmp.Diff(want, bs.Breaks, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("breaks mismatch (-want +got):\n%s", diff)
	}

	// A value between the 3rd sample and the interpolated boundary stays
	// in the first class.
	if got := Classify(3.5, bs); got != 1 {
		t.Errorf("Classify(3.5) = %d, want 1", got)
	}
}

func TestComputeBreaksQuantileQuartiles(t *testing.T) {
	// Eight samples, k=4: quartile indices 1.75, 3.5 and 5.25.
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80}
	bs, err := ComputeBreaks("a", values, 4, MethodQuantile)
	if err != nil {
		t.Fatalf("ComputeBreaks failed: %v", err)
	}
	want := []float64{27.5, 45, 62.5}
	if diff := cmp.Diff(want, bs.Breaks); diff != "" {
		t.Errorf("breaks mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBreaksExcludesNaN(t *testing.T) {
	values := []float64{nan(), 0, 3, 6, 9, nan()}
	bs, err := ComputeBreaks("a", values, 3, MethodEqualInterval)
	if err != nil {
		t.Fatalf("ComputeBreaks failed: %v", err)
	}
	want := []float64{3, 6}
	if diff := cmp.Diff(want, bs.Breaks); diff != "" {
		t.Errorf("breaks mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBreaksInsufficientVariance(t *testing.T) {
	values := []float64{5, 5, 5, 7, 7, 7}
	_, err := ComputeBreaks("rainfall", values, 3, MethodQuantile)
	var ive *InsufficientVarianceError
	if !errors.As(err, &ive) {
		t.Fatalf("expected InsufficientVarianceError, got %v", err)
	}
	if ive.Variable != "rainfall" || ive.K != 3 || ive.Distinct != 2 {
		t.Errorf("error fields = %+v", ive)
	}
}

func TestComputeBreaksRejectsBadK(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	for _, k := range []int{0, 1, 2, 5, 10} {
		if _, err := ComputeBreaks("a", values, k, MethodEqualInterval); err == nil {
			t.Errorf("k=%d should be rejected", k)
		}
	}
}

func TestNewManualBreakSet(t *testing.T) {
	bs, err := NewManualBreakSet([]float64{0.33, 0.66}, 3)
	if err != nil {
		t.Fatalf("NewManualBreakSet failed: %v", err)
	}
	if bs.Method != MethodManual || bs.K != 3 {
		t.Errorf("BreakSet metadata = (%d, %s)", bs.K, bs.Method)
	}

	if _, err := NewManualBreakSet([]float64{0.66, 0.33}, 3); err == nil {
		t.Error("descending breaks should be rejected")
	}
	if _, err := NewManualBreakSet([]float64{0.5, 0.5}, 3); err == nil {
		t.Error("duplicate breaks should be rejected")
	}
	if _, err := NewManualBreakSet([]float64{0.5}, 3); err == nil {
		t.Error("wrong boundary count should be rejected")
	}
}

func TestParseMethod(t *testing.T) {
	for _, s := range []string{"equal-interval", "quantile", "manual"} {
		if _, err := ParseMethod(s); err != nil {
			t.Errorf("ParseMethod(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseMethod("jenks"); err == nil {
		t.Error("unknown method should be rejected")
	}
}

func TestFormatBreak(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0.33, "0.33"},
		{3, "3"},
		{1234.5678, "1235"},
		{0.000123456, "0.0001235"},
	}
	for _, c := range cases {
		if got := FormatBreak(c.v); got != c.want {
			t.Errorf("FormatBreak(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
