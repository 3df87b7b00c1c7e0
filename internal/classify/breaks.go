package classify

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Method selects how class boundaries are computed.
type Method string

const (
	MethodEqualInterval Method = "equal-interval"
	MethodQuantile      Method = "quantile"
	MethodManual        Method = "manual"
)

// ParseMethod converts a user-supplied method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodEqualInterval, MethodQuantile, MethodManual:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown classification method %q (want equal-interval, quantile or manual)", s)
}

// MinClasses and MaxClasses bound the supported class dimension. The
// combined-code convention (classX*10 + classY) requires k <= 9; the
// palette families ship 3x3 and 4x4 tables.
const (
	MinClasses = 3
	MaxClasses = 4
)

// Nodata is the class index assigned to masked samples. Real classes
// start at 1.
const Nodata = 0

// BreakSet holds the k-1 strictly increasing class boundaries for one
// variable. Immutable once computed.
type BreakSet struct {
	Breaks []float64
	K      int
	Method Method
}

// InsufficientVarianceError reports that a variable has too few
// distinct valid values to produce strictly increasing breaks.
type InsufficientVarianceError struct {
	Variable string
	K        int
	Distinct int
}

func (e *InsufficientVarianceError) Error() string {
	return fmt.Sprintf("variable %q has only %d distinct valid values, need at least %d for %d classes",
		e.Variable, e.Distinct, e.K, e.K)
}

// CheckK validates the requested class dimension.
func CheckK(k int) error {
	if k < MinClasses || k > MaxClasses {
		return fmt.Errorf("class dimension must be %d or %d, got %d", MinClasses, MaxClasses, k)
	}
	return nil
}

// ComputeBreaks derives a BreakSet from the valid samples of a
// variable. NaN and infinite samples are excluded before any
// statistics. Name is only used in error messages.
func ComputeBreaks(name string, values []float64, k int, method Method) (BreakSet, error) {
	if err := CheckK(k); err != nil {
		return BreakSet{}, err
	}
	if method == MethodManual {
		return BreakSet{}, fmt.Errorf("manual method requires explicit breaks, use NewManualBreakSet")
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if distinct := countDistinct(finite); distinct < k {
		return BreakSet{}, &InsufficientVarianceError{Variable: name, K: k, Distinct: distinct}
	}

	breaks := make([]float64, k-1)
	switch method {
	case MethodEqualInterval:
		min, max := floats.Min(finite), floats.Max(finite)
		width := (max - min) / float64(k)
		for i := 1; i < k; i++ {
			breaks[i-1] = min + float64(i)*width
		}
	case MethodQuantile:
		sorted := make([]float64, len(finite))
		copy(sorted, finite)
		sort.Float64s(sorted)
		for i := 1; i < k; i++ {
			breaks[i-1] = quantileBreak(sorted, i, k)
		}
	default:
		return BreakSet{}, fmt.Errorf("unknown classification method %q", method)
	}

	bs := BreakSet{Breaks: breaks, K: k, Method: method}
	if err := bs.validate(); err != nil {
		// Quantile boundaries collapse when the distribution is heavily
		// tied; report it as a variance problem, which it is.
		return BreakSet{}, &InsufficientVarianceError{Variable: name, K: k, Distinct: countDistinct(breaks)}
	}
	return bs, nil
}

// quantileBreak returns the i/k quantile of the sorted samples,
// interpolating linearly between the two order statistics that bracket
// the fractional index i*(n-1)/k.
func quantileBreak(sorted []float64, i, k int) float64 {
	h := float64(i*(len(sorted)-1)) / float64(k)
	lo := int(h)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// NewManualBreakSet validates caller-supplied boundaries.
func NewManualBreakSet(breaks []float64, k int) (BreakSet, error) {
	if err := CheckK(k); err != nil {
		return BreakSet{}, err
	}
	if len(breaks) != k-1 {
		return BreakSet{}, fmt.Errorf("manual breaks need %d boundaries for %d classes, got %d", k-1, k, len(breaks))
	}
	own := make([]float64, len(breaks))
	copy(own, breaks)
	bs := BreakSet{Breaks: own, K: k, Method: MethodManual}
	if err := bs.validate(); err != nil {
		return BreakSet{}, err
	}
	return bs, nil
}

func (bs BreakSet) validate() error {
	for i, b := range bs.Breaks {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("break %d is not finite", i+1)
		}
		if i > 0 && bs.Breaks[i-1] >= b {
			return fmt.Errorf("breaks must be strictly increasing: break %d (%v) >= break %d (%v)",
				i, bs.Breaks[i-1], i+1, b)
		}
	}
	return nil
}

// Labels formats the break boundaries the way the legend shows them.
func (bs BreakSet) Labels() []string {
	out := make([]string, len(bs.Breaks))
	for i, b := range bs.Breaks {
		out[i] = FormatBreak(b)
	}
	return out
}

// FormatBreak is the single formatting used for thresholds in run
// summaries and legend axis ticks.
func FormatBreak(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func countDistinct(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
