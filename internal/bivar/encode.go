package bivar

import (
	"fmt"

	"github.com/banshee-data/bivariate.report/internal/classify"
)

// Nodata is the combined code for masked samples. Real codes start at 11.
const Nodata = 0

// Encode combines two 1-indexed class indices into a single code,
// classX in the tens digit and classY in the ones digit.
func Encode(classX, classY, k int) (int, error) {
	if err := classify.CheckK(k); err != nil {
		return 0, err
	}
	if classX < 1 || classX > k {
		return 0, fmt.Errorf("classX %d out of range [1,%d]", classX, k)
	}
	if classY < 1 || classY > k {
		return 0, fmt.Errorf("classY %d out of range [1,%d]", classY, k)
	}
	return classX*10 + classY, nil
}

// Decode splits a combined code back into its class pair. It is the
// exact inverse of Encode for every valid pair.
func Decode(code, k int) (classX, classY int, err error) {
	if err := classify.CheckK(k); err != nil {
		return 0, 0, err
	}
	classX, classY = code/10, code%10
	if classX < 1 || classX > k || classY < 1 || classY > k {
		return 0, 0, fmt.Errorf("combined code %d is not valid for %d classes", code, k)
	}
	return classX, classY, nil
}

// EncodeCell is the per-sample form used during grid combination:
// nodata in either class yields the nodata code.
func EncodeCell(classX, classY, k int) (int, error) {
	if classX == classify.Nodata || classY == classify.Nodata {
		return Nodata, nil
	}
	return Encode(classX, classY, k)
}

// Codes enumerates every valid combined code for dimension k in
// row-major order (classX ascending, classY ascending within it).
func Codes(k int) []int {
	out := make([]int, 0, k*k)
	for x := 1; x <= k; x++ {
		for y := 1; y <= k; y++ {
			out = append(out, x*10+y)
		}
	}
	return out
}
