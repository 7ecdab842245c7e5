package metrics

import (
	"math"
)

// MinMaxNormalize rescales the valid (non-NaN) entries of a column onto
// [0, 1], preserving NaN entries positionally. A column with no valid entries
// is returned unchanged. A degenerate column where all valid entries are equal
// maps every valid entry to 0 rather than dividing by zero.
func MinMaxNormalize(values []float64) []float64 {
	out := append([]float64(nil), values...)

	min := math.Inf(1)
	max := math.Inf(-1)
	anyValid := false
	for _, v := range out {
		if math.IsNaN(v) {
			continue
		}
		anyValid = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if !anyValid {
		return out
	}

	if max == min {
		for i, v := range out {
			if !math.IsNaN(v) {
				out[i] = 0.0
			}
		}
		return out
	}

	scale := max - min
	for i, v := range out {
		if !math.IsNaN(v) {
			out[i] = (v - min) / scale
		}
	}
	return out
}
