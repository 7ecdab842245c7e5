package metrics

import (
	"math"
)

// Sanitize converts an arbitrary numeric result into a dense array of exactly
// n entries where every entry is either finite or NaN. Positive and negative
// infinities become NaN, finite values and existing NaNs pass through
// unchanged. Shorter inputs are padded with NaN, longer inputs truncated;
// Sanitize never fails.
func Sanitize(values []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	for i := 0; i < n && i < len(values); i++ {
		if math.IsInf(values[i], 0) {
			continue
		}
		out[i] = values[i]
	}
	return out
}

// NaNArray returns an array of n NaN entries, the all-missing column used for
// metrics that produced no values.
func NaNArray(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
