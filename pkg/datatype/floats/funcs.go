package floats

import (
	"math"
	"sort"
)

func Average(arr []float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}

// Median returns the median of arr, the mean of the two middle values for an even length.
// arr is not modified.
func Median(arr []float64) float64 {
	if len(arr) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(arr))
	copy(sorted, arr)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2.0
}

// MinMax returns the lowest and the highest finite values, skip is called to exclude values.
// ok is false when no value is left.
func MinMax(arr []float64, skip func(v float64) bool) (low, high float64, ok bool) {
	low, high = math.Inf(1), math.Inf(-1)
	for _, a := range arr {
		if !IsFinite(a) || (skip != nil && skip(a)) {
			continue
		}

		low = math.Min(low, a)
		high = math.Max(high, a)
		ok = true
	}

	if !ok {
		return 0, 0, false
	}

	return low, high, true
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func AllFinite(arr []float64) bool {
	for _, a := range arr {
		if !IsFinite(a) {
			return false
		}
	}
	return true
}

// Round rounds every value half to even, non-finite values become 0.
func Round(arr []float64) []float64 {
	out := make([]float64, len(arr))
	for i, a := range arr {
		if !IsFinite(a) {
			continue
		}
		out[i] = math.RoundToEven(a)
	}
	return out
}
