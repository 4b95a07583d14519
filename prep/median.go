package prep

import (
	"math"
	"sort"
)

// median returns the midpoint of the sorted values: the middle order
// statistic for odd n, the average of the two middle ones for even n.
// Returns NaN for an empty input.
func median(values []float64) float64 {
	return quantile(values, 0.5)
}

// quantile returns the p-quantile of values (0 ≤ p ≤ 1) using linear
// interpolation between order statistics, the convention numeric frame
// libraries use for describe/median. Returns NaN for an empty input.
func quantile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// observed filters NaN entries out of values.
func observed(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
