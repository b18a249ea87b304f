package perf

import (
	"cmp"
	"math"
	"slices"
)

const (
	weightDecay  = 0.95
	topPlayLimit = 100
)

// WeightedTotal computes the classic total-PP sum: values sorted
// descending, only the top 100 counted, the value at rank i weighted by
// 0.95^i. The input slice is not modified. Bonus PP is not modeled.
func WeightedTotal(pps []float64) float64 {
	sorted := slices.Clone(pps)
	slices.SortFunc(sorted, func(a, b float64) int {
		return cmp.Compare(b, a)
	})
	if len(sorted) > topPlayLimit {
		sorted = sorted[:topPlayLimit]
	}
	total := 0.0
	for i, pp := range sorted {
		total += pp * math.Pow(weightDecay, float64(i))
	}
	return total
}
