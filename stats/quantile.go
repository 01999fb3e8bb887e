package stats

import (
	"errors"
	"sort"
)

// ErrRankOutOfRange indicates a kth-value rank outside [1, len(values)].
var ErrRankOutOfRange = errors.New("stats: kth value rank out of range")

// KthValue returns the kth smallest element, with k counted from 1.
// The input slice is not modified.
func KthValue(values []float64, k int) (float64, error) {
	if k < 1 || k > len(values) {
		return 0, ErrRankOutOfRange
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[k-1], nil
}
