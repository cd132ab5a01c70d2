package core

import (
	"fmt"
	"math"
)

// MaxAbsDiff returns the largest |a[i]-b[i]| and the index where it occurs.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, int, error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("core: length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff, at := 0.0, -1
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff || at < 0 {
			maxDiff, at = d, i
		}
	}
	return maxDiff, at, nil
}

// Float32Error returns the absolute error introduced by storing x as float32.
func Float32Error(x float64) float64 {
	return math.Abs(float64(float32(x)) - x)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
