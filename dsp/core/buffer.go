package core

// EnsureLen resizes a scratch buffer to n values. The old backing array is
// kept when it is large enough; contents are unspecified either way.
func EnsureLen(scratch []float64, n int) []float64 {
	switch {
	case n <= 0:
		return scratch[:0]
	case cap(scratch) < n:
		return make([]float64, n)
	default:
		return scratch[:n]
	}
}

// Sum returns the sum of buf.
func Sum(buf []float64) float64 {
	s := 0.0
	for _, v := range buf {
		s += v
	}
	return s
}

// UnitVector returns a length-n vector that is zero except for a one at pos.
// Out-of-range positions yield the zero vector.
func UnitVector(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}
