package verify

import (
	"fmt"

	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

// Forwarder computes a forward transform without an explicit matrix.
type Forwarder interface {
	Forward(dst, src []float64) error
}

// Spectral compares the explicit product f·x against an independent
// evaluation of the same transform and returns the largest absolute
// difference. It detects a basis that was synthesized with the wrong kernel
// or scaling, which the round-trip check alone cannot see.
func Spectral(f *matrix.Matrix, fwd Forwarder, x []float64) (float64, error) {
	n := f.Rows()
	if err := f.CheckShape(n, len(x)); err != nil {
		return 0, fmt.Errorf("verify: %w", err)
	}
	want := make([]float64, n)
	got := make([]float64, n)
	if err := f.MulVec(want, x); err != nil {
		return 0, fmt.Errorf("verify: %w", err)
	}
	if err := fwd.Forward(got, x); err != nil {
		return 0, fmt.Errorf("verify: fast transform: %w", err)
	}
	d, _, err := core.MaxAbsDiff(got, want)
	if err != nil {
		return 0, fmt.Errorf("verify: %w", err)
	}
	return d, nil
}
