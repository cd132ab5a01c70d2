package dct

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transformer evaluates the forward transform X = F·x in O(N log N) without
// building F.
//
// The cosine sum Σ x[n] cos(πk(2n+1)/(2N)) is the real part of a length-4N
// DFT of x placed on the odd indices. Since 4N is generally not a power of
// two, that DFT is computed with Bluestein's chirp-z algorithm on top of a
// power-of-two FFT plan.
//
// A Transformer is not safe for concurrent use.
type Transformer struct {
	n     int
	scale Scale

	plan       *algofft.Plan[complex128]
	chirp      []complex128 // exp(-iπj²/M) for j < M = 4N
	kernelFreq []complex128 // FFT of the conjugate chirp, wrapped for circular convolution

	work []complex128
	freq []complex128
}

// NewTransformer prepares a fast forward transform of size n.
func NewTransformer(n int, s Scale) (*Transformer, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	m := 4 * n
	fftSize := nextPowerOf2(2*m - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("dct: failed to create FFT plan: %w", err)
	}

	chirp := make([]complex128, m)
	for j := range chirp {
		// j² mod 2M keeps the phase argument small.
		jj := (j * j) % (2 * m)
		chirp[j] = cmplx.Exp(complex(0, -math.Pi*float64(jj)/float64(m)))
	}

	kernel := make([]complex128, fftSize)
	kernel[0] = cmplx.Conj(chirp[0])
	for j := 1; j < m; j++ {
		kernel[j] = cmplx.Conj(chirp[j])
		kernel[fftSize-j] = kernel[j]
	}
	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(kernelFreq, kernel); err != nil {
		return nil, fmt.Errorf("dct: forward FFT failed: %w", err)
	}

	return &Transformer{
		n:          n,
		scale:      s,
		plan:       plan,
		chirp:      chirp,
		kernelFreq: kernelFreq,
		work:       make([]complex128, fftSize),
		freq:       make([]complex128, fftSize),
	}, nil
}

// Size returns the transform length N.
func (t *Transformer) Size() int { return t.n }

// Forward stores F·src in dst. Both slices must have length N.
func (t *Transformer) Forward(dst, src []float64) error {
	if len(src) != t.n || len(dst) != t.n {
		return fmt.Errorf("dct: transform of size %d got src=%d dst=%d", t.n, len(src), len(dst))
	}

	clear(t.work)
	for i, v := range src {
		j := 2*i + 1
		t.work[j] = complex(v, 0) * t.chirp[j]
	}

	if err := t.plan.Forward(t.freq, t.work); err != nil {
		return fmt.Errorf("dct: forward FFT failed: %w", err)
	}
	for i := range t.freq {
		t.freq[i] *= t.kernelFreq[i]
	}
	if err := t.plan.Inverse(t.work, t.freq); err != nil {
		return fmt.Errorf("dct: inverse FFT failed: %w", err)
	}

	for k := range dst {
		dst[k] = t.scale.rowGain(k) * real(t.chirp[k]*t.work[k])
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
