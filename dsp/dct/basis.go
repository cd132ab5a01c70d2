package dct

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

var (
	ErrInvalidSize = errors.New("dct: size must be >= 2")
	ErrZeroNorm    = errors.New("dct: basis row has zero norm")
)

// Scale holds the two normalization constants of the forward transform.
// Row 0 is scaled by Y, rows k > 0 by X*Y.
type Scale struct {
	X float64
	Y float64
}

// FirmwareScale returns the constants of the firmware transform for size n:
// X = √2 and Y = 0.5·√(2/(n−1)). They are a fixed external contract.
func FirmwareScale(n int) (Scale, error) {
	if n < 2 {
		return Scale{}, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return Scale{
		X: math.Sqrt2,
		Y: 0.5 * math.Sqrt(2.0/float64(n-1)),
	}, nil
}

// rowGain returns the scale applied to basis row k.
func (s Scale) rowGain(k int) float64 {
	if k == 0 {
		return s.Y
	}
	return s.X * s.Y
}

// kernel returns cos(πk(2n+1)/(2N)).
func kernel(k, n, size int) float64 {
	return math.Cos(math.Pi * float64(k) * float64(2*n+1) / float64(2*size))
}

// Forward builds the n x n forward basis F with F[k][n] = gain(k)·cos(πk(2n+1)/(2N)).
func Forward(n int, s Scale) (*matrix.Matrix, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	f, err := matrix.New(n, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		row := f.Row(k)
		for i := range row {
			row[i] = kernel(k, i, n)
		}
		vecmath.ScaleBlock(row, row, s.rowGain(k))
	}
	return f, nil
}

// Inverse returns G with G[n][k] = F[k][n] / ‖F[k]‖². G·F is the identity
// whenever the rows of the square matrix f are pairwise orthogonal.
func Inverse(f *matrix.Matrix) (*matrix.Matrix, error) {
	n := f.Rows()
	if err := f.CheckShape(n, n); err != nil {
		return nil, fmt.Errorf("dct: inverse needs a square basis: %w", err)
	}

	norms := f.RowSquaredNorms()
	scaled, err := matrix.New(n, n)
	if err != nil {
		return nil, err
	}
	for k, norm := range norms {
		if norm == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrZeroNorm, k)
		}
		vecmath.ScaleBlock(scaled.Row(k), f.Row(k), 1/norm)
	}
	return scaled.Transpose(), nil
}

// Basis is a forward basis together with its derived inverse.
type Basis struct {
	Scale   Scale
	Forward *matrix.Matrix
	Inverse *matrix.Matrix
}

// Size returns the transform length N.
func (b *Basis) Size() int { return b.Forward.Rows() }

// NewBasis synthesizes the firmware forward basis of size n and derives its inverse.
func NewBasis(n int) (*Basis, error) {
	s, err := FirmwareScale(n)
	if err != nil {
		return nil, err
	}
	return NewBasisWithScale(n, s)
}

// NewBasisWithScale is NewBasis with caller-supplied normalization constants.
func NewBasisWithScale(n int, s Scale) (*Basis, error) {
	f, err := Forward(n, s)
	if err != nil {
		return nil, err
	}
	g, err := Inverse(f)
	if err != nil {
		return nil, err
	}
	return &Basis{Scale: s, Forward: f, Inverse: g}, nil
}
