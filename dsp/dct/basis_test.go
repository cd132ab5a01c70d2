package dct

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
	"github.com/cwbudde/algo-pcadct/internal/testutil"
)

func TestFirmwareScale(t *testing.T) {
	s, err := FirmwareScale(257)
	if err != nil {
		t.Fatalf("FirmwareScale: %v", err)
	}
	if s.X != math.Sqrt2 {
		t.Fatalf("X=%v want=%v", s.X, math.Sqrt2)
	}
	if math.Abs(s.Y-1/math.Sqrt(512)) > 1e-15 {
		t.Fatalf("Y=%v want=%v", s.Y, 1/math.Sqrt(512))
	}

	for _, n := range []int{-1, 0, 1} {
		if _, err := FirmwareScale(n); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("FirmwareScale(%d) err=%v want ErrInvalidSize", n, err)
		}
	}
}

func TestForwardEntries(t *testing.T) {
	s, _ := FirmwareScale(4)
	f, err := Forward(4, s)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	for n := 0; n < 4; n++ {
		if math.Abs(f.At(0, n)-s.Y) > 1e-15 {
			t.Fatalf("F[0][%d]=%v want=%v", n, f.At(0, n), s.Y)
		}
	}
	want := s.X * s.Y * math.Cos(math.Pi*2*5/8)
	if math.Abs(f.At(2, 2)-want) > 1e-15 {
		t.Fatalf("F[2][2]=%v want=%v", f.At(2, 2), want)
	}
}

func TestForwardRowsOrthogonal(t *testing.T) {
	for _, n := range []int{2, 3, 8, 33} {
		s, _ := FirmwareScale(n)
		f, _ := Forward(n, s)
		gram := make([]float64, n)
		for j := 0; j < n; j++ {
			// Column j of F·Fᵀ is F times row j of F.
			if err := f.MulVec(gram, f.Row(j)); err != nil {
				t.Fatalf("MulVec: %v", err)
			}
			for k, v := range gram {
				if k != j && math.Abs(v) > 1e-12 {
					t.Fatalf("n=%d: <F[%d],F[%d]>=%v want 0", n, k, j, v)
				}
			}
		}
	}
}

func TestRowNormsAreEqual(t *testing.T) {
	// With X=√2, row 0 and rows k>0 both have squared norm N·Y².
	n := 257
	s, _ := FirmwareScale(n)
	f, _ := Forward(n, s)
	want := float64(n) * s.Y * s.Y
	for k, norm := range f.RowSquaredNorms() {
		if math.Abs(norm-want) > 1e-12 {
			t.Fatalf("norm(%d)=%v want=%v", k, norm, want)
		}
	}
}

func TestInverseEntries(t *testing.T) {
	b, err := NewBasis(5)
	if err != nil {
		t.Fatalf("NewBasis: %v", err)
	}
	norms := b.Forward.RowSquaredNorms()
	for n := 0; n < 5; n++ {
		for k := 0; k < 5; k++ {
			want := b.Forward.At(k, n) / norms[k]
			if math.Abs(b.Inverse.At(n, k)-want) > 1e-15 {
				t.Fatalf("G[%d][%d]=%v want=%v", n, k, b.Inverse.At(n, k), want)
			}
		}
	}
}

func TestRoundTripScenarioN4(t *testing.T) {
	b, err := NewBasis(4)
	if err != nil {
		t.Fatalf("NewBasis: %v", err)
	}
	x := []float64{0, 1, 0, 0}
	spec := make([]float64, 4)
	rec := make([]float64, 4)
	if err := b.Forward.MulVec(spec, x); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if err := b.Inverse.MulVec(rec, spec); err != nil {
		t.Fatalf("inverse: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, rec, x, 1e-6)
}

func TestRoundTripEveryBasisVector(t *testing.T) {
	for _, n := range []int{2, 3, 4, 16, 47, 257} {
		b, err := NewBasis(n)
		if err != nil {
			t.Fatalf("NewBasis(%d): %v", n, err)
		}
		if b.Size() != n {
			t.Fatalf("Size=%d want=%d", b.Size(), n)
		}
		spec := make([]float64, n)
		rec := make([]float64, n)
		for j := 0; j < n; j++ {
			x := core.UnitVector(n, j)
			_ = b.Forward.MulVec(spec, x)
			_ = b.Inverse.MulVec(rec, spec)
			testutil.RequireSliceNearlyEqual(t, rec, x, 1e-6)
		}
	}
}

func TestRoundTripNoise(t *testing.T) {
	b, _ := NewBasis(257)
	x := testutil.DeterministicNoise(3, 1, 257)
	spec := make([]float64, 257)
	rec := make([]float64, 257)
	_ = b.Forward.MulVec(spec, x)
	_ = b.Inverse.MulVec(rec, spec)
	testutil.RequireFinite(t, rec)
	testutil.RequireSliceNearlyEqual(t, rec, x, 1e-9)
}

func TestInverseRejectsNonSquare(t *testing.T) {
	m, _ := matrix.New(2, 3)
	if _, err := Inverse(m); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("err=%v want ErrDimensionMismatch", err)
	}
}

func TestInverseRejectsZeroRow(t *testing.T) {
	if _, err := NewBasisWithScale(4, Scale{X: 1, Y: 0}); !errors.Is(err, ErrZeroNorm) {
		t.Fatalf("err=%v want ErrZeroNorm", err)
	}
}

func TestNewBasisInvalidSize(t *testing.T) {
	if _, err := NewBasis(1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err=%v want ErrInvalidSize", err)
	}
	if _, err := Forward(0, Scale{X: 1, Y: 1}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err=%v want ErrInvalidSize", err)
	}
}
