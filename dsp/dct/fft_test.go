package dct

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pcadct/internal/testutil"
)

func TestTransformerMatchesMatrix(t *testing.T) {
	for _, n := range []int{2, 5, 16, 47, 257} {
		s, _ := FirmwareScale(n)
		f, _ := Forward(n, s)
		tr, err := NewTransformer(n, s)
		if err != nil {
			t.Fatalf("NewTransformer(%d): %v", n, err)
		}
		if tr.Size() != n {
			t.Fatalf("Size=%d want=%d", tr.Size(), n)
		}

		x := testutil.DeterministicNoise(int64(n), 1, n)
		want := make([]float64, n)
		got := make([]float64, n)
		_ = f.MulVec(want, x)
		if err := tr.Forward(got, x); err != nil {
			t.Fatalf("Forward: %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestTransformerReusable(t *testing.T) {
	s, _ := FirmwareScale(9)
	tr, _ := NewTransformer(9, s)
	f, _ := Forward(9, s)

	got := make([]float64, 9)
	want := make([]float64, 9)
	for pos := 0; pos < 9; pos++ {
		x := testutil.Impulse(9, pos)
		if err := tr.Forward(got, x); err != nil {
			t.Fatalf("Forward: %v", err)
		}
		_ = f.MulVec(want, x)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-10)
	}
}

func TestTransformerErrors(t *testing.T) {
	if _, err := NewTransformer(1, Scale{}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err=%v want ErrInvalidSize", err)
	}
	s, _ := FirmwareScale(4)
	tr, _ := NewTransformer(4, s)
	if err := tr.Forward(make([]float64, 4), make([]float64, 3)); err == nil {
		t.Fatal("expected length error")
	}
}

func TestNextPowerOf2(t *testing.T) {
	for in, want := range map[int]int{1: 1, 2: 2, 3: 4, 2055: 4096} {
		if got := nextPowerOf2(in); got != want {
			t.Fatalf("nextPowerOf2(%d)=%d want=%d", in, got, want)
		}
	}
}
