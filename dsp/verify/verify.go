package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

// DefaultTolerance is the largest round-trip error considered correct.
const DefaultTolerance = 1e-6

// Report is the outcome of a round-trip check.
type Report struct {
	// Probe is the coordinate set to one in the (worst) test vector.
	Probe int
	// MaxError is max |x'[i] - x[i]| over all coordinates.
	MaxError float64
	// WorstIndex is the coordinate where MaxError occurs.
	WorstIndex int
	Tolerance  float64
}

// OK reports whether MaxError is within Tolerance. A NaN error is never OK.
func (r Report) OK() bool { return r.MaxError <= r.Tolerance }

func (r Report) String() string {
	status := "ok"
	if !r.OK() {
		status = "exceeds tolerance"
	}
	return fmt.Sprintf("max reconstruction error = %.2e at %d (tolerance %.0e, %s)", r.MaxError, r.WorstIndex, r.Tolerance, status)
}

// RoundTrip applies f and then g to the unit vector e_probe and measures how
// far the reconstruction is from e_probe. An error is returned only for
// inconsistent shapes or an out-of-range probe; a large deviation is reported
// through Report.OK.
func RoundTrip(f, g *matrix.Matrix, probe int, tol float64) (Report, error) {
	n, err := checkPair(f, g)
	if err != nil {
		return Report{}, err
	}
	if probe < 0 || probe >= n {
		return Report{}, fmt.Errorf("verify: probe index must be in [0,%d): %d", n, probe)
	}
	return roundTrip(f, g, core.UnitVector(n, probe), probe, tol)
}

// RoundTripAll runs RoundTrip for every standard basis vector and returns the
// worst result.
func RoundTripAll(f, g *matrix.Matrix, tol float64) (Report, error) {
	n, err := checkPair(f, g)
	if err != nil {
		return Report{}, err
	}
	var worst Report
	for j := 0; j < n; j++ {
		r, err := roundTrip(f, g, core.UnitVector(n, j), j, tol)
		if err != nil {
			return Report{}, err
		}
		if math.IsNaN(r.MaxError) {
			worst = r
			break
		}
		if j == 0 || r.MaxError > worst.MaxError {
			worst = r
		}
	}
	return worst, nil
}

func roundTrip(f, g *matrix.Matrix, x []float64, probe int, tol float64) (Report, error) {
	n := len(x)
	spec := make([]float64, n)
	rec := make([]float64, n)
	if err := f.MulVec(spec, x); err != nil {
		return Report{}, fmt.Errorf("verify: forward: %w", err)
	}
	if err := g.MulVec(rec, spec); err != nil {
		return Report{}, fmt.Errorf("verify: inverse: %w", err)
	}
	maxErr, at, err := core.MaxAbsDiff(rec, x)
	if err != nil {
		return Report{}, fmt.Errorf("verify: %w", err)
	}
	for i, v := range rec {
		if !core.IsFinite(v) {
			maxErr, at = math.NaN(), i
			break
		}
	}
	return Report{Probe: probe, MaxError: maxErr, WorstIndex: at, Tolerance: tol}, nil
}

// Identity returns max |(G·F)[i][j] - δij| over the whole product, the
// round-trip error for every standard basis vector at once.
func Identity(f, g *matrix.Matrix) (float64, error) {
	n, err := checkPair(f, g)
	if err != nil {
		return 0, err
	}
	var prod mat.Dense
	prod.Mul(g.Dense(), f.Dense())

	var diff mat.Dense
	diff.Sub(&prod, eye(n))
	return maxAbs(&diff), nil
}

func maxAbs(d *mat.Dense) float64 {
	raw := d.RawMatrix()
	m := 0.0
	for i := 0; i < raw.Rows; i++ {
		for _, v := range raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols] {
			if math.IsNaN(v) {
				return math.NaN()
			}
			m = math.Max(m, math.Abs(v))
		}
	}
	return m
}

func eye(n int) *mat.DiagDense {
	d := make([]float64, n)
	for i := range d {
		d[i] = 1
	}
	return mat.NewDiagDense(n, d)
}

func checkPair(f, g *matrix.Matrix) (int, error) {
	n := f.Rows()
	if err := f.CheckShape(n, n); err != nil {
		return 0, fmt.Errorf("verify: forward basis: %w", err)
	}
	if err := g.CheckShape(n, n); err != nil {
		return 0, fmt.Errorf("verify: inverse basis: %w", err)
	}
	return n, nil
}
