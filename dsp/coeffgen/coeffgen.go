// Package coeffgen derives the two decoder matrices of the PCA+DCT speech
// codec: the PCA weight matrix extracted from firmware source text, and the
// inverse of the firmware's DCT basis.
//
// Each stage is a plain function of its inputs; only WriteAssets touches the
// filesystem.
package coeffgen

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/dct"
	"github.com/cwbudde/algo-pcadct/dsp/literal"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
	"github.com/cwbudde/algo-pcadct/dsp/verify"
)

// Result holds everything derived from one run.
type Result struct {
	Config core.Config
	// PCA is the PCASize x DCTSize weight matrix as written in the source.
	PCA *matrix.Matrix
	// Basis holds the DCTSize x DCTSize forward basis and its inverse.
	Basis *dct.Basis
	// RoundTrip is the advisory check of Basis.Inverse.
	RoundTrip verify.Report
}

// ExtractPCA parses the weight matrix declared as cfg.ArrayName in src.
func ExtractPCA(src string, cfg core.Config) (*matrix.Matrix, error) {
	m, err := literal.Extract(src, cfg.ArrayName, cfg.PCASize, cfg.DCTSize)
	if err != nil {
		return nil, fmt.Errorf("coeffgen: extract %s: %w", cfg.ArrayName, err)
	}
	return m, nil
}

// GenerateInverse synthesizes the firmware DCT basis of size cfg.DCTSize and
// derives its inverse.
func GenerateInverse(cfg core.Config) (*dct.Basis, error) {
	b, err := dct.NewBasis(cfg.DCTSize)
	if err != nil {
		return nil, fmt.Errorf("coeffgen: %w", err)
	}
	if err := b.Inverse.CheckShape(cfg.DCTSize, cfg.DCTSize); err != nil {
		return nil, fmt.Errorf("coeffgen: inverse basis: %w", err)
	}
	return b, nil
}

// Verify runs the round-trip check of b with the probe and tolerance of cfg.
func Verify(b *dct.Basis, cfg core.Config) (verify.Report, error) {
	return verify.RoundTrip(b.Forward, b.Inverse, cfg.ProbeIndex, cfg.Tolerance)
}

// Run extracts, generates and verifies. A round-trip error above tolerance
// does not fail the run; callers inspect Result.RoundTrip.
func Run(src string, cfg core.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pca, err := ExtractPCA(src, cfg)
	if err != nil {
		return nil, err
	}
	basis, err := GenerateInverse(cfg)
	if err != nil {
		return nil, err
	}
	report, err := Verify(basis, cfg)
	if err != nil {
		return nil, fmt.Errorf("coeffgen: %w", err)
	}
	return &Result{Config: cfg, PCA: pca, Basis: basis, RoundTrip: report}, nil
}

// Diagnostics are the exhaustive checks of a basis.
type Diagnostics struct {
	// All is the worst round trip over every standard basis vector.
	All verify.Report
	// Identity is max |G·F - I|.
	Identity float64
	// Spectral is max |F·x - fast(x)| for a deterministic chirp x.
	Spectral float64
}

// Diagnose runs the exhaustive checks on b.
func Diagnose(b *dct.Basis, tol float64) (Diagnostics, error) {
	var d Diagnostics
	var err error
	if d.All, err = verify.RoundTripAll(b.Forward, b.Inverse, tol); err != nil {
		return d, fmt.Errorf("coeffgen: %w", err)
	}
	if d.Identity, err = verify.Identity(b.Forward, b.Inverse); err != nil {
		return d, fmt.Errorf("coeffgen: %w", err)
	}

	tr, err := dct.NewTransformer(b.Size(), b.Scale)
	if err != nil {
		return d, fmt.Errorf("coeffgen: %w", err)
	}
	x := make([]float64, b.Size())
	for i := range x {
		x[i] = math.Sin(0.37 * float64(i*i+1))
	}
	if d.Spectral, err = verify.Spectral(b.Forward, tr, x); err != nil {
		return d, fmt.Errorf("coeffgen: %w", err)
	}
	return d, nil
}
