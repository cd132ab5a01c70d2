package coeffgen

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/matio"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

// Asset file names expected by the decoder.
const (
	PCAFileName = "ipca_weight.bin"
	DCTFileName = "idct_weight.bin"
)

// ErrAssetMismatch is returned when a file read back differs from its source
// matrix by more than float32 rounding.
var ErrAssetMismatch = errors.New("coeffgen: asset does not match source matrix")

// Asset describes one written matrix file.
type Asset struct {
	Path  string
	Rows  int
	Cols  int
	Bytes int64
}

// WriteAssets writes the PCA matrix and the inverse DCT basis of res into
// dir, creating dir if needed. The two files are written independently; if
// the second write fails the first file stays in place.
func WriteAssets(dir string, res *Result) ([]Asset, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("coeffgen: %w", err)
	}

	cfg := res.Config
	jobs := []struct {
		name       string
		m          *matrix.Matrix
		rows, cols int
	}{
		{PCAFileName, res.PCA, cfg.PCASize, cfg.DCTSize},
		{DCTFileName, res.Basis.Inverse, cfg.DCTSize, cfg.DCTSize},
	}

	assets := make([]Asset, 0, len(jobs))
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		n, err := matio.WriteFile(path, j.m, j.rows, j.cols)
		if err != nil {
			return assets, fmt.Errorf("coeffgen: write %s: %w", j.name, err)
		}
		assets = append(assets, Asset{Path: path, Rows: j.rows, Cols: j.cols, Bytes: n})
	}
	return assets, nil
}

// CheckAsset reads a written file back with the decoder's loading contract
// and returns the largest difference from want. Every stored value must equal
// the float32 rounding of its source; any other difference yields
// ErrAssetMismatch.
func CheckAsset(a Asset, want *matrix.Matrix) (float64, error) {
	name := filepath.Base(a.Path)
	got, err := matio.ReadFile(a.Path, a.Rows, a.Cols)
	if err != nil {
		return 0, fmt.Errorf("coeffgen: check %s: %w", name, err)
	}
	gotData, wantData := got.Data(), want.Data()
	d, _, err := core.MaxAbsDiff(gotData, wantData)
	if err != nil {
		return 0, fmt.Errorf("coeffgen: check %s: %w", name, err)
	}
	for i, v := range wantData {
		if diff := math.Abs(gotData[i] - v); diff > core.Float32Error(v) {
			return d, fmt.Errorf("%w: %s value %d: stored %g, want %g (rounding bound %g)",
				ErrAssetMismatch, name, i, gotData[i], v, core.Float32Error(v))
		}
	}
	return d, nil
}
