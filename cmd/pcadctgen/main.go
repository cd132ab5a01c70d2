// Command pcadctgen derives the decoder matrices of the PCA+DCT speech codec
// and writes them as raw float32 assets.
//
// Usage:
//
//	pcadctgen [flags] [firmware-source]
//
// The PCA weight matrix is parsed from the firmware source (default
// fft_and_pca.c) and written to <out>/ipca_weight.bin. The inverse of the
// firmware DCT basis is generated, checked by a round trip, and written to
// <out>/idct_weight.bin. A failed round-trip check is logged as a warning and
// does not change the exit status.
//
// Examples:
//
//	pcadctgen
//	pcadctgen -out app/assets cpu/br28/fft_and_pca.c
//	pcadctgen -full -tol 1e-9 fft_and_pca.c
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-pcadct/dsp/coeffgen"
	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

const defaultSource = "fft_and_pca.c"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := core.DefaultConfig()

	fs := flag.NewFlagSet("pcadctgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outDir := fs.String("out", "assets", "output directory for the .bin assets")
	name := fs.String("name", def.ArrayName, "name of the weight array in the source")
	pcaSize := fs.Int("pca", def.PCASize, "rows of the PCA weight matrix")
	dctSize := fs.Int("size", def.DCTSize, "DCT length N (columns of the PCA matrix)")
	tol := fs.Float64("tol", def.Tolerance, "round-trip tolerance")
	probe := fs.Int("probe", def.ProbeIndex, "unit coordinate of the round-trip test vector")
	full := fs.Bool("full", false, "also check every basis vector, G·F against I and the FFT transform")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pcadctgen [flags] [firmware-source]\n\n")
		fmt.Fprintf(stderr, "Extracts the PCA weight matrix and generates the inverse DCT matrix.\n")
		fmt.Fprintf(stderr, "Without a source argument, %s is read.\n\n", defaultSource)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	source := defaultSource
	if fs.NArg() == 1 {
		source = fs.Arg(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := core.ApplyOptions(
		core.WithArrayName(*name),
		core.WithPCASize(*pcaSize),
		core.WithDCTSize(*dctSize),
		core.WithTolerance(*tol),
		core.WithProbeIndex(*probe),
	)
	logger.Debug("config", "name", cfg.ArrayName, "pca", cfg.PCASize, "dct", cfg.DCTSize,
		"tol", cfg.Tolerance, "probe", cfg.ProbeIndex)

	if err := generate(logger, stdout, source, *outDir, cfg, *full); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func generate(logger *slog.Logger, stdout io.Writer, source, outDir string, cfg core.Config, full bool) error {
	logger.Info("reading firmware source", "path", source)
	src, err := os.ReadFile(source)
	if err != nil {
		return err
	}

	res, err := coeffgen.Run(string(src), cfg)
	if err != nil {
		return err
	}
	logger.Info("extracted PCA matrix", "rows", res.PCA.Rows(), "cols", res.PCA.Cols(),
		"row0_head", head(res.PCA, 5), "row0_tail", tail(res.PCA, 5))

	report := res.RoundTrip
	if report.OK() {
		logger.Info("inverse DCT verified", "probe", report.Probe, "max_error", report.MaxError)
	} else {
		logger.Warn("inverse DCT reconstruction error is large", "probe", report.Probe,
			"max_error", report.MaxError, "at", report.WorstIndex, "tolerance", report.Tolerance)
	}

	if full {
		d, err := coeffgen.Diagnose(res.Basis, cfg.Tolerance)
		if err != nil {
			return err
		}
		attrs := []any{"worst_probe", d.All.Probe, "max_error", d.All.MaxError,
			"identity", d.Identity, "spectral", d.Spectral}
		if d.All.OK() {
			logger.Info("full inverse DCT check", attrs...)
		} else {
			logger.Warn("full inverse DCT check exceeds tolerance", attrs...)
		}
	}

	assets, err := coeffgen.WriteAssets(outDir, res)
	if err != nil {
		return err
	}

	sources := []*matrix.Matrix{res.PCA, res.Basis.Inverse}
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tRows\tCols\tBytes\tMax float32 error\n")
	fmt.Fprintf(tw, "----\t----\t----\t-----\t-----------------\n")
	for i, a := range assets {
		d, err := coeffgen.CheckAsset(a, sources[i])
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2e\n", a.Path, a.Rows, a.Cols, a.Bytes, d)
	}
	return tw.Flush()
}

func head(m *matrix.Matrix, n int) []float64 {
	row := m.Row(0)
	return row[:min(n, len(row))]
}

func tail(m *matrix.Matrix, n int) []float64 {
	row := m.Row(0)
	return row[len(row)-min(n, len(row)):]
}
