package core

import "fmt"

// Config holds the dimensions and checks shared by every stage of matrix
// generation. Nothing in the pipeline reads package-level sizes; each stage
// receives the values it needs from a Config.
type Config struct {
	// ArrayName is the identifier of the weight array declared in the source text.
	ArrayName string
	// PCASize is the number of compressed coefficients (rows of the weight matrix).
	PCASize int
	// DCTSize is the transform length N (columns of the weight matrix, order of the basis).
	DCTSize int
	// Tolerance is the maximum absolute round-trip error accepted by the verifier.
	Tolerance float64
	// ProbeIndex selects the coordinate set to one in the round-trip test vector.
	ProbeIndex int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the sizes of the firmware speech codec.
func DefaultConfig() Config {
	return Config{
		ArrayName:  "pca_weight",
		PCASize:    47,
		DCTSize:    257,
		Tolerance:  1e-6,
		ProbeIndex: 1,
	}
}

// WithArrayName sets the array identifier searched for in the source text.
func WithArrayName(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.ArrayName = name
		}
	}
}

// WithPCASize sets the number of rows of the extracted weight matrix.
func WithPCASize(rows int) Option {
	return func(cfg *Config) {
		if rows > 0 {
			cfg.PCASize = rows
		}
	}
}

// WithDCTSize sets the transform length N.
func WithDCTSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.DCTSize = n
		}
	}
}

// WithTolerance sets the round-trip tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.Tolerance = tol
		}
	}
}

// WithProbeIndex sets the unit coordinate of the round-trip test vector.
func WithProbeIndex(idx int) Option {
	return func(cfg *Config) {
		if idx >= 0 {
			cfg.ProbeIndex = idx
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports values that no option guard can catch on its own.
func (c Config) Validate() error {
	if c.ArrayName == "" {
		return fmt.Errorf("core: array name must not be empty")
	}
	if c.PCASize <= 0 {
		return fmt.Errorf("core: pca size must be > 0: %d", c.PCASize)
	}
	if c.DCTSize < 2 {
		return fmt.Errorf("core: dct size must be >= 2: %d", c.DCTSize)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("core: tolerance must be > 0: %g", c.Tolerance)
	}
	if c.ProbeIndex < 0 || c.ProbeIndex >= c.DCTSize {
		return fmt.Errorf("core: probe index must be in [0,%d): %d", c.DCTSize, c.ProbeIndex)
	}
	return nil
}
