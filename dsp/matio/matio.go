package matio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-pcadct/dsp/core"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

// BytesPerValue is the encoded size of one matrix element.
const BytesPerValue = 4

var (
	ErrShapeMismatch = errors.New("matio: matrix shape mismatch")
	ErrShortRead     = errors.New("matio: short read")
	// ErrNotRepresentable is returned for NaN, ±Inf, or values whose
	// magnitude overflows float32.
	ErrNotRepresentable = errors.New("matio: value not representable as float32")
)

// Size returns the encoded length of a rows x cols matrix.
func Size(rows, cols int) int64 {
	return int64(rows) * int64(cols) * BytesPerValue
}

// CheckRepresentable returns ErrNotRepresentable for the first element of m
// that is not finite once stored as float32.
func CheckRepresentable(m *matrix.Matrix) error {
	for r := 0; r < m.Rows(); r++ {
		for c, v := range m.Row(r) {
			if !core.IsFinite(v) || math.IsInf(float64(float32(v)), 0) {
				return fmt.Errorf("%w: (%d,%d) = %g", ErrNotRepresentable, r, c, v)
			}
		}
	}
	return nil
}

// Write encodes m to w. m must be exactly rows x cols and every value must
// fit in float32; nothing is written otherwise. The returned count is the
// number of bytes that reached w.
func Write(w io.Writer, m *matrix.Matrix, rows, cols int) (int64, error) {
	if err := m.CheckShape(rows, cols); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if err := CheckRepresentable(m); err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	var buf [BytesPerValue]byte
	var accepted int64
	for r := 0; r < rows; r++ {
		for _, v := range m.Row(r) {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
			n, err := bw.Write(buf[:])
			accepted += int64(n)
			if err != nil {
				return accepted - int64(bw.Buffered()), fmt.Errorf("matio: write: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return accepted - int64(bw.Buffered()), fmt.Errorf("matio: flush: %w", err)
	}
	return accepted, nil
}

// WriteFile creates (or truncates) path and encodes m into it. A failure
// part way leaves a truncated file behind.
func WriteFile(path string, m *matrix.Matrix, rows, cols int) (n int64, err error) {
	if err := m.CheckShape(rows, cols); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if err := CheckRepresentable(m); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("matio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("matio: close: %w", cerr)
		}
	}()
	return Write(f, m, rows, cols)
}

// Read decodes exactly rows x cols values from r.
func Read(r io.Reader, rows, cols int) (*matrix.Matrix, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}

	raw := make([]byte, Size(rows, cols))
	n, err := io.ReadFull(r, raw)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrShortRead, len(raw), n)
		}
		return nil, fmt.Errorf("matio: read: %w", err)
	}

	data := m.Data()
	for i := range data {
		data[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*BytesPerValue:])))
	}
	return m, nil
}

// ReadFile decodes a rows x cols matrix from path. The file must hold
// exactly Size(rows, cols) bytes.
func ReadFile(path string, rows, cols int) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}
	if want := Size(rows, cols); info.Size() != want {
		if info.Size() < want {
			return nil, fmt.Errorf("%w: %s: expected %d bytes, got %d", ErrShortRead, path, want, info.Size())
		}
		return nil, fmt.Errorf("%w: %s: expected %d bytes, got %d", ErrShapeMismatch, path, want, info.Size())
	}
	return Read(f, rows, cols)
}
