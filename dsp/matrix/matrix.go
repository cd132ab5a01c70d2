package matrix

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-pcadct/dsp/core"
)

var (
	ErrShape             = errors.New("matrix: invalid shape")
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Matrix is a rows x cols real matrix stored row-major in one flat slice.
// MulVec and RowSquaredNorms share a scratch row, so a Matrix is not safe
// for concurrent use.
type Matrix struct {
	rows, cols int
	data       []float64
	scratch    []float64
}

// New returns a zero rows x cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a rectangular slice of rows into a new Matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrShape)
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(r), m.cols)
		}
		copy(m.Row(i), r)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns element (i, j). It panics if the index is out of range.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j). It panics if the index is out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

// Row returns row i as a view into the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Data returns the row-major backing slice. Mutating it mutates the matrix.
func (m *Matrix) Data() []float64 { return m.data }

// ToRows returns a copy of the matrix as a slice of rows.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}
	return out
}

// CheckShape returns ErrDimensionMismatch unless m is rows x cols.
func (m *Matrix) CheckShape(rows, cols int) error {
	if m.rows != rows || m.cols != cols {
		return fmt.Errorf("%w: have %dx%d, want %dx%d", ErrDimensionMismatch, m.rows, m.cols, rows, cols)
	}
	return nil
}

// MulVec stores m·x in dst. len(x) must equal Cols and len(dst) Rows.
func (m *Matrix) MulVec(dst, x []float64) error {
	if len(x) != m.cols || len(dst) != m.rows {
		return fmt.Errorf("%w: %dx%d times %d into %d", ErrDimensionMismatch, m.rows, m.cols, len(x), len(dst))
	}
	m.scratch = core.EnsureLen(m.scratch, m.cols)
	scratch := m.scratch
	for i := 0; i < m.rows; i++ {
		vecmath.MulBlock(scratch, m.Row(i), x)
		dst[i] = core.Sum(scratch)
	}
	return nil
}

// RowSquaredNorms returns Σ_j m[i][j]² for every row i.
func (m *Matrix) RowSquaredNorms() []float64 {
	out := make([]float64, m.rows)
	m.scratch = core.EnsureLen(m.scratch, m.cols)
	scratch := m.scratch
	for i := range out {
		row := m.Row(i)
		vecmath.MulBlock(scratch, row, row)
		out[i] = core.Sum(scratch)
	}
	return out
}

// Transpose returns a new cols x rows matrix.
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Dense returns a gonum copy of m.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, append([]float64(nil), m.data...))
}

// FromDense copies a gonum matrix.
func FromDense(d mat.Matrix) (*Matrix, error) {
	r, c := d.Dims()
	m, err := New(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		mat.Row(m.Row(i), i, d)
	}
	return m, nil
}
