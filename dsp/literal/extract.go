package literal

import (
	"fmt"

	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

// Extract locates the array declaration called name in src and returns its
// initializer as a rows x cols matrix in textual order.
//
// It fails with ErrDeclarationNotFound when no declaration matches, with
// ErrRowCountMismatch or ErrColumnCountMismatch when the literal does not have
// the expected shape, and with ErrMalformedNumber when a token is not a
// decimal real number.
func Extract(src, name string, rows, cols int) (*matrix.Matrix, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("literal: %w", err)
	}

	body, err := FindInitializer(StripComments(src), name)
	if err != nil {
		return nil, err
	}

	groups, err := SplitGroups(body)
	if err != nil {
		return nil, err
	}
	if len(groups) != rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrRowCountMismatch, rows, len(groups))
	}

	for i, g := range groups {
		values, err := ParseRow(g)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(values) != cols {
			return nil, fmt.Errorf("%w: row %d: expected %d values, got %d", ErrColumnCountMismatch, i, cols, len(values))
		}
		copy(m.Row(i), values)
	}
	return m, nil
}
