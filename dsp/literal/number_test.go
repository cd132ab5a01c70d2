package literal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-0.0123", -0.0123},
		{"+7", 7},
		{"1.", 1},
		{".25", 0.25},
		{"6.1035e-05", 6.1035e-05},
		{"-3E+2", -300},
		{"0.5f", 0.5},
		{" 2.5F ", 2.5},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, in := range []string{"", "f", "-", ".", "1e", "1e+", "0x1p-2", "inf", "NaN", "1.2.3", "1,5", "--1", "1e400"} {
		_, err := ParseNumber(in)
		require.ErrorIs(t, err, ErrMalformedNumber, in)
	}
}

func TestParseRowSkipsEmptyTokens(t *testing.T) {
	vals, err := ParseRow(" 1, 2 ,3, ")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, vals)
}
