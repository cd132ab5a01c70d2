package literal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-pcadct/internal/testutil"
)

func TestExtractTwoByTwo(t *testing.T) {
	m, err := Extract("pca_weight[2][2] = {{1.0,2.0},{3.0,4.0}};", "pca_weight", 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestExtractColumnMismatch(t *testing.T) {
	_, err := Extract("pca_weight[2][2] = {{1.0,2.0},{3.0,4.0}};", "pca_weight", 2, 3)
	require.ErrorIs(t, err, ErrColumnCountMismatch)
}

func TestExtractRowMismatch(t *testing.T) {
	_, err := Extract("pca_weight[2][2] = {{1.0,2.0},{3.0,4.0}};", "pca_weight", 3, 2)
	require.ErrorIs(t, err, ErrRowCountMismatch)
}

func TestExtractNotFound(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "absent", src: "float other[2][2] = {{1,2},{3,4}};"},
		{name: "prefixed identifier", src: "float ipca_weight[1][1] = {{1}};"},
		{name: "single dimension", src: "float pca_weight[2] = {1, 2};"},
		{name: "usage not declaration", src: "x = pca_weight[i][j];"},
		{name: "commented out", src: "// pca_weight[1][1] = {{1}};\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.src, "pca_weight", 1, 1)
			require.ErrorIs(t, err, ErrDeclarationNotFound)
		})
	}
}

func TestExtractMalformedNumber(t *testing.T) {
	_, err := Extract("w[1][3] = {{1.0, abc, 3}};", "w", 1, 3)
	require.ErrorIs(t, err, ErrMalformedNumber)
	require.Contains(t, err.Error(), "row 0")
}

func TestExtractUnterminated(t *testing.T) {
	_, err := Extract("w[1][2] = {{1, 2},", "w", 1, 2)
	require.ErrorIs(t, err, ErrUnterminated)
}

func TestExtractStructureErrors(t *testing.T) {
	for _, src := range []string{
		"w[1][2] = {{1, {2}}};",
		"w[1][2] = {{1, 2}, 3};",
	} {
		_, err := Extract(src, "w", 1, 2)
		require.ErrorIs(t, err, ErrStructure, src)
	}
}

func TestExtractSkipsUsagesBeforeDeclaration(t *testing.T) {
	src := `
extern const __fp16 pca_weight[2][3];
/* pca_weight[2][3] = {{9,9,9},{9,9,9}}; */
static void project(float *out) { out[0] = pca_weight[0][0]; }
const __fp16 pca_weight[PCA_SIZE][DCT_SIZE] = {
    {1.5f, -2, 3e-2},   // first
    {+4., .5, -6.25E+1,},
};
`
	m, err := Extract(src, "pca_weight", 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.5, -2, 0.03}, {4, 0.5, -62.5}}, m.ToRows())
}

func TestExtractGeneratedLiteral(t *testing.T) {
	rows := testutil.DeterministicRows(11, 0.25, 47, 257)
	src := "#include \"fft_and_pca.h\"\n\n" + testutil.CDeclaration("pca_weight", rows)

	m, err := Extract(src, "pca_weight", 47, 257)
	require.NoError(t, err)
	testutil.RequireRowsNearlyEqual(t, m.ToRows(), rows, 0)
}

func TestExtractInvalidShape(t *testing.T) {
	_, err := Extract("w[1][1] = {{1}};", "w", 0, 1)
	require.Error(t, err)
}
