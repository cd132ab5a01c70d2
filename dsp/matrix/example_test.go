package matrix_test

import (
	"fmt"

	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

func ExampleMatrix_MulVec() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	y := make([]float64, 2)
	_ = m.MulVec(y, []float64{1, 1})
	fmt.Println(y)

	// Output:
	// [3 7]
}
