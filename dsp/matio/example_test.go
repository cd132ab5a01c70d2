package matio_test

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/algo-pcadct/dsp/matio"
	"github.com/cwbudde/algo-pcadct/dsp/matrix"
)

func ExampleWrite() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})

	var buf bytes.Buffer
	n, _ := matio.Write(&buf, m, 2, 2)
	fmt.Printf("%d bytes: % x\n", n, buf.Bytes()[:8])

	back, _ := matio.Read(&buf, 2, 2)
	fmt.Println(back.ToRows())

	// Output:
	// 16 bytes: 00 00 80 3f 00 00 00 40
	// [[1 2] [3 4]]
}
