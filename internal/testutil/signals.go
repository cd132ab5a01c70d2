package testutil

import (
	"math/rand"
	"strconv"
	"strings"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicRows generates a rows x cols slice of seeded noise rows.
func DeterministicRows(seed int64, amplitude float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = DeterministicNoise(seed+int64(i), amplitude, cols)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// CDeclaration renders rows as a C array declaration of the form
//
//	const __fp16 name[R][C] = {
//	    {v, v, ...},
//	};
//
// using the shortest round-tripping decimal form for every value.
func CDeclaration(name string, rows [][]float64) string {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	var b strings.Builder
	b.WriteString("const __fp16 ")
	b.WriteString(name)
	b.WriteString("[" + strconv.Itoa(len(rows)) + "][" + strconv.Itoa(cols) + "] = {\n")
	for _, r := range rows {
		b.WriteString("    {")
		for j, v := range r {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("},\n")
	}
	b.WriteString("};\n")
	return b.String()
}
