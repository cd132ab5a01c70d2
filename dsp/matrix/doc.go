// Package matrix provides the fixed-shape, row-major real matrix shared by the
// extraction, generation, verification and serialization stages.
//
// A Matrix carries only its values and its dimensions. Dimensions are fixed at
// construction and checked against caller-known constants with CheckShape;
// they are never inferred from data after the fact.
package matrix
