// Package dct synthesizes the forward cosine basis used by the codec firmware
// and derives its inverse.
//
// The firmware's transform is a DCT-II with a non-standard normalization:
//
//	X[0] = y * Σ x[n]
//	X[k] = √2 * y * Σ x[n] cos(πk(2n+1)/(2N)),   k > 0
//
// with y = 0.5·√(2/(N−1)). The rows of the basis are pairwise orthogonal but
// not of unit length, so the inverse is obtained by dividing every basis row
// by its squared norm rather than by transposition alone.
package dct
