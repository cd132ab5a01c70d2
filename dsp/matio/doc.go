// Package matio reads and writes matrices as raw float32 blobs.
//
// The format has no header, padding or metadata: rows x cols IEEE-754
// single-precision values, little-endian, in row-major order. A blob is
// therefore exactly rows*cols*4 bytes and its shape must be known to the
// reader in advance.
package matio
