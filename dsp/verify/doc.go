// Package verify checks a derived inverse basis numerically.
//
// The checks are advisory: they measure and report, and leave it to the
// caller to decide whether a deviation matters.
package verify
