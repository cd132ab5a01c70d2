// Package literal extracts fixed-shape numeric matrices from array
// initializers embedded in C-like source text.
//
// The input is scanned character by character. The named declaration
//
//	name[<dim>][<dim>] = { {v, v, ...}, {v, v, ...}, ... };
//
// is located, its initializer body is isolated by brace-depth counting and
// split into top-level row groups, and every comma-separated token is parsed
// as a decimal real number. Comments are ignored; no regular expressions are
// involved.
package literal
