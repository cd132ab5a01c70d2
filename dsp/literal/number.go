package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber parses a decimal real literal: optional sign, digits with an
// optional fraction, an optional exponent and an optional C float suffix
// (f or F). Hexadecimal, inf and nan spellings are rejected.
func ParseNumber(tok string) (float64, error) {
	s := strings.TrimSpace(tok)
	if n := len(s); n > 1 && (s[n-1] == 'f' || s[n-1] == 'F') {
		s = s[:n-1]
	}
	if !isDecimal(s) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedNumber, tok, err)
	}
	return v, nil
}

// isDecimal accepts [+-]? (d+ (. d*)? | . d+) ([eE] [+-]? d+)?.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseRow splits a row group on commas and parses every non-empty token.
// Empty tokens, such as the one after a trailing comma, are skipped.
func ParseRow(group string) ([]float64, error) {
	var out []float64
	for _, tok := range strings.Split(group, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := ParseNumber(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
