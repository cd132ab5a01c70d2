package literal

import (
	"fmt"
	"strings"
)

// StripComments replaces C block and line comments with a single space.
// String and character literals are copied through untouched so that
// comment markers inside them are not mistaken for comments.
func StripComments(src string) string {
	const (
		stateCode = iota
		stateLine
		stateBlock
		stateString
		stateChar
	)

	var b strings.Builder
	b.Grow(len(src))
	state := stateCode
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch state {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				state = stateLine
				i++
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				state = stateBlock
				i++
			default:
				if c == '"' {
					state = stateString
				} else if c == '\'' {
					state = stateChar
				}
				b.WriteByte(c)
			}
		case stateLine:
			if c == '\n' {
				b.WriteString(" \n")
				state = stateCode
			}
		case stateBlock:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				b.WriteByte(' ')
				state = stateCode
				i++
			}
		case stateString, stateChar:
			b.WriteByte(c)
			closing := byte('"')
			if state == stateChar {
				closing = '\''
			}
			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					b.WriteByte(src[i])
				}
			case closing:
				state = stateCode
			}
		}
	}
	if state == stateLine {
		b.WriteByte(' ')
	}
	return b.String()
}

// FindInitializer returns the text between the outermost braces of the
// two-dimensional array declaration called name. src should already be free
// of comments.
func FindInitializer(src, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty array name", ErrDeclarationNotFound)
	}
	for off := 0; off < len(src); {
		i := strings.Index(src[off:], name)
		if i < 0 {
			break
		}
		start := off + i
		off = start + len(name)
		if start > 0 && isIdentByte(src[start-1]) {
			continue
		}
		open, ok := matchDeclarator(src, off)
		if !ok {
			continue
		}
		return scanBody(src, open+1)
	}
	return "", fmt.Errorf("%w: %q", ErrDeclarationNotFound, name)
}

// matchDeclarator matches `[..][..] = {` at pos and returns the index of the
// opening brace.
func matchDeclarator(src string, pos int) (int, bool) {
	for dim := 0; dim < 2; dim++ {
		pos = skipSpace(src, pos)
		if pos >= len(src) || src[pos] != '[' {
			return 0, false
		}
		end := strings.IndexAny(src[pos:], "]\n")
		if end < 0 || src[pos+end] != ']' {
			return 0, false
		}
		pos += end + 1
	}
	pos = skipSpace(src, pos)
	if pos >= len(src) || src[pos] != '=' {
		return 0, false
	}
	pos = skipSpace(src, pos+1)
	if pos >= len(src) || src[pos] != '{' {
		return 0, false
	}
	return pos, true
}

// scanBody walks from just after an opening brace with depth 1 and returns the
// text up to the brace that brings the depth back to 0.
func scanBody(src string, start int) (string, error) {
	depth := 1
	for pos := start; pos < len(src); pos++ {
		switch src[pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[start:pos], nil
			}
		}
	}
	return "", fmt.Errorf("%w: %d brace(s) still open at end of input", ErrUnterminated, depth)
}

// SplitGroups splits an initializer body into the contents of its top-level
// brace groups. Only whitespace and commas may appear between groups, and
// groups may not nest.
func SplitGroups(body string) ([]string, error) {
	var groups []string
	depth, groupStart := 0, 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '{':
			if depth > 0 {
				return nil, fmt.Errorf("%w: nested brace in row %d at offset %d", ErrStructure, len(groups), i)
			}
			depth = 1
			groupStart = i + 1
		case c == '}':
			if depth == 0 {
				return nil, fmt.Errorf("%w: unmatched '}' at offset %d", ErrStructure, i)
			}
			depth = 0
			groups = append(groups, body[groupStart:i])
		case depth == 0 && c != ',' && !isSpace(c):
			return nil, fmt.Errorf("%w: unexpected %q between rows at offset %d", ErrStructure, c, i)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: row %d is not closed", ErrStructure, len(groups))
	}
	return groups, nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
