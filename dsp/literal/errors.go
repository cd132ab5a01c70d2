package literal

import "errors"

var (
	ErrDeclarationNotFound = errors.New("literal: declaration not found")
	ErrUnterminated        = errors.New("literal: unterminated initializer")
	ErrStructure           = errors.New("literal: malformed initializer structure")
	ErrRowCountMismatch    = errors.New("literal: row count mismatch")
	ErrColumnCountMismatch = errors.New("literal: column count mismatch")
	ErrMalformedNumber     = errors.New("literal: malformed numeric literal")
)
