package nfa

import (
	"errors"
	"fmt"
)

// Pattern compilation errors. Each is surfaced wrapped in a SyntaxError
// carrying the byte offset of the offending position in the pattern.
var (
	// ErrUnterminatedGroup indicates a '(' without a matching ')'
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrUnterminatedClass indicates a '[' without a matching ']'
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrInvalidEscape indicates an unrecognized or malformed escape sequence
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrEmptyAlternation indicates an alternation branch with no content,
	// e.g. "a||b" or a leading '|'
	ErrEmptyAlternation = errors.New("empty alternation branch")

	// ErrUnexpectedChar indicates a metacharacter in a position where an
	// atom was expected, e.g. a bare '*' with nothing to repeat
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrUnsupportedComplement indicates an attempt to complement an NFA
	// that is not a single-symbol byte class
	ErrUnsupportedComplement = errors.New("complement of non-class NFA")

	// ErrInvalidRuneRange indicates a scalar range covering no encodable rune
	// (empty or entirely inside the surrogate block)
	ErrInvalidRuneRange = errors.New("invalid rune range")
)

// SyntaxError reports a pattern compilation failure with the byte offset of
// the offending position. Compilation is all-or-nothing per pattern; no
// partial NFA accompanies a SyntaxError.
type SyntaxError struct {
	Pattern string
	Pos     int // byte offset into Pattern
	Err     error
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lexgen: pattern %q: offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying error
func (e *SyntaxError) Unwrap() error {
	return e.Err
}
