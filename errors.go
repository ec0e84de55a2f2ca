package lexgen

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput signals that Next was called with the cursor at EOF.
	// End the scan loop on it rather than treating it as a failure.
	ErrEndOfInput = errors.New("end of input")

	// ErrNoRuleMatched indicates that scanning stopped without any rule
	// ever reaching an accepting state
	ErrNoRuleMatched = errors.New("no rule matched")

	// ErrEmptyMatch indicates a rule whose pattern accepts the empty
	// string; such a rule would emit zero-length tokens forever and is
	// rejected at construction time
	ErrEmptyMatch = errors.New("rule matches the empty string")
)

// LexError reports a scan-time failure at the exact position where the
// token attempt began, not the furthest byte read before the automaton
// died. The cursor is left at that same position, so the caller decides
// whether to stop, skip a character, or Resync.
type LexError struct {
	Pos Position
	Err error
}

// Error implements the error interface
func (e *LexError) Error() string {
	return fmt.Sprintf("lexgen: %v at %v (offset %d)", e.Err, e.Pos, e.Pos.Offset)
}

// Unwrap returns the underlying error
func (e *LexError) Unwrap() error {
	return e.Err
}
