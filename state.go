package lexgen

import "unicode/utf8"

// State is the mutable scanning cursor over one input.
//
// A State is exclusively owned by its scan loop: the compiled Lexer is
// immutable and may serve any number of concurrent scans, but each scan
// needs its own State, passed into every Next call for the duration of the
// tokenization session.
type State struct {
	input string
	pos   int // byte offset of the next character
	line  int // 1-based
	col   int // 0-based, in characters
}

// NewState creates a cursor positioned at the start of input.
func NewState(input string) *State {
	return &State{input: input, line: 1}
}

// EOF reports whether the whole input has been consumed.
func (s *State) EOF() bool {
	return s.pos >= len(s.input)
}

// Position returns the current location of the cursor.
func (s *State) Position() Position {
	return Position{Offset: s.pos, Line: s.line, Column: s.col}
}

// peek decodes the character at the cursor without consuming it.
func (s *State) peek() (rune, int) {
	return utf8.DecodeRuneInString(s.input[s.pos:])
}

// advance consumes one character, updating line and column tracking.
// A newline increments the line and resets the column.
func (s *State) advance() {
	r, w := s.peek()
	s.pos += w
	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}
