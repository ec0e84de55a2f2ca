package lexgen

import "fmt"

// Position is a location in the scanned input.
type Position struct {
	Offset int // byte offset from the start of the input
	Line   int // 1-based line number
	Column int // 0-based column in characters, reset by '\n'
}

// String formats the position for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Span is the half-open source range [Start, End) covered by a matched
// token. A fresh Span is produced per token and never shared or mutated
// after emission.
type Span struct {
	Start Position
	End   Position
}

// String formats the span for diagnostics.
func (s Span) String() string {
	return fmt.Sprintf("%v - %v", s.Start, s.End)
}
