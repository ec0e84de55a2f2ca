package nfa

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Compile compiles a regex pattern into an NFA.
//
// The supported grammar, precedence low to high:
//
//	alternation := concat ('|' concat)*
//	concat      := repeat+
//	repeat      := atom ('*' | '+' | '?')*
//	atom        := char | '.' | class | '(' alternation ')'
//	class       := '[' '^'? classitem+ ']'
//	classitem   := char | char '-' char
//
// '.' matches any Unicode scalar value, including '\n'. Escape sequences
// follow escape.go: single-character escapes, \xHH, \u{...}, the predefined
// classes \d \D \s \S \w \W, and backslash before any metacharacter.
//
// Backreferences, lookaround, named captures and {m,n} repetition are not
// part of the grammar; the target domain is lexing, not general matching.
//
// Compilation is all-or-nothing: on failure the returned error is a
// *SyntaxError locating the offending byte offset, and no partial NFA is
// produced.
func Compile(pattern string) (*NFA, error) {
	c := &compiler{pattern: pattern}
	n, err := c.alternation()
	if err != nil {
		return nil, err
	}
	if !c.eof() {
		// The only way alternation stops before EOF is a stray ')'.
		return nil, c.errorAt(c.pos, ErrUnexpectedChar)
	}
	return n, nil
}

// compiler is a recursive-descent parser with one rune of lookahead.
// pos is always a byte offset into pattern, so error positions line up with
// what the caller passed in.
type compiler struct {
	pattern string
	pos     int
}

func (c *compiler) eof() bool {
	return c.pos >= len(c.pattern)
}

// peek returns the rune at the current position without consuming it.
func (c *compiler) peek() rune {
	r, _ := utf8.DecodeRuneInString(c.pattern[c.pos:])
	return r
}

// next consumes and returns the rune at the current position.
func (c *compiler) next() rune {
	r, w := utf8.DecodeRuneInString(c.pattern[c.pos:])
	c.pos += w
	return r
}

func (c *compiler) errorAt(pos int, err error) error {
	return &SyntaxError{Pattern: c.pattern, Pos: pos, Err: err}
}

func (c *compiler) alternation() (*NFA, error) {
	n, err := c.concat()
	if err != nil {
		return nil, err
	}
	for !c.eof() && c.peek() == '|' {
		c.next()
		rhs, err := c.concat()
		if err != nil {
			return nil, err
		}
		n = n.Union(rhs)
	}
	return n, nil
}

func (c *compiler) concat() (*NFA, error) {
	var n *NFA
	for !c.eof() && c.peek() != '|' && c.peek() != ')' {
		f, err := c.repeat()
		if err != nil {
			return nil, err
		}
		if n == nil {
			n = f
		} else {
			n = n.Concat(f)
		}
	}
	if n == nil {
		// Reached '|', ')' or EOF without a single atom.
		return nil, c.errorAt(c.pos, ErrEmptyAlternation)
	}
	return n, nil
}

func (c *compiler) repeat() (*NFA, error) {
	n, err := c.atom()
	if err != nil {
		return nil, err
	}
	for !c.eof() {
		switch c.peek() {
		case '*':
			c.next()
			n = n.Star()
		case '+':
			c.next()
			n = n.Plus()
		case '?':
			c.next()
			n = n.Optional()
		default:
			return n, nil
		}
	}
	return n, nil
}

func (c *compiler) atom() (*NFA, error) {
	pos := c.pos
	switch r := c.peek(); r {
	case '(':
		c.next()
		n, err := c.alternation()
		if err != nil {
			return nil, err
		}
		if c.eof() || c.peek() != ')' {
			return nil, c.errorAt(pos, ErrUnterminatedGroup)
		}
		c.next()
		return n, nil
	case '[':
		return c.class()
	case '.':
		c.next()
		return AnyRune(), nil
	case '*', '+', '?', ']':
		return nil, c.errorAt(pos, ErrUnexpectedChar)
	case '\\':
		lit, class, err := c.escape()
		if err != nil {
			return nil, err
		}
		if class != nil {
			return c.classNFA(pos, class)
		}
		return FromRune(lit), nil
	default:
		c.next()
		return FromRune(r), nil
	}
}

// class parses a bracket expression. The opening '[' has not been consumed.
func (c *compiler) class() (*NFA, error) {
	open := c.pos
	c.next() // '['

	negate := false
	if !c.eof() && c.peek() == '^' {
		c.next()
		negate = true
	}

	var ranges []runeRange
	for {
		if c.eof() {
			return nil, c.errorAt(open, ErrUnterminatedClass)
		}
		if c.peek() == ']' {
			c.next()
			break
		}

		itemPos := c.pos
		lo, sub, err := c.classChar()
		if err != nil {
			return nil, err
		}
		if sub != nil {
			// A predefined class like \d contributes its ranges directly;
			// it cannot serve as a range endpoint.
			ranges = append(ranges, sub...)
			continue
		}
		hi := lo
		if !c.eof() && c.peek() == '-' {
			dash := c.pos
			c.next()
			if c.eof() {
				return nil, c.errorAt(open, ErrUnterminatedClass)
			}
			if c.peek() == ']' {
				return nil, c.errorAt(dash, ErrUnexpectedChar)
			}
			hi, sub, err = c.classChar()
			if err != nil {
				return nil, err
			}
			if sub != nil || hi < lo {
				return nil, c.errorAt(itemPos, ErrUnexpectedChar)
			}
		}
		ranges = append(ranges, runeRange{lo, hi})
	}

	if len(ranges) == 0 {
		return nil, c.errorAt(open, ErrUnexpectedChar)
	}
	if negate {
		ranges = complementRuneRanges(ranges)
		if len(ranges) == 0 {
			return nil, c.errorAt(open, ErrInvalidRuneRange)
		}
	}
	return c.classNFA(open, ranges)
}

// classChar parses one character inside a bracket expression: either a plain
// rune, an escape, or a predefined class (returned as ranges).
func (c *compiler) classChar() (rune, []runeRange, error) {
	if c.peek() == '\\' {
		return c.escape()
	}
	return c.next(), nil, nil
}

// classNFA builds the automaton for a set of rune ranges: the UTF-8
// expansion of each range, unioned together.
func (c *compiler) classNFA(pos int, ranges []runeRange) (*NFA, error) {
	var n *NFA
	for _, rr := range normalizeRuneRanges(ranges) {
		sub, err := FromRuneRange(rr.lo, rr.hi)
		if err != nil {
			// Entirely inside the surrogate block; nothing to match here.
			continue
		}
		if n == nil {
			n = sub
		} else {
			n = n.Union(sub)
		}
	}
	if n == nil {
		return nil, c.errorAt(pos, ErrInvalidRuneRange)
	}
	return n, nil
}

// runeRange is a closed interval of Unicode scalar values, the working
// representation for character classes before UTF-8 expansion.
type runeRange struct {
	lo, hi rune
}

func normalizeRuneRanges(ranges []runeRange) []runeRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]runeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].lo != sorted[j].lo {
			return sorted[i].lo < sorted[j].lo
		}
		return sorted[i].hi < sorted[j].hi
	})
	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.lo <= last.hi || r.lo == last.hi+1 {
			if r.hi > last.hi {
				last.hi = r.hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// complementRuneRanges complements a set of rune ranges over the full scalar
// universe [0, U+10FFFF]. Surrogates are left to FromRuneRange to exclude.
func complementRuneRanges(ranges []runeRange) []runeRange {
	norm := normalizeRuneRanges(ranges)
	var out []runeRange
	next := rune(0)
	for _, r := range norm {
		if r.lo > next {
			out = append(out, runeRange{next, r.lo - 1})
		}
		if r.hi+1 > next {
			next = r.hi + 1
		}
	}
	if next <= unicode.MaxRune {
		out = append(out, runeRange{next, unicode.MaxRune})
	}
	return out
}
