package nfa

import "unicode"

// Predefined class escapes, shared between the top level and bracket
// expressions.
var (
	digitRanges = []runeRange{{'0', '9'}}
	spaceRanges = []runeRange{{'\t', '\r'}, {' ', ' '}}
	wordRanges  = []runeRange{{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'}}
)

// escape parses a backslash escape; the leading '\\' has not been consumed.
//
// It returns either a literal rune (class == nil) or the ranges of a
// predefined class like \d. Recognized forms:
//
//	\n \r \t \f \v \0      control characters
//	\xHH                   byte value, two hex digits
//	\u{H...}               Unicode scalar, one or more hex digits
//	\d \D \s \S \w \W      predefined classes
//	\<any other rune>      that rune itself (metacharacter escapes)
func (c *compiler) escape() (rune, []runeRange, error) {
	pos := c.pos
	c.next() // '\\'
	if c.eof() {
		return 0, nil, c.errorAt(pos, ErrInvalidEscape)
	}
	switch r := c.next(); r {
	case 'n':
		return '\n', nil, nil
	case 'r':
		return '\r', nil, nil
	case 't':
		return '\t', nil, nil
	case 'f':
		return '\f', nil, nil
	case 'v':
		return '\v', nil, nil
	case '0':
		return 0, nil, nil
	case 'x':
		var val rune
		for i := 0; i < 2; i++ {
			d, ok := hexDigit(c)
			if !ok {
				return 0, nil, c.errorAt(pos, ErrInvalidEscape)
			}
			val = val<<4 | d
		}
		return val, nil, nil
	case 'u':
		if c.eof() || c.peek() != '{' {
			return 0, nil, c.errorAt(pos, ErrInvalidEscape)
		}
		c.next()
		var val rune
		digits := 0
		for {
			if c.eof() {
				return 0, nil, c.errorAt(pos, ErrInvalidEscape)
			}
			if c.peek() == '}' {
				c.next()
				break
			}
			d, ok := hexDigit(c)
			if !ok {
				return 0, nil, c.errorAt(pos, ErrInvalidEscape)
			}
			val = val<<4 | d
			if digits++; digits > 6 {
				return 0, nil, c.errorAt(pos, ErrInvalidEscape)
			}
		}
		if digits == 0 || val > unicode.MaxRune || (val >= 0xD800 && val <= 0xDFFF) {
			return 0, nil, c.errorAt(pos, ErrInvalidEscape)
		}
		return val, nil, nil
	case 'd':
		return 0, digitRanges, nil
	case 'D':
		return 0, complementRuneRanges(digitRanges), nil
	case 's':
		return 0, spaceRanges, nil
	case 'S':
		return 0, complementRuneRanges(spaceRanges), nil
	case 'w':
		return 0, wordRanges, nil
	case 'W':
		return 0, complementRuneRanges(wordRanges), nil
	default:
		return r, nil, nil
	}
}

// hexDigit consumes one hex digit, returning its value.
func hexDigit(c *compiler) (rune, bool) {
	if c.eof() {
		return 0, false
	}
	switch r := c.peek(); {
	case r >= '0' && r <= '9':
		c.next()
		return r - '0', true
	case r >= 'a' && r <= 'f':
		c.next()
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		c.next()
		return r - 'A' + 10, true
	default:
		return 0, false
	}
}
