// Package literal extracts exact literals from patterns.
//
// A pattern is "exact" when it can only ever match one string: no
// alternation, no repetition, no classes, no wildcards. Exact patterns are
// what keyword and punctuation rules look like, and they are the anchors
// the scanner can resynchronize on after a lexical error.
package literal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Exact returns the single string a pattern matches, if the pattern is an
// exact literal. Escapes are decoded; any operator, class, group or
// predefined class makes the pattern inexact and Exact reports false.
func Exact(pattern string) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch c {
		case '(', ')', '[', ']', '|', '*', '+', '?', '.':
			return "", false
		case '\\':
			r, n, ok := decodeEscape(pattern[i+1:])
			if !ok {
				return "", false
			}
			b.WriteRune(r)
			i += 1 + n
		default:
			r, w := utf8.DecodeRuneInString(pattern[i:])
			b.WriteRune(r)
			i += w
		}
	}
	return b.String(), true
}

// decodeEscape decodes the escape body following a backslash. It reports
// the decoded rune, the number of bytes consumed, and whether the escape
// denotes a single fixed character. Predefined classes like \d match many
// characters and are rejected.
func decodeEscape(s string) (rune, int, bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	switch s[0] {
	case 'n':
		return '\n', 1, true
	case 'r':
		return '\r', 1, true
	case 't':
		return '\t', 1, true
	case 'f':
		return '\f', 1, true
	case 'v':
		return '\v', 1, true
	case '0':
		return 0, 1, true
	case 'x':
		if len(s) < 3 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, 0, false
		}
		return rune(v), 3, true
	case 'u':
		if len(s) < 2 || s[1] != '{' {
			return 0, 0, false
		}
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[2:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, false
		}
		return rune(v), end + 1, true
	case 'd', 'D', 's', 'S', 'w', 'W':
		return 0, 0, false
	default:
		r, w := utf8.DecodeRuneInString(s)
		return r, w, true
	}
}
