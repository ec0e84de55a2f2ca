package nfa

import (
	"unicode"
	"unicode/utf8"
)

// UTF-8 range expansion.
//
// A Unicode scalar range [lo, hi] cannot be matched directly by a byte
// automaton. utf8Sequences decomposes it into a small set of byte-range
// sequences: each sequence is a fixed-length path of 1-4 byte ranges, and a
// byte string matches the scalar range iff it matches one of the sequences.
//
// Example: [U+0000, U+10FFFF] (any rune) decomposes into
//
//	[0x00-0x7F]
//	[0xC2-0xDF][0x80-0xBF]
//	[0xE0-0xE0][0xA0-0xBF][0x80-0xBF]
//	[0xE1-0xEC][0x80-0xBF][0x80-0xBF]
//	[0xED-0xED][0x80-0x9F][0x80-0xBF]
//	[0xEE-0xEF][0x80-0xBF][0x80-0xBF]
//	[0xF0-0xF0][0x90-0xBF][0x80-0xBF][0x80-0xBF]
//	[0xF1-0xF3][0x80-0xBF][0x80-0xBF][0x80-0xBF]
//	[0xF4-0xF4][0x80-0x8F][0x80-0xBF][0x80-0xBF]
//
// The splitting strategy follows Rust's utf8-ranges crate: first split at
// encoded-length boundaries and around the surrogate block, then align the
// ends on continuation-byte boundaries so that each remaining range encodes
// to pairwise byte ranges.

type scalarRange struct {
	start, end uint32
}

// maxScalar returns the largest scalar value encodable in n UTF-8 bytes.
func maxScalar(n int) uint32 {
	switch n {
	case 1:
		return 0x7F
	case 2:
		return 0x7FF
	case 3:
		return 0xFFFF
	default:
		return 0x10FFFF
	}
}

// utf8Sequences returns the byte-range sequences covering [lo, hi],
// in ascending scalar order. Surrogates are excluded; a range lying entirely
// inside the surrogate block yields no sequences.
func utf8Sequences(lo, hi rune) [][]ByteRange {
	if lo < 0 {
		lo = 0
	}
	if hi > unicode.MaxRune {
		hi = unicode.MaxRune
	}
	if lo > hi {
		return nil
	}

	var seqs [][]ByteRange
	stack := []scalarRange{{uint32(lo), uint32(hi)}}
outer:
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.start > r.end {
			continue
		}

		// Carve out the surrogate block.
		if r.start < 0xE000 && r.end > 0xD7FF {
			stack = append(stack,
				scalarRange{0xE000, r.end},
				scalarRange{r.start, 0xD7FF},
			)
			continue
		}

		// Split at encoded-length boundaries so both ends use the same
		// number of bytes.
		for n := 1; n < 4; n++ {
			max := maxScalar(n)
			if r.start <= max && max < r.end {
				stack = append(stack,
					scalarRange{max + 1, r.end},
					scalarRange{r.start, max},
				)
				continue outer
			}
		}

		if r.end <= 0x7F {
			seqs = append(seqs, []ByteRange{{Lo: byte(r.start), Hi: byte(r.end)}})
			continue
		}

		// Align the ends on continuation-byte boundaries: whenever the two
		// ends differ above a 6-bit suffix, the suffix of the lower end must
		// be all zeros and the suffix of the upper end all ones, otherwise
		// the pairwise byte ranges below would over-match.
		for n := 1; n < 4; n++ {
			m := uint32(1)<<(6*uint(n)) - 1
			if (r.start &^ m) != (r.end &^ m) {
				if r.start&m != 0 {
					stack = append(stack,
						scalarRange{(r.start | m) + 1, r.end},
						scalarRange{r.start, r.start | m},
					)
					continue outer
				}
				if r.end&m != m {
					stack = append(stack,
						scalarRange{r.end &^ m, r.end},
						scalarRange{r.start, (r.end &^ m) - 1},
					)
					continue outer
				}
			}
		}

		// Both ends now encode to the same length with aligned suffixes;
		// the sequence is simply the pairwise ranges of the encodings.
		var sbuf, ebuf [4]byte
		w := utf8.EncodeRune(sbuf[:], rune(r.start))
		utf8.EncodeRune(ebuf[:], rune(r.end))
		seq := make([]ByteRange, w)
		for i := 0; i < w; i++ {
			seq[i] = ByteRange{Lo: sbuf[i], Hi: ebuf[i]}
		}
		seqs = append(seqs, seq)
	}
	return seqs
}
