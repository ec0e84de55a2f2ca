package nfa

import (
	"testing"
	"unicode/utf8"
)

// matchSeqs reports whether the byte string matches any of the sequences.
func matchSeqs(seqs [][]ByteRange, b []byte) bool {
outer:
	for _, seq := range seqs {
		if len(seq) != len(b) {
			continue
		}
		for i, r := range seq {
			if !r.Contains(b[i]) {
				continue outer
			}
		}
		return true
	}
	return false
}

func TestUTF8SequencesCoverage(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi rune
	}{
		{"ascii", 'a', 'z'},
		{"ascii full", 0, 0x7F},
		{"two byte", 0x80, 0x7FF},
		{"across length boundary", 'A', 0x2603},
		{"three byte around surrogates", 0x800, 0xFFFF},
		{"four byte", 0x10000, 0x10FFFF},
		{"everything", 0, 0x10FFFF},
		{"single rune", '€', '€'},
	}
	// Probe points: range endpoints, neighbors, and representatives of each
	// encoding length.
	probes := []rune{0, 1, 'A', 'a', 'z', 0x7F, 0x80, 0x7FF, 0x800,
		0x2602, 0x2603, 0x2604, 0xD7FF, 0xE000, 0xFFFF,
		0x10000, 0x10FFFF, '€', '\U0001F600'}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seqs := utf8Sequences(tt.lo, tt.hi)
			if len(seqs) == 0 {
				t.Fatal("no sequences produced")
			}
			var buf [4]byte
			for _, r := range probes {
				w := utf8.EncodeRune(buf[:], r)
				want := r >= tt.lo && r <= tt.hi
				if got := matchSeqs(seqs, buf[:w]); got != want {
					t.Errorf("rune %U: matched = %v, want %v", r, got, want)
				}
			}
		})
	}
}

func TestUTF8SequencesExcludeSurrogates(t *testing.T) {
	seqs := utf8Sequences(0, 0x10FFFF)
	// The UTF-8-style encoding of a surrogate (as CESU-8 would produce it)
	// must not match.
	surrogate := []byte{0xED, 0xA0, 0x80} // would be U+D800
	if matchSeqs(seqs, surrogate) {
		t.Error("sequences must not cover surrogate encodings")
	}
	if got := utf8Sequences(0xD800, 0xDFFF); got != nil {
		t.Errorf("surrogate-only range should produce nil, got %v", got)
	}
}

func TestUTF8SequencesAnyRuneShape(t *testing.T) {
	// The full scalar range decomposes into the canonical nine sequences.
	seqs := utf8Sequences(0, 0x10FFFF)
	if len(seqs) != 9 {
		t.Fatalf("got %d sequences, want 9", len(seqs))
	}
	for _, seq := range seqs {
		if len(seq) < 1 || len(seq) > 4 {
			t.Errorf("sequence length %d out of bounds", len(seq))
		}
		for _, r := range seq {
			if r.Lo > r.Hi {
				t.Errorf("inverted byte range %v", r)
			}
		}
	}
}

func TestUTF8SequencesClamping(t *testing.T) {
	if got := utf8Sequences('z', 'a'); got != nil {
		t.Errorf("inverted range should produce nil, got %v", got)
	}
	// Out-of-universe bounds are clamped rather than rejected.
	seqs := utf8Sequences(-5, 0x7F)
	var buf [4]byte
	w := utf8.EncodeRune(buf[:], 'a')
	if !matchSeqs(seqs, buf[:w]) {
		t.Error("clamped range should still cover ASCII")
	}
}
