package nfa

import (
	"strings"
	"testing"
)

func TestDot(t *testing.T) {
	n := FromByte('a').Union(FromRange('0', '9'))
	n.SetRule(3)
	dump := n.Dot()

	if !strings.HasPrefix(dump, "digraph NFA {\n") || !strings.HasSuffix(dump, "}\n") {
		t.Fatalf("malformed digraph wrapper:\n%s", dump)
	}
	for _, want := range []string{
		"start -> N",
		"shape=doublecircle",
		"r3",
		`label="eps"`,
		`label="97"`,
		`label="[48,57]"`,
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
}

func TestFormatRanges(t *testing.T) {
	tests := []struct {
		in   []ByteRange
		want string
	}{
		{[]ByteRange{{Lo: 1, Hi: 5}, {Lo: 9, Hi: 9}, {Lo: 11, Hi: 13}}, "[1,5], 9, [11,13]"},
		{[]ByteRange{{Lo: 'a', Hi: 'a'}}, "97"},
		{[]ByteRange{{Lo: 0, Hi: 255}}, "[0,255]"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FormatRanges(tt.in); got != tt.want {
			t.Errorf("FormatRanges(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
