package literal

import "testing"

func TestExact(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
		wantOK  bool
	}{
		{"if", "if", true},
		{"func", "func", true},
		{"==", "==", true},
		{";", ";", true},
		{"héllo", "héllo", true},
		{"", "", true},
		{`\n`, "\n", true},
		{`\t\r`, "\t\r", true},
		{`\0`, "\x00", true},
		{`\x41b`, "Ab", true},
		{`\u{20AC}`, "€", true},
		{`\.`, ".", true},
		{`\*\+\?`, "*+?", true},
		{`\[\]`, "[]", true},
		{`\\`, `\`, true},
		{`a\|b`, "a|b", true},

		{"a|b", "", false},
		{"ab*", "", false},
		{"ab+", "", false},
		{"ab?", "", false},
		{"a.c", "", false},
		{"(ab)", "", false},
		{"[ab]", "", false},
		{`\d`, "", false},
		{`\D`, "", false},
		{`\s`, "", false},
		{`\S`, "", false},
		{`\w`, "", false},
		{`\W`, "", false},
		{`a\`, "", false},
		{`\x4`, "", false},
		{`\xZZ`, "", false},
		{`\u{`, "", false},
		{`\u{GG}`, "", false},
		{`\u{110000}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, ok := Exact(tt.pattern)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Exact(%q) = %q, %v; want %q, %v", tt.pattern, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
