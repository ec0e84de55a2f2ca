package nfa

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []ByteRange
		want []ByteRange
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "single",
			in:   []ByteRange{{Lo: 5, Hi: 10}},
			want: []ByteRange{{Lo: 5, Hi: 10}},
		},
		{
			name: "overlapping",
			in:   []ByteRange{{Lo: 5, Hi: 10}, {Lo: 8, Hi: 15}},
			want: []ByteRange{{Lo: 5, Hi: 15}},
		},
		{
			name: "adjacent",
			in:   []ByteRange{{Lo: 5, Hi: 10}, {Lo: 11, Hi: 15}},
			want: []ByteRange{{Lo: 5, Hi: 15}},
		},
		{
			name: "disjoint",
			in:   []ByteRange{{Lo: 20, Hi: 30}, {Lo: 5, Hi: 10}},
			want: []ByteRange{{Lo: 5, Hi: 10}, {Lo: 20, Hi: 30}},
		},
		{
			name: "contained",
			in:   []ByteRange{{Lo: 0, Hi: 255}, {Lo: 10, Hi: 20}},
			want: []ByteRange{{Lo: 0, Hi: 255}},
		},
		{
			name: "unsorted mixed",
			in:   []ByteRange{{Lo: 11, Hi: 13}, {Lo: 9, Hi: 9}, {Lo: 1, Hi: 5}},
			want: []ByteRange{{Lo: 1, Hi: 5}, {Lo: 9, Hi: 9}, {Lo: 11, Hi: 13}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		name string
		in   []ByteRange
		want []ByteRange
	}{
		{
			name: "empty input covers everything",
			in:   nil,
			want: []ByteRange{{Lo: 0, Hi: 255}},
		},
		{
			name: "full universe covers nothing",
			in:   []ByteRange{{Lo: 0, Hi: 255}},
			want: nil,
		},
		{
			name: "middle range",
			in:   []ByteRange{{Lo: 'a', Hi: 'z'}},
			want: []ByteRange{{Lo: 0, Hi: 'a' - 1}, {Lo: 'z' + 1, Hi: 255}},
		},
		{
			name: "touching zero",
			in:   []ByteRange{{Lo: 0, Hi: 10}},
			want: []ByteRange{{Lo: 11, Hi: 255}},
		},
		{
			name: "touching 255",
			in:   []ByteRange{{Lo: 200, Hi: 255}},
			want: []ByteRange{{Lo: 0, Hi: 199}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Complement(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complement(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComplementRoundTrip(t *testing.T) {
	in := []ByteRange{{Lo: 10, Hi: 20}, {Lo: 40, Hi: 40}, {Lo: 100, Hi: 200}}
	got := Complement(Complement(in))
	if !reflect.DeepEqual(got, Normalize(in)) {
		t.Errorf("double complement = %v, want %v", got, Normalize(in))
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   ByteRange
		want   ByteRange
		wantOK bool
	}{
		{"overlap", ByteRange{Lo: 0, Hi: 10}, ByteRange{Lo: 5, Hi: 20}, ByteRange{Lo: 5, Hi: 10}, true},
		{"contained", ByteRange{Lo: 0, Hi: 100}, ByteRange{Lo: 40, Hi: 60}, ByteRange{Lo: 40, Hi: 60}, true},
		{"identical", ByteRange{Lo: 3, Hi: 7}, ByteRange{Lo: 3, Hi: 7}, ByteRange{Lo: 3, Hi: 7}, true},
		{"touching", ByteRange{Lo: 0, Hi: 5}, ByteRange{Lo: 5, Hi: 9}, ByteRange{Lo: 5, Hi: 5}, true},
		{"disjoint", ByteRange{Lo: 0, Hi: 4}, ByteRange{Lo: 5, Hi: 9}, ByteRange{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Intersect(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestContainsAndLen(t *testing.T) {
	r := ByteRange{Lo: 'a', Hi: 'f'}
	if !r.Contains('a') || !r.Contains('f') || r.Contains('g') || r.Contains('`') {
		t.Error("Contains boundaries wrong")
	}
	if r.Len() != 6 {
		t.Errorf("Len() = %d, want 6", r.Len())
	}
	if full := (ByteRange{Lo: 0, Hi: 255}); full.Len() != 256 {
		t.Errorf("full range Len() = %d, want 256", full.Len())
	}
}
