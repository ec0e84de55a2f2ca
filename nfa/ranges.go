package nfa

import "sort"

// ByteRange is a closed interval [Lo, Hi] of byte values.
//
// ByteRange is the label type for every consuming edge in the automaton
// pipeline. Working over bytes rather than Unicode scalars keeps transition
// tables dense: a 256-way alphabet fits in small arrays, and Unicode input is
// handled by expanding scalar ranges into chains of byte edges that encode
// valid UTF-8 sequences (see utf8.go).
type ByteRange struct {
	Lo byte // inclusive lower bound
	Hi byte // inclusive upper bound
}

// Contains returns true if b falls inside the range.
func (r ByteRange) Contains(b byte) bool {
	return r.Lo <= b && b <= r.Hi
}

// Len returns the number of byte values covered by the range.
func (r ByteRange) Len() int {
	return int(r.Hi) - int(r.Lo) + 1
}

// Intersect returns the overlap of a and b.
// The second return value is false when the ranges are disjoint.
func Intersect(a, b ByteRange) (ByteRange, bool) {
	lo, hi := a.Lo, a.Hi
	if b.Lo > lo {
		lo = b.Lo
	}
	if b.Hi < hi {
		hi = b.Hi
	}
	if lo > hi {
		return ByteRange{}, false
	}
	return ByteRange{Lo: lo, Hi: hi}, true
}

// Normalize sorts the given ranges and merges overlapping or adjacent ones.
// The result is the unique minimal set of disjoint, sorted ranges covering
// exactly the same byte values. The input slice is not modified.
func Normalize(ranges []ByteRange) []ByteRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]ByteRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		// Merge when overlapping or exactly adjacent (last.Hi+1 == r.Lo).
		if r.Lo <= last.Hi || (last.Hi < 255 && r.Lo == last.Hi+1) {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Complement returns the ranges covering every byte value NOT covered by the
// input, over the full byte universe [0, 255]. The input does not need to be
// normalized.
func Complement(ranges []ByteRange) []ByteRange {
	norm := Normalize(ranges)
	var out []ByteRange
	next := 0 // lowest byte value not yet accounted for
	for _, r := range norm {
		if int(r.Lo) > next {
			out = append(out, ByteRange{Lo: byte(next), Hi: r.Lo - 1})
		}
		next = int(r.Hi) + 1
	}
	if next <= 255 {
		out = append(out, ByteRange{Lo: byte(next), Hi: 255})
	}
	return out
}
