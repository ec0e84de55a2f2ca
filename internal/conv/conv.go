// Package conv provides checked integer narrowing for the automaton
// pipeline.
//
// State IDs are 32-bit while arena lengths are ints; the helpers here panic
// on overflow instead of wrapping silently, since an automaton exceeding the
// ID space indicates a defect (or a pathological rule set) rather than a
// recoverable condition.
package conv

import "math"

// IntToUint32 converts an int to uint32, panicking if the value is negative
// or exceeds math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound works on 32-bit platforms too.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
