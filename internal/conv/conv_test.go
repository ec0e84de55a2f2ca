package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	for _, n := range []int{0, 1, 42, math.MaxUint32} {
		if got := IntToUint32(n); got != uint32(n) {
			t.Errorf("IntToUint32(%d) = %d", n, got)
		}
	}
}

func TestIntToUint32PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative input")
		}
	}()
	IntToUint32(-1)
}
