package stdp

import (
	"math"
	"testing"
)

const difTol = 1.0e-9

func TestDelta(t *testing.T) {
	w := DefaultWindow()
	cases := []struct {
		t, want float64
	}{
		{0, 100},
		{1, 100 * math.Exp(-3)},
		{-1e-12, -60 * math.Exp(-3e-12)},
		{-1, -60 * math.Exp(-3)},
	}
	for _, c := range cases {
		if got := w.Delta(c.t); math.Abs(got-c.want) > difTol {
			t.Errorf("Delta(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestCurveMonotone(t *testing.T) {
	w := DefaultWindow()
	ltp := w.Curve(150, false)
	ltd := w.Curve(150, true)
	if len(ltp) != 151 || len(ltd) != 151 {
		t.Fatalf("lengths %d, %d", len(ltp), len(ltd))
	}
	for i := 1; i < len(ltp); i++ {
		if ltp[i].Delta >= ltp[i-1].Delta || ltp[i].Delta <= 0 {
			t.Fatalf("LTP side not decaying at %d: %v", i, ltp[i])
		}
		if ltd[i].Delta <= ltd[i-1].Delta || ltd[i].Delta >= 0 {
			t.Fatalf("LTD side not decaying towards 0 at %d: %v", i, ltd[i])
		}
	}
	if w.Curve(0, false) != nil {
		t.Error("empty curve expected for n = 0")
	}
}
