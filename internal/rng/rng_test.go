package rng

import "testing"

func TestSequenceWraps(t *testing.T) {
	s := &Sequence{Values: []float64{0.1, 0.5, 0.9}}
	want := []float64{0.1, 0.5, 0.9, 0.1, 0.5}
	for i, w := range want {
		if got := s.Float64(); got != w {
			t.Errorf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

func TestEmptySequence(t *testing.T) {
	var s Sequence
	if got := s.Float64(); got != 0 {
		t.Errorf("empty sequence: got %v, want 0", got)
	}
}

func TestRange(t *testing.T) {
	if got := Range(Fixed(0.5), 0.03, 0.05); got < 0.0399999 || got > 0.0400001 {
		t.Errorf("Range midpoint: got %v, want 0.04", got)
	}
	if got := Range(Fixed(0), 2, 4); got != 2 {
		t.Errorf("Range low end: got %v, want 2", got)
	}
}

func TestNewSeeded(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}
