package raster

import (
	"reflect"
	"testing"

	"github.com/iburimskiy/spiking-deck/internal/rng"
)

func TestTrains(t *testing.T) {
	p := DefaultParams()
	p.Rows = 2
	p.Steps = 4
	// row 0: rate 0.02 + 0*0.05, then four step draws
	// row 1: rate 0.02 + 1*0.05, then four step draws
	src := &rng.Sequence{Values: []float64{
		0, 0.01, 0.5, 0.019, 0.9,
		1, 0.06, 0.08, 0, 0.5,
	}}
	r, err := New(p, src)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 2}, {0, 2}}
	if !reflect.DeepEqual(r.Trains, want) {
		t.Errorf("trains = %v, want %v", r.Trains, want)
	}
	if r.Count() != 4 {
		t.Errorf("Count = %d, want 4", r.Count())
	}
}

func TestScrollWraps(t *testing.T) {
	r, err := New(DefaultParams(), rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 400; i++ {
		r.Tick()
	}
	if r.Offset != 200 {
		t.Fatalf("offset after 400 ticks = %v, want 200", r.Offset)
	}
	r.Tick()
	if r.Offset != 0 {
		t.Errorf("offset should wrap to 0, got %v", r.Offset)
	}
}

func TestX(t *testing.T) {
	r := &Raster{Params: DefaultParams(), Offset: 150}
	cases := map[int]float64{0: 150, 249: 399, 250: 0, 399: 149}
	for step, want := range cases {
		if got := r.X(step); got != want {
			t.Errorf("X(%d) = %v, want %v", step, got, want)
		}
	}
}
