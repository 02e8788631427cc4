// Package raster generates the scrolling spike raster: one row of random
// spike times per neuron, slid across a fixed window.
package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/spiking-deck/internal/rng"
)

var ErrInvalidParams = errors.New("raster: invalid params")

type Params struct {
	Rows  int `toml:"rows"`
	Steps int `toml:"steps"`

	// per-row firing probability per step is drawn from [RateMin, RateMax)
	RateMin float64 `toml:"rate_min"`
	RateMax float64 `toml:"rate_max"`

	// offset added per tick, reset to 0 once it exceeds WrapAt
	Scroll float64 `toml:"scroll"`
	WrapAt float64 `toml:"wrap_at"`
}

func (p *Params) Defaults() {
	p.Rows = 12
	p.Steps = 400
	p.RateMin = 0.02
	p.RateMax = 0.07
	p.Scroll = 0.5
	p.WrapAt = 200
}

func DefaultParams() Params {
	var p Params
	p.Defaults()
	return p
}

func (p Params) Validate() error {
	switch {
	case p.Rows < 0 || p.Steps <= 0:
		return fmt.Errorf("%w: %d rows x %d steps", ErrInvalidParams, p.Rows, p.Steps)
	case p.RateMin < 0 || p.RateMax < p.RateMin || p.RateMax > 1:
		return fmt.Errorf("%w: rate range [%v, %v]", ErrInvalidParams, p.RateMin, p.RateMax)
	case p.Scroll < 0 || p.WrapAt <= 0:
		return fmt.Errorf("%w: scroll %v wrap %v", ErrInvalidParams, p.Scroll, p.WrapAt)
	}
	return nil
}

// Raster holds the spike trains. Trains are generated once; only Offset
// moves afterwards.
type Raster struct {
	Params Params

	// Trains[row] lists the steps at which that row spikes, ascending
	Trains [][]int

	Offset float64
}

func New(p Params, src rng.Source) (*Raster, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rng.New(0)
	}
	r := &Raster{Params: p, Trains: make([][]int, p.Rows)}
	for row := range r.Trains {
		rate := rng.Range(src, p.RateMin, p.RateMax)
		for t := 0; t < p.Steps; t++ {
			if src.Float64() < rate {
				r.Trains[row] = append(r.Trains[row], t)
			}
		}
	}
	return r, nil
}

func (r *Raster) Tick() {
	r.Offset += r.Params.Scroll
	if r.Offset > r.Params.WrapAt {
		r.Offset = 0
	}
}

// X is the horizontal position of spike step t, in [0, Steps).
func (r *Raster) X(t int) float64 {
	return math.Mod(float64(t)+r.Offset, float64(r.Params.Steps))
}

// Count is the number of spikes over all rows.
func (r *Raster) Count() int {
	total := 0
	for _, tr := range r.Trains {
		total += len(tr)
	}
	return total
}
