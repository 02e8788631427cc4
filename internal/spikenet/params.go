package spikenet

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("spikenet: invalid params")

// Params are the tuning constants of the network. The defaults are paced for
// a 60 TPS display and have no meaning beyond that.
type Params struct {
	// neurons closer than this are connected, in both directions
	ConnectRadius float64 `toml:"connect_radius"`

	// potential at which a neuron fires
	Threshold float64 `toml:"threshold"`

	// potential added to the destination when a spike arrives
	SpikeGain float64 `toml:"spike_gain"`

	// multiplicative leak applied per tick to neurons that received nothing
	Leak float64 `toml:"leak"`

	// spike speed range, in fractions of an edge per tick
	SpeedMin float64 `toml:"speed_min"`
	SpeedMax float64 `toml:"speed_max"`

	// ticks after firing during which a neuron glows and cannot fire again
	Refractory int `toml:"refractory"`

	// pointer distance that still selects a neuron (exclusive)
	HitRadius float64 `toml:"hit_radius"`
}

// Defaults sets the demo network's constants.
func (p *Params) Defaults() {
	p.ConnectRadius = 160
	p.Threshold = 0.8
	p.SpikeGain = 0.35
	p.Leak = 0.995
	p.SpeedMin = 0.03
	p.SpeedMax = 0.05
	p.Refractory = 15
	p.HitRadius = 20
}

// DefaultParams returns Params with Defaults applied.
func DefaultParams() Params {
	var p Params
	p.Defaults()
	return p
}

func (p Params) Validate() error {
	switch {
	case p.ConnectRadius <= 0:
		return fmt.Errorf("%w: connect_radius %v must be positive", ErrInvalidParams, p.ConnectRadius)
	case p.Threshold <= 0:
		return fmt.Errorf("%w: threshold %v must be positive", ErrInvalidParams, p.Threshold)
	case p.SpikeGain < 0:
		return fmt.Errorf("%w: spike_gain %v must not be negative", ErrInvalidParams, p.SpikeGain)
	case p.Leak <= 0 || p.Leak >= 1:
		return fmt.Errorf("%w: leak %v must be in (0, 1)", ErrInvalidParams, p.Leak)
	case p.SpeedMin <= 0 || p.SpeedMax < p.SpeedMin:
		return fmt.Errorf("%w: speed range [%v, %v] is empty or not positive", ErrInvalidParams, p.SpeedMin, p.SpeedMax)
	case p.Refractory < 0:
		return fmt.Errorf("%w: refractory %d must not be negative", ErrInvalidParams, p.Refractory)
	case p.HitRadius <= 0:
		return fmt.Errorf("%w: hit_radius %v must be positive", ErrInvalidParams, p.HitRadius)
	}
	return nil
}
