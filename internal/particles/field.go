// Package particles is the soft background dust: short-lived points that
// drift, fade in, peak and fade out.
package particles

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/spiking-deck/internal/rng"
)

var ErrInvalidParams = errors.New("particles: invalid params")

type Params struct {
	// chance of spawning one particle per tick
	SpawnProb float64 `toml:"spawn_prob"`

	// lifetime budget range, in ticks
	LifeMin float64 `toml:"life_min"`
	LifeMax float64 `toml:"life_max"`

	// velocity components are drawn from [-Drift/2, Drift/2)
	Drift float64 `toml:"drift"`

	SizeMin float64 `toml:"size_min"`
	SizeMax float64 `toml:"size_max"`

	// opacity at the middle of a particle's life
	PeakAlpha float64 `toml:"peak_alpha"`
}

func (p *Params) Defaults() {
	p.SpawnProb = 0.1
	p.LifeMin = 100
	p.LifeMax = 300
	p.Drift = 0.5
	p.SizeMin = 1
	p.SizeMax = 3
	p.PeakAlpha = 0.15
}

func DefaultParams() Params {
	var p Params
	p.Defaults()
	return p
}

func (p Params) Validate() error {
	switch {
	case p.SpawnProb < 0 || p.SpawnProb > 1:
		return fmt.Errorf("%w: spawn_prob %v must be in [0, 1]", ErrInvalidParams, p.SpawnProb)
	case p.LifeMin <= 0 || p.LifeMax < p.LifeMin:
		return fmt.Errorf("%w: life range [%v, %v]", ErrInvalidParams, p.LifeMin, p.LifeMax)
	case p.SizeMin <= 0 || p.SizeMax < p.SizeMin:
		return fmt.Errorf("%w: size range [%v, %v]", ErrInvalidParams, p.SizeMin, p.SizeMax)
	case p.Drift < 0:
		return fmt.Errorf("%w: drift %v must not be negative", ErrInvalidParams, p.Drift)
	case p.PeakAlpha < 0 || p.PeakAlpha > 1:
		return fmt.Errorf("%w: peak_alpha %v must be in [0, 1]", ErrInvalidParams, p.PeakAlpha)
	}
	return nil
}

// Particle is one glowing point. Age never exceeds MaxLife while the
// particle is in a Field.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Age     int
	MaxLife float64
	Size    float64
}

// Fade is the single-hump life curve: 0 at birth, 1 half way, 0 at expiry.
func (p Particle) Fade() float64 {
	return math.Sin(float64(p.Age) / p.MaxLife * math.Pi)
}

// Opacity scales Fade by the field's peak alpha.
func (p Particle) Opacity(peak float64) float64 {
	return math.Max(0, p.Fade()*peak)
}

// Field owns all live particles of one surface.
type Field struct {
	Params        Params
	Width, Height float64
	Particles     []Particle

	src rng.Source
}

// New returns an empty field covering width x height.
func New(width, height float64, p Params, src rng.Source) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rng.New(0)
	}
	return &Field{Params: p, Width: width, Height: height, src: src}, nil
}

// Resize changes the spawn area. Live particles keep their positions.
func (f *Field) Resize(width, height float64) {
	f.Width, f.Height = width, height
}

// Tick maybe spawns one particle, then ages and moves every particle and
// drops those whose age went past their budget.
func (f *Field) Tick() {
	if f.src.Float64() < f.Params.SpawnProb {
		f.spawn()
	}
	kept := f.Particles[:0]
	for _, p := range f.Particles {
		p.Age++
		p.X += p.VX
		p.Y += p.VY
		if float64(p.Age) > p.MaxLife {
			continue
		}
		kept = append(kept, p)
	}
	f.Particles = kept
}

// Advance runs ticks steps.
func (f *Field) Advance(ticks int) {
	for i := 0; i < ticks; i++ {
		f.Tick()
	}
}

func (f *Field) spawn() {
	p := f.Params
	f.Particles = append(f.Particles, Particle{
		X:       f.src.Float64() * f.Width,
		Y:       f.src.Float64() * f.Height,
		VX:      (f.src.Float64() - 0.5) * p.Drift,
		VY:      (f.src.Float64() - 0.5) * p.Drift,
		MaxLife: rng.Range(f.src, p.LifeMin, p.LifeMax),
		Size:    rng.Range(f.src, p.SizeMin, p.SizeMax),
	})
}
