// Package background is the full-window neural backdrop: drifting nodes
// that link up when close, with random spikes hopping between them.
package background

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/spiking-deck/internal/rng"
)

var ErrInvalidParams = errors.New("background: invalid params")

type Params struct {
	Nodes int `toml:"nodes"`

	// node velocity components are drawn from [-Drift/2, Drift/2)
	Drift float64 `toml:"drift"`

	// nodes closer than LinkDist are drawn linked, fading with distance
	LinkDist  float64 `toml:"link_dist"`
	LinkAlpha float64 `toml:"link_alpha"`

	// a spike launch is attempted every SpikeEvery ticks, between nodes
	// closer than SpikeReach * LinkDist
	SpikeEvery int     `toml:"spike_every"`
	SpikeReach float64 `toml:"spike_reach"`
	SpeedMin   float64 `toml:"speed_min"`
	SpeedMax   float64 `toml:"speed_max"`

	PulseMin  float64 `toml:"pulse_min"`
	PulseMax  float64 `toml:"pulse_max"`
	RadiusMin float64 `toml:"radius_min"`
	RadiusMax float64 `toml:"radius_max"`
}

func (p *Params) Defaults() {
	p.Nodes = 60
	p.Drift = 0.3
	p.LinkDist = 180
	p.LinkAlpha = 0.3
	p.SpikeEvery = 12
	p.SpikeReach = 1.5
	p.SpeedMin = 0.02
	p.SpeedMax = 0.04
	p.PulseMin = 0.01
	p.PulseMax = 0.03
	p.RadiusMin = 1
	p.RadiusMax = 3
}

func DefaultParams() Params {
	var p Params
	p.Defaults()
	return p
}

func (p Params) Validate() error {
	switch {
	case p.Nodes < 0:
		return fmt.Errorf("%w: nodes %d", ErrInvalidParams, p.Nodes)
	case p.LinkDist <= 0:
		return fmt.Errorf("%w: link_dist %v must be positive", ErrInvalidParams, p.LinkDist)
	case p.SpikeEvery <= 0:
		return fmt.Errorf("%w: spike_every %d must be positive", ErrInvalidParams, p.SpikeEvery)
	case p.SpeedMin <= 0 || p.SpeedMax < p.SpeedMin:
		return fmt.Errorf("%w: speed range [%v, %v]", ErrInvalidParams, p.SpeedMin, p.SpeedMax)
	case p.RadiusMin <= 0 || p.RadiusMax < p.RadiusMin:
		return fmt.Errorf("%w: radius range [%v, %v]", ErrInvalidParams, p.RadiusMin, p.RadiusMax)
	}
	return nil
}

type Node struct {
	X, Y, VX, VY float64
	Radius       float64
	Phase        float64
	PulseSpeed   float64
}

// Pulse oscillates between 0 and 1 with the node's phase.
func (n Node) Pulse() float64 {
	return math.Sin(n.Phase)*0.5 + 0.5
}

// Link joins two nodes that are currently close.
type Link struct {
	A, B  int
	Alpha float64
}

type Spike struct {
	From, To int
	Progress float64
	Speed    float64
}

// Field is the backdrop state. Links are rebuilt every tick because the
// nodes move.
type Field struct {
	Params        Params
	Width, Height float64
	Nodes         []Node
	Links         []Link
	Spikes        []Spike

	ticks int
	src   rng.Source
}

func New(width, height float64, p Params, src rng.Source) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rng.New(0)
	}
	f := &Field{Params: p, Width: width, Height: height, src: src}
	f.Nodes = make([]Node, p.Nodes)
	for i := range f.Nodes {
		f.Nodes[i] = Node{
			X:          src.Float64() * width,
			Y:          src.Float64() * height,
			VX:         (src.Float64() - 0.5) * p.Drift,
			VY:         (src.Float64() - 0.5) * p.Drift,
			Radius:     rng.Range(src, p.RadiusMin, p.RadiusMax),
			Phase:      src.Float64() * 2 * math.Pi,
			PulseSpeed: rng.Range(src, p.PulseMin, p.PulseMax),
		}
	}
	f.link()
	return f, nil
}

// Resize follows the window. Nodes outside the new bounds turn back on
// their own through the bounce rule.
func (f *Field) Resize(width, height float64) {
	f.Width, f.Height = width, height
}

func (f *Field) Tick() {
	f.ticks++
	for i := range f.Nodes {
		n := &f.Nodes[i]
		n.X += n.VX
		n.Y += n.VY
		n.Phase += n.PulseSpeed
		if n.X < 0 || n.X > f.Width {
			n.VX = -n.VX
		}
		if n.Y < 0 || n.Y > f.Height {
			n.VY = -n.VY
		}
	}
	f.link()

	if f.ticks%f.Params.SpikeEvery == 0 {
		f.launch()
	}

	kept := f.Spikes[:0]
	for _, s := range f.Spikes {
		s.Progress += s.Speed
		if s.Progress >= 1 {
			continue
		}
		kept = append(kept, s)
	}
	f.Spikes = kept
}

func (f *Field) Advance(ticks int) {
	for i := 0; i < ticks; i++ {
		f.Tick()
	}
}

func (f *Field) link() {
	f.Links = f.Links[:0]
	for i := range f.Nodes {
		for j := i + 1; j < len(f.Nodes); j++ {
			d := f.dist(i, j)
			if d < f.Params.LinkDist {
				f.Links = append(f.Links, Link{A: i, B: j, Alpha: (1 - d/f.Params.LinkDist) * f.Params.LinkAlpha})
			}
		}
	}
}

// launch picks a random pair and sends a spike if the pair is in reach.
func (f *Field) launch() {
	n := len(f.Nodes)
	if n < 2 {
		return
	}
	from := int(f.src.Float64() * float64(n))
	to := int(f.src.Float64() * float64(n))
	if to == from {
		to = (to + 1) % n
	}
	if f.dist(from, to) >= f.Params.LinkDist*f.Params.SpikeReach {
		return
	}
	f.Spikes = append(f.Spikes, Spike{
		From:  from,
		To:    to,
		Speed: rng.Range(f.src, f.Params.SpeedMin, f.Params.SpeedMax),
	})
}

func (f *Field) dist(i, j int) float64 {
	a, b := f.Nodes[i], f.Nodes[j]
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SpikePos interpolates between the spike's nodes at their current positions.
func (f *Field) SpikePos(s Spike) (x, y float64) {
	a, b := f.Nodes[s.From], f.Nodes[s.To]
	return a.X + (b.X-a.X)*s.Progress, a.Y + (b.Y-a.Y)*s.Progress
}
